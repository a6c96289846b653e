package availability

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/prescriber-availability/internal/domain"
	"github.com/m04kA/prescriber-availability/pkg/psqlbuilder"
	"github.com/m04kA/prescriber-availability/pkg/txmanager"
	"github.com/m04kA/prescriber-availability/pkg/types"
)

const tableName = "prescriber_availability"

// Repository репозиторий недельного расписания специалистов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByPrescriberID возвращает расписание специалиста в порядке сохранения.
// Если расписание не задано, возвращается пустой слайс без ошибки.
func (r *Repository) GetByPrescriberID(ctx context.Context, prescriberID int64) (domain.WeeklyAvailability, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("day", "start_time", "end_time").
		From(tableName).
		Where(squirrel.Eq{"prescriber_id": prescriberID}).
		OrderBy("position ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPrescriberID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPrescriberID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make(domain.WeeklyAvailability, 0)
	for rows.Next() {
		var (
			day        string
			start, end types.TimeString
		)
		if err := rows.Scan(&day, &start, &end); err != nil {
			return nil, fmt.Errorf("%w: GetByPrescriberID - scan row: %v", ErrScanRow, err)
		}
		result = append(result, domain.AvailabilitySlot{
			Day:       day,
			StartTime: start.String(),
			EndTime:   end.String(),
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByPrescriberID - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// Replace целиком заменяет расписание специалиста.
// Должен вызываться внутри транзакции (txmanager.Do), иначе удаление и вставка не атомарны.
func (r *Repository) Replace(ctx context.Context, prescriberID int64, availability domain.WeeklyAvailability) error {
	if !txmanager.InTx(ctx) {
		return ErrTransactionRequired
	}
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(tableName).
		Where(squirrel.Eq{"prescriber_id": prescriberID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Replace - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Replace - execute delete: %v", ErrExecQuery, err)
	}

	if len(availability) == 0 {
		return nil
	}

	insert := psqlbuilder.Insert(tableName).
		Columns("prescriber_id", "position", "day", "start_time", "end_time")
	for i, slot := range availability {
		insert = insert.Values(prescriberID, i, slot.Day, slot.StartTime, slot.EndTime)
	}

	query, args, err = insert.ToSql()
	if err != nil {
		return fmt.Errorf("%w: Replace - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Replace - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}
