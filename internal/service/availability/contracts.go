package availability

import (
	"context"
	"encoding/json"

	"github.com/m04kA/prescriber-availability/internal/domain"
	"github.com/m04kA/prescriber-availability/internal/engine/normalizer"
)

// AvailabilityRepository интерфейс репозитория расписаний
type AvailabilityRepository interface {
	GetByPrescriberID(ctx context.Context, prescriberID int64) (domain.WeeklyAvailability, error)
	Replace(ctx context.Context, prescriberID int64, availability domain.WeeklyAvailability) error
}

// AvailabilityCache интерфейс кеша расписаний (может отсутствовать).
// Set пишет только при неизменном поколении, Invalidate увеличивает поколение.
type AvailabilityCache interface {
	Get(ctx context.Context, prescriberID int64) (domain.WeeklyAvailability, error)
	Generation(ctx context.Context, prescriberID int64) (int64, error)
	Set(ctx context.Context, prescriberID int64, availability domain.WeeklyAvailability, generation int64) error
	Invalidate(ctx context.Context, prescriberID int64) error
}

// Normalizer нормализация и редактирование расписания
type Normalizer interface {
	Normalize(raw json.RawMessage) domain.WeeklyAvailability
	CheckShape(raw json.RawMessage) error
	ToggleDay(current domain.WeeklyAvailability, day string) domain.WeeklyAvailability
	AddSlot(current domain.WeeklyAvailability, day string) domain.WeeklyAvailability
	RemoveSlot(current domain.WeeklyAvailability, day string, index int) domain.WeeklyAvailability
	UpdateSlotTime(current domain.WeeklyAvailability, day string, index int, field, value string) domain.WeeklyAvailability
	ApplyPreset(preset normalizer.Preset) domain.WeeklyAvailability
	Validate(availability domain.WeeklyAvailability) error
	Canonicalize(availability domain.WeeklyAvailability) domain.WeeklyAvailability
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics счетчики сервиса
type Metrics interface {
	CacheLookup(result string)
	ValidationFailed()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
