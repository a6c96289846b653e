package get_time_slots

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/prescriber-availability/internal/domain"
)

// validateRequest валидирует входные данные и возвращает разобранную дату
// Дата разбирается в часовом поясе текущего времени
func validateRequest(req *Request, loc *time.Location) (time.Time, error) {
	if req.PrescriberID <= 0 {
		return time.Time{}, fmt.Errorf("%w: prescriberID must be positive", ErrInvalidInput)
	}

	raw := strings.TrimSpace(req.Date)
	if raw == "" {
		return time.Time{}, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	date, err := time.ParseInLocation(domain.DateFormat, raw, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date must be in YYYY-MM-DD format", ErrInvalidInput)
	}

	return date, nil
}
