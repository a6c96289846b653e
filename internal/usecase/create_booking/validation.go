package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/prescriber-availability/internal/domain"
	"github.com/m04kA/prescriber-availability/pkg/types"
)

// validatedRequest разобранные значения запроса
type validatedRequest struct {
	date      time.Time
	startTime types.TimeString
	slot      string // то же время в формате слота "h:mm AM/PM"
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, loc *time.Location) (*validatedRequest, error) {
	if req.PatientID <= 0 {
		return nil, fmt.Errorf("%w: patientID must be positive", ErrInvalidInput)
	}

	if req.PrescriberID <= 0 {
		return nil, fmt.Errorf("%w: prescriberID must be positive", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Date) == "" {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	date, err := time.ParseInLocation(domain.DateFormat, strings.TrimSpace(req.Date), loc)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be in YYYY-MM-DD format", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Time) == "" {
		return nil, fmt.Errorf("%w: time is required", ErrInvalidInput)
	}

	startTime, err := parseSlotTime(req.Time)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid time: %v", ErrInvalidInput, err)
	}

	slot, err := startTime.Format12h()
	if err != nil {
		return nil, fmt.Errorf("%w: invalid time: %v", ErrInvalidInput, err)
	}

	return &validatedRequest{date: date, startTime: startTime, slot: slot}, nil
}

// parseSlotTime принимает время как "HH:MM" или как слот "h:mm AM/PM"
func parseSlotTime(s string) (types.TimeString, error) {
	s = strings.TrimSpace(s)
	upper := strings.ToUpper(s)
	if strings.HasSuffix(upper, "AM") || strings.HasSuffix(upper, "PM") {
		return types.Parse12h(s)
	}
	return types.NewTimeStringFromString(s)
}

// validateDateInHorizon проверяет, что дата не в прошлом и не дальше горизонта
func validateDateInHorizon(date, now time.Time, horizonDays int) error {
	today := domain.StartOfDay(now)
	day := domain.StartOfDay(date)

	if day.Before(today) {
		return fmt.Errorf("%w: date is in the past", ErrDateOutOfRange)
	}

	if day.After(today.AddDate(0, 0, horizonDays)) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateOutOfRange, horizonDays)
	}

	return nil
}
