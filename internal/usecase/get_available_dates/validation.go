package get_available_dates

import (
	"fmt"

	"github.com/m04kA/prescriber-availability/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.PrescriberID <= 0 {
		return fmt.Errorf("%w: prescriberID must be positive", ErrInvalidInput)
	}

	if req.HorizonDays != nil {
		h := *req.HorizonDays
		if h < domain.MinHorizonDays || h > domain.MaxHorizonDays {
			return fmt.Errorf("%w: horizonDays must be between %d and %d",
				ErrInvalidInput, domain.MinHorizonDays, domain.MaxHorizonDays)
		}
	}

	return nil
}
