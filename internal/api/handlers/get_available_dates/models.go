package get_available_dates

import (
	"strconv"

	"github.com/m04kA/prescriber-availability/internal/domain"
	getAvailableDates "github.com/m04kA/prescriber-availability/internal/usecase/get_available_dates"
)

// AvailableDatesResponse HTTP response model
type AvailableDatesResponse struct {
	PrescriberID    int64                 `json:"prescriberId"`
	HasAvailability bool                  `json:"hasAvailability"`
	HorizonDays     int                   `json:"horizonDays"`
	Dates           []domain.CalendarDate `json:"dates"`
}

// ToUseCaseRequest создает запрос use case; пустой horizonDays - значение по умолчанию
func ToUseCaseRequest(prescriberID int64, horizonStr string) (*getAvailableDates.Request, error) {
	req := &getAvailableDates.Request{PrescriberID: prescriberID}

	if horizonStr != "" {
		horizon, err := strconv.Atoi(horizonStr)
		if err != nil {
			return nil, err
		}
		req.HorizonDays = &horizon
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableDates.Response) *AvailableDatesResponse {
	dates := resp.Dates
	if dates == nil {
		dates = []domain.CalendarDate{}
	}
	return &AvailableDatesResponse{
		PrescriberID:    resp.PrescriberID,
		HasAvailability: resp.HasAvailability,
		HorizonDays:     resp.HorizonDays,
		Dates:           dates,
	}
}
