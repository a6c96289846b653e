package get_time_slots

import (
	"github.com/m04kA/prescriber-availability/internal/domain"
	getTimeSlots "github.com/m04kA/prescriber-availability/internal/usecase/get_time_slots"
)

// TimeSlotsResponse HTTP response model
type TimeSlotsResponse struct {
	Date            string   `json:"date"`
	Weekday         string   `json:"weekday"`
	HasAvailability bool     `json:"hasAvailability"`
	Slots           []string `json:"slots"`  // "9:00 AM", "9:30 AM", ...
	Booked          []string `json:"booked"` // время активных бронирований
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getTimeSlots.Response) *TimeSlotsResponse {
	slots := resp.Slots
	if slots == nil {
		slots = []string{}
	}
	booked := resp.Booked
	if booked == nil {
		booked = []string{}
	}

	return &TimeSlotsResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		Weekday:         resp.Weekday,
		HasAvailability: resp.HasAvailability,
		Slots:           slots,
		Booked:          booked,
	}
}
