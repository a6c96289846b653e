package get_booking

import (
	"time"

	"github.com/m04kA/prescriber-availability/internal/domain"
	"github.com/m04kA/prescriber-availability/internal/service/bookings/models"
)

const (
	rolePatient    = "patient"
	rolePrescriber = "prescriber"
)

// BookingView бронирование глазами запросившего пользователя
type BookingView struct {
	*models.BookingResponse
	Weekday    string `json:"weekday"` // "Monday"
	ViewerRole string `json:"viewerRole"`
	CanCancel  bool   `json:"canCancel"`
}

// newBookingView дополняет ответ сервиса днём недели и доступными действиями
func newBookingView(booking *models.BookingResponse, userID int64) *BookingView {
	view := &BookingView{BookingResponse: booking}

	if date, err := time.Parse(domain.DateFormat, booking.BookingDate); err == nil {
		view.Weekday = date.Weekday().String()
	}

	switch userID {
	case booking.PatientID:
		view.ViewerRole = rolePatient
	case booking.PrescriberID:
		view.ViewerRole = rolePrescriber
	}

	status := domain.BookingStatus(booking.Status)
	view.CanCancel = view.ViewerRole != "" &&
		(status == domain.StatusPending || status == domain.StatusConfirmed)

	return view
}
