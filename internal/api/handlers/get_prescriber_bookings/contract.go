package get_prescriber_bookings

import (
	"context"

	"github.com/m04kA/prescriber-availability/internal/service/bookings/models"
)

type BookingService interface {
	GetPrescriberBookings(ctx context.Context, req *models.GetPrescriberBookingsRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
