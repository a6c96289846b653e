package bookings

import (
	"context"

	"github.com/m04kA/prescriber-availability/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByPatientID(ctx context.Context, patientID int64, status *domain.BookingStatus) ([]*domain.Booking, error)
	GetByPrescriberWithFilter(ctx context.Context, filter domain.PrescriberBookingsFilter) ([]*domain.Booking, error)
	Cancel(ctx context.Context, id int64, status domain.BookingStatus, reason string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
