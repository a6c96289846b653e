package get_time_slots

import (
	"context"
	"time"

	"github.com/m04kA/prescriber-availability/internal/domain"
)

// AvailabilityProvider источник сохранённого расписания специалиста
type AvailabilityProvider interface {
	Availability(ctx context.Context, prescriberID int64) (domain.WeeklyAvailability, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByPrescriberWithFilter(ctx context.Context, filter domain.PrescriberBookingsFilter) ([]*domain.Booking, error)
}

// Projector проекция расписания на время
type Projector interface {
	TimeSlots(availability domain.WeeklyAvailability, date time.Time) []string
	Now() time.Time
}

// Metrics счётчики проекции
type Metrics interface {
	TimeSlotsProduced(n int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
