package get_available_dates

import (
	"context"

	"github.com/m04kA/prescriber-availability/internal/domain"
)

// AvailabilityProvider источник сохранённого расписания специалиста
type AvailabilityProvider interface {
	Availability(ctx context.Context, prescriberID int64) (domain.WeeklyAvailability, error)
}

// Projector проекция расписания на даты
type Projector interface {
	Dates(availability domain.WeeklyAvailability, horizonDays int) []domain.CalendarDate
	HorizonDays() int
}

// Metrics счётчики проекции
type Metrics interface {
	DatesProduced(n int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
