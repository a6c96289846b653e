package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/prescriber-availability/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// AvailabilityRepository интерфейс репозитория расписаний
type AvailabilityRepository interface {
	GetByPrescriberID(ctx context.Context, prescriberID int64) (domain.WeeklyAvailability, error)
}

// UserServiceClient интерфейс клиента для UserService
// VerifyPatient: nil - пациент активен; ErrPatientNotFound, ErrPatientInactive или ErrServiceDegraded
type UserServiceClient interface {
	VerifyPatient(ctx context.Context, patientID int64) error
}

// Projector проверка даты и времени по расписанию
type Projector interface {
	IsBookable(availability domain.WeeklyAvailability, date time.Time, slot string) bool
	HorizonDays() int
	Now() time.Time
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
