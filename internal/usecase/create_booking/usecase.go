package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/prescriber-availability/internal/domain"
	"github.com/m04kA/prescriber-availability/internal/integrations/userservice"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo      BookingRepository
	availabilityRepo AvailabilityRepository
	userClient       UserServiceClient
	projector        Projector
	txManager        TransactionManager
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
// userClient может быть nil - тогда проверка пациента пропускается
func NewUseCase(
	bookingRepo BookingRepository,
	availabilityRepo AvailabilityRepository,
	userClient UserServiceClient,
	projector Projector,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:      bookingRepo,
		availabilityRepo: availabilityRepo,
		userClient:       userClient,
		projector:        projector,
		txManager:        txManager,
		logger:           logger,
	}
}

// Execute выполняет use case создания бронирования
// Дата и время должны входить в проекцию текущего расписания специалиста
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: patient=%d, prescriber=%d, date=%s, time=%s",
		req.PatientID, req.PrescriberID, req.Date, req.Time)

	now := uc.projector.Now()

	// 1. Валидация входных данных
	parsed, err := validateRequest(req, now.Location())
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем горизонт бронирования
	if err := validateDateInHorizon(parsed.date, now, uc.projector.HorizonDays()); err != nil {
		uc.logger.Warn("CreateBooking: %v", err)
		return nil, err
	}

	// 3. Проверяем пациента (с graceful degradation)
	if err := uc.checkPatient(ctx, req.PatientID); err != nil {
		return nil, err
	}

	var result *domain.Booking

	// 4. Проверка слота и запись в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		availability, err := uc.availabilityRepo.GetByPrescriberID(txCtx, req.PrescriberID)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get availability: %v", err)
			return fmt.Errorf("%w: failed to get availability: %v", ErrInternal, err)
		}

		if !uc.projector.IsBookable(availability, parsed.date, parsed.slot) {
			uc.logger.Warn("CreateBooking: slot %s on %s is not in prescriber=%d availability",
				parsed.slot, parsed.date.Format(domain.DateFormat), req.PrescriberID)
			return ErrSlotNotAvailable
		}

		created, err := uc.bookingRepo.Create(txCtx, &domain.Booking{
			PrescriberID: req.PrescriberID,
			PatientID:    req.PatientID,
			BookingDate:  parsed.date,
			StartTime:    parsed.startTime,
			Status:       domain.StatusPending,
			Notes:        req.Notes,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	return &Response{
		ID:           result.ID,
		PrescriberID: result.PrescriberID,
		PatientID:    result.PatientID,
		BookingDate:  result.BookingDate,
		StartTime:    result.StartTime,
		DisplayTime:  parsed.slot,
		Status:       string(result.Status),
		Notes:        result.Notes,
		CreatedAt:    result.CreatedAt,
		UpdatedAt:    result.UpdatedAt,
	}, nil
}

// checkPatient проверяет пациента в UserService
// Недоступность UserService не блокирует бронирование
func (uc *UseCase) checkPatient(ctx context.Context, patientID int64) error {
	if uc.userClient == nil {
		return nil
	}

	err := uc.userClient.VerifyPatient(ctx, patientID)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, userservice.ErrPatientNotFound):
		uc.logger.Warn("CreateBooking: patient id=%d not found", patientID)
		return ErrPatientNotFound
	case errors.Is(err, userservice.ErrPatientInactive):
		uc.logger.Warn("CreateBooking: patient id=%d is inactive", patientID)
		return ErrPatientInactive
	default:
		uc.logger.Warn("CreateBooking: patient check skipped for patient=%d: %v", patientID, err)
		return nil
	}
}
