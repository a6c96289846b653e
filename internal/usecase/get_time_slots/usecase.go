package get_time_slots

import (
	"context"
	"fmt"

	"github.com/m04kA/prescriber-availability/internal/domain"
)

// UseCase use case для получения слотов специалиста на конкретную дату
type UseCase struct {
	availability AvailabilityProvider
	bookingRepo  BookingRepository
	projector    Projector
	metrics      Metrics
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	availability AvailabilityProvider,
	bookingRepo BookingRepository,
	projector Projector,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		availability: availability,
		bookingRepo:  bookingRepo,
		projector:    projector,
		metrics:      metrics,
		logger:       logger,
	}
}

// Execute выполняет use case получения слотов
// Пустой список слотов - нормальное состояние, не ошибка
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetTimeSlots: prescriber=%d, date=%s", req.PrescriberID, req.Date)

	// 1. Валидация входных данных
	date, err := validateRequest(req, uc.projector.Now().Location())
	if err != nil {
		uc.logger.Warn("GetTimeSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем расписание
	availability, err := uc.availability.Availability(ctx, req.PrescriberID)
	if err != nil {
		uc.logger.Error("GetTimeSlots: failed to get availability for prescriber=%d: %v", req.PrescriberID, err)
		return nil, fmt.Errorf("%w: failed to get availability: %v", ErrInternal, err)
	}

	// 3. Проецируем расписание на дату
	slots := uc.projector.TimeSlots(availability, date)
	uc.metrics.TimeSlotsProduced(len(slots))

	// 4. Получаем активные бронирования на эту дату
	bookings, err := uc.bookingRepo.GetByPrescriberWithFilter(ctx, domain.PrescriberBookingsFilter{
		PrescriberID: req.PrescriberID,
		StartDate:    &date,
		EndDate:      &date,
	})
	if err != nil {
		uc.logger.Error("GetTimeSlots: failed to get bookings for prescriber=%d: %v", req.PrescriberID, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	booked := make([]string, 0, len(bookings))
	for _, b := range bookings {
		display, err := b.StartTime.Format12h()
		if err != nil {
			uc.logger.Warn("GetTimeSlots: booking id=%d has malformed start time %q", b.ID, b.StartTime)
			continue
		}
		booked = append(booked, display)
	}

	uc.logger.Info("GetTimeSlots: prescriber=%d, date=%s, slots=%d, booked=%d",
		req.PrescriberID, date.Format(domain.DateFormat), len(slots), len(booked))

	return &Response{
		Date:            date,
		Weekday:         date.Weekday().String(),
		HasAvailability: len(availability) > 0,
		Slots:           slots,
		Booked:          booked,
	}, nil
}
