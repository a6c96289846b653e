package get_available_dates

import (
	"context"
	"fmt"
)

// UseCase use case для получения дат, на которые у специалиста есть окна
type UseCase struct {
	availability AvailabilityProvider
	projector    Projector
	metrics      Metrics
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	availability AvailabilityProvider,
	projector Projector,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		availability: availability,
		projector:    projector,
		metrics:      metrics,
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных дат
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableDates: prescriber=%d", req.PrescriberID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableDates: validation failed: %v", err)
		return nil, err
	}

	// Запрошенный горизонт может только сузить окно бронирования:
	// дата за пределами настроенного горизонта не будет принята при записи
	horizon := uc.projector.HorizonDays()
	if req.HorizonDays != nil {
		if *req.HorizonDays > horizon {
			uc.logger.Info("GetAvailableDates: horizon %d capped to %d for prescriber=%d",
				*req.HorizonDays, horizon, req.PrescriberID)
		} else {
			horizon = *req.HorizonDays
		}
	}

	// 2. Получаем расписание
	availability, err := uc.availability.Availability(ctx, req.PrescriberID)
	if err != nil {
		uc.logger.Error("GetAvailableDates: failed to get availability for prescriber=%d: %v", req.PrescriberID, err)
		return nil, fmt.Errorf("%w: failed to get availability: %v", ErrInternal, err)
	}

	// 3. Проецируем на календарь
	dates := uc.projector.Dates(availability, horizon)
	uc.metrics.DatesProduced(len(dates))

	uc.logger.Info("GetAvailableDates: prescriber=%d, horizon=%d, dates=%d", req.PrescriberID, horizon, len(dates))

	return &Response{
		PrescriberID:    req.PrescriberID,
		HasAvailability: len(availability) > 0,
		HorizonDays:     horizon,
		Dates:           dates,
	}, nil
}
