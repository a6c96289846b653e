package availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/prescriber-availability/internal/domain"
	"github.com/m04kA/prescriber-availability/internal/engine/normalizer"
	cacheAvailability "github.com/m04kA/prescriber-availability/internal/infra/cache/availability"
	"github.com/m04kA/prescriber-availability/internal/service/availability/models"
)

const (
	cacheHit   = "hit"
	cacheMiss  = "miss"
	cacheError = "error"
)

// Service сервис для работы с недельным расписанием специалистов
type Service struct {
	repo       AvailabilityRepository
	cache      AvailabilityCache
	normalizer Normalizer
	txManager  TransactionManager
	metrics    Metrics
	logger     Logger
}

// NewService создает новый экземпляр сервиса расписаний
// cache может быть nil - тогда расписание всегда читается из БД
func NewService(
	repo AvailabilityRepository,
	cache AvailabilityCache,
	normalizer Normalizer,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *Service {
	return &Service{
		repo:       repo,
		cache:      cache,
		normalizer: normalizer,
		txManager:  txManager,
		metrics:    metrics,
		logger:     logger,
	}
}

// Get получает сохранённое расписание специалиста
// Публичный метод - доступен всем; отсутствие расписания - пустой массив
func (s *Service) Get(ctx context.Context, prescriberID int64) (*domain.AvailabilityDocument, error) {
	s.logger.Info("Get: fetching availability for prescriber=%d", prescriberID)

	availability, err := s.Availability(ctx, prescriberID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Get: successfully fetched %d slots for prescriber=%d", len(availability), prescriberID)
	return domain.NewAvailabilityDocument(availability), nil
}

// Availability возвращает расписание специалиста: сначала из кеша, затем из БД.
// Ошибки кеша не прерывают запрос.
func (s *Service) Availability(ctx context.Context, prescriberID int64) (domain.WeeklyAvailability, error) {
	fill := false
	var generation int64

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, prescriberID)
		switch {
		case err == nil:
			s.metrics.CacheLookup(cacheHit)
			return cached, nil
		case errors.Is(err, cacheAvailability.ErrCacheMiss):
			s.metrics.CacheLookup(cacheMiss)
		default:
			s.metrics.CacheLookup(cacheError)
			s.logger.Warn("Availability: cache read failed for prescriber=%d: %v", prescriberID, err)
		}

		// поколение читается до БД: сохранение между чтением и записью в кеш сделает его устаревшим
		generation, err = s.cache.Generation(ctx, prescriberID)
		if err != nil {
			s.logger.Warn("Availability: cache generation read failed for prescriber=%d: %v", prescriberID, err)
		} else {
			fill = true
		}
	}

	availability, err := s.repo.GetByPrescriberID(ctx, prescriberID)
	if err != nil {
		s.logger.Error("Availability: repository error for prescriber=%d: %v", prescriberID, err)
		return nil, fmt.Errorf("%w: Availability - repository error: %v", ErrInternal, err)
	}

	if fill {
		err := s.cache.Set(ctx, prescriberID, availability, generation)
		switch {
		case err == nil:
		case errors.Is(err, cacheAvailability.ErrStaleGeneration):
			s.logger.Info("Availability: skipped cache fill for prescriber=%d, saved meanwhile", prescriberID)
		default:
			s.logger.Warn("Availability: cache write failed for prescriber=%d: %v", prescriberID, err)
		}
	}

	return availability, nil
}

// Save нормализует, проверяет и целиком сохраняет расписание специалиста
// Доступно только самому специалисту
func (s *Service) Save(ctx context.Context, req *models.SaveAvailabilityRequest) (*domain.AvailabilityDocument, error) {
	s.logger.Info("Save: saving availability for prescriber=%d by user=%d", req.PrescriberID, req.UserID)

	// 1. Проверяем права доступа
	if req.UserID != req.PrescriberID {
		s.logger.Warn("Save: user=%d cannot edit availability of prescriber=%d", req.UserID, req.PrescriberID)
		return nil, ErrAccessDenied
	}

	// 2. Расписание заменяется целиком: вход, который не читается как список слотов,
	// не должен превратиться в пустое расписание
	if err := s.normalizer.CheckShape(req.Availability); err != nil {
		s.logger.Warn("Save: unreadable availability for prescriber=%d: %v", req.PrescriberID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 3. Нормализуем вход
	availability := s.normalizer.Normalize(req.Availability)

	// 4. Проверяем интервалы активных слотов; ValidationError возвращается как есть
	if err := s.normalizer.Validate(availability); err != nil {
		s.metrics.ValidationFailed()
		s.logger.Warn("Save: validation failed for prescriber=%d: %v", req.PrescriberID, err)
		return nil, err
	}

	// 5. Приводим к каноническому виду: убираем неактивные слоты, выравниваем названия дней
	canonical := s.normalizer.Canonicalize(availability)

	// 6. Заменяем расписание в одной транзакции
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		return s.repo.Replace(txCtx, req.PrescriberID, canonical)
	})
	if err != nil {
		s.logger.Error("Save: repository error for prescriber=%d: %v", req.PrescriberID, err)
		return nil, fmt.Errorf("%w: Save - repository error: %v", ErrInternal, err)
	}

	// 7. Сбрасываем кеш после коммита
	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, req.PrescriberID); err != nil {
			s.logger.Error("Save: cache invalidation failed for prescriber=%d: %v", req.PrescriberID, err)
		}
	}

	s.logger.Info("Save: successfully saved %d slots for prescriber=%d", len(canonical), req.PrescriberID)
	return domain.NewAvailabilityDocument(canonical), nil
}

// Edit выполняет один шаг редактора над черновиком и возвращает новый черновик
// Черновик не сохраняется; проблемы интервалов возвращаются для отображения, а не как ошибка
func (s *Service) Edit(ctx context.Context, req *models.EditAvailabilityRequest) (*models.EditAvailabilityResponse, error) {
	draft := s.normalizer.Normalize(req.Draft)

	var result domain.WeeklyAvailability
	switch req.Operation {
	case models.OpNormalize:
		result = draft
	case models.OpToggleDay:
		if req.Day == "" {
			return nil, fmt.Errorf("%w: day is required for %s", ErrInvalidInput, req.Operation)
		}
		result = s.normalizer.ToggleDay(draft, req.Day)
	case models.OpAddSlot:
		if req.Day == "" {
			return nil, fmt.Errorf("%w: day is required for %s", ErrInvalidInput, req.Operation)
		}
		result = s.normalizer.AddSlot(draft, req.Day)
	case models.OpRemoveSlot:
		result = s.normalizer.RemoveSlot(draft, req.Day, req.Index)
	case models.OpUpdateSlotTime:
		if req.Field != domain.FieldStartTime && req.Field != domain.FieldEndTime {
			return nil, fmt.Errorf("%w: field must be %s or %s", ErrInvalidInput, domain.FieldStartTime, domain.FieldEndTime)
		}
		result = s.normalizer.UpdateSlotTime(draft, req.Day, req.Index, req.Field, req.Value)
	case models.OpApplyPreset:
		result = s.normalizer.ApplyPreset(normalizer.Preset(req.Preset))
	default:
		s.logger.Warn("Edit: unknown operation=%q", req.Operation)
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperation, req.Operation)
	}

	resp := &models.EditAvailabilityResponse{
		Availability: result,
		Issues:       []normalizer.Issue{},
	}

	var vErr *normalizer.ValidationError
	if err := s.normalizer.Validate(result); errors.As(err, &vErr) {
		resp.Issues = vErr.Issues
	}

	return resp, nil
}
