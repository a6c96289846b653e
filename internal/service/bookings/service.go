package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/prescriber-availability/internal/domain"
	bookingRepo "github.com/m04kA/prescriber-availability/internal/infra/storage/booking"
	"github.com/m04kA/prescriber-availability/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
// Видеть бронирование могут только пациент и специалист
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	booking, err := s.getBooking(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	if booking.PatientID != userID && booking.PrescriberID != userID {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// GetPatientBookings получает историю бронирований пациента
// Опционально фильтрует по статусу
func (s *Service) GetPatientBookings(ctx context.Context, req *models.GetPatientBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetPatientBookings: fetching bookings for patient=%d by user=%d, status=%v",
		req.PatientID, req.UserID, req.Status)

	if req.UserID != req.PatientID {
		s.logger.Warn("GetPatientBookings: user=%d cannot read bookings of patient=%d", req.UserID, req.PatientID)
		return nil, ErrAccessDenied
	}

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetPatientBookings: invalid status=%s for patient=%d", *req.Status, req.PatientID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByPatientID(ctx, req.PatientID, domainStatus)
	if err != nil {
		s.logger.Error("GetPatientBookings: repository error for patient=%d: %v", req.PatientID, err)
		return nil, fmt.Errorf("%w: GetPatientBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetPatientBookings: successfully fetched %d bookings for patient=%d", len(bookings), req.PatientID)
	return models.FromDomainBookingList(bookings), nil
}

// GetPrescriberBookings получает бронирования специалиста с фильтрацией по периоду и статусу
// Доступно только самому специалисту
func (s *Service) GetPrescriberBookings(ctx context.Context, req *models.GetPrescriberBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetPrescriberBookings: fetching bookings for prescriber=%d by user=%d", req.PrescriberID, req.UserID)

	if req.UserID != req.PrescriberID {
		s.logger.Warn("GetPrescriberBookings: user=%d cannot read bookings of prescriber=%d", req.UserID, req.PrescriberID)
		return nil, ErrAccessDenied
	}

	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		s.logger.Warn("GetPrescriberBookings: endDate before startDate for prescriber=%d", req.PrescriberID)
		return nil, fmt.Errorf("%w: endDate is before startDate", ErrInvalidInput)
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetPrescriberBookings: invalid filter for prescriber=%d: %v", req.PrescriberID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByPrescriberWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetPrescriberBookings: repository error for prescriber=%d: %v", req.PrescriberID, err)
		return nil, fmt.Errorf("%w: GetPrescriberBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetPrescriberBookings: successfully fetched %d bookings for prescriber=%d", len(bookings), req.PrescriberID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование
// Пациент отменяет своё бронирование (cancelled_by_patient), специалист - любое своё (cancelled_by_prescriber)
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) (*models.CancelBookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d", bookingID, req.UserID)

	booking, err := s.getBooking(ctx, "Cancel", bookingID)
	if err != nil {
		return nil, err
	}

	var cancelStatus domain.BookingStatus
	switch req.UserID {
	case booking.PatientID:
		cancelStatus = domain.StatusCancelledByPatient
	case booking.PrescriberID:
		cancelStatus = domain.StatusCancelledByPrescriber
	default:
		s.logger.Warn("Cancel: access denied for user=%d to cancel booking id=%d", req.UserID, bookingID)
		return nil, ErrAccessDenied
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return nil, ErrCannotCancel
	}

	if err := s.bookingRepo.Cancel(ctx, bookingID, cancelStatus, req.CancellationReason); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found during cancellation", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d with status=%s", bookingID, cancelStatus)
	return &models.CancelBookingResponse{ID: bookingID, Status: string(cancelStatus)}, nil
}

func (s *Service) getBooking(ctx context.Context, op string, id int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return booking, nil
}
