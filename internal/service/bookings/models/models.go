package models

import (
	"errors"
	"time"

	"github.com/m04kA/prescriber-availability/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	UserID             int64  `json:"userId"`
	CancellationReason string `json:"cancellationReason"`
}

// GetPatientBookingsRequest запрос на получение бронирований пациента
type GetPatientBookingsRequest struct {
	UserID    int64   `json:"userId"`
	PatientID int64   `json:"patientId"`
	Status    *string `json:"status,omitempty"`
}

// GetPrescriberBookingsRequest запрос на получение бронирований специалиста
type GetPrescriberBookingsRequest struct {
	UserID          int64      `json:"userId"`
	PrescriberID    int64      `json:"prescriberId"`
	StartDate       *time.Time `json:"startDate,omitempty"`       // Начало периода (опционально)
	EndDate         *time.Time `json:"endDate,omitempty"`         // Конец периода (опционально)
	Status          *string    `json:"status,omitempty"`          // Фильтр по статусу (опционально)
	IncludeInactive bool       `json:"includeInactive,omitempty"` // Включить отменённые бронирования
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetPrescriberBookingsRequest) ToDomainFilter() (domain.PrescriberBookingsFilter, error) {
	filter := domain.PrescriberBookingsFilter{
		PrescriberID:    r.PrescriberID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID           int64   `json:"id"`
	PrescriberID int64   `json:"prescriberId"`
	PatientID    int64   `json:"patientId"`
	BookingDate  string  `json:"bookingDate"` // "2026-10-19"
	StartTime    string  `json:"startTime"`   // "09:30"
	DisplayTime  string  `json:"displayTime"` // "9:30 AM"
	Status       string  `json:"status"`
	Notes        *string `json:"notes,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CancelBookingResponse результат отмены
type CancelBookingResponse struct {
	ID     int64  `json:"id"`
	Status string `json:"status"` // кем отменено
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	display, err := b.StartTime.Format12h()
	if err != nil {
		display = b.StartTime.String()
	}

	resp := &BookingResponse{
		ID:                 b.ID,
		PrescriberID:       b.PrescriberID,
		PatientID:          b.PatientID,
		BookingDate:        b.BookingDate.Format(domain.DateFormat),
		StartTime:          b.StartTime.String(),
		DisplayTime:        display,
		Status:             string(b.Status),
		Notes:              b.Notes,
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)
	if !domain.IsValidBookingStatus(s) {
		return "", ErrInvalidStatus
	}
	return s, nil
}
