package domain

import (
	"time"

	"github.com/m04kA/prescriber-availability/pkg/types"
)

// BookingStatus represents the status of a consultation booking
type BookingStatus string

const (
	StatusPending               BookingStatus = "pending"
	StatusConfirmed             BookingStatus = "confirmed"
	StatusCancelledByPatient    BookingStatus = "cancelled_by_patient"
	StatusCancelledByPrescriber BookingStatus = "cancelled_by_prescriber"
)

// InactiveStatuses statuses excluded from listings unless asked for
var InactiveStatuses = []BookingStatus{StatusCancelledByPatient, StatusCancelledByPrescriber}

// Booking a consultation a patient booked with a prescriber.
// A booking carries a start time only.
type Booking struct {
	ID           int64
	PrescriberID int64
	PatientID    int64
	BookingDate  time.Time
	StartTime    types.TimeString
	Status       BookingStatus
	Notes        *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking has not been cancelled
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelledByPatient && b.Status != StatusCancelledByPrescriber
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsValidBookingStatus reports whether s is a known status
func IsValidBookingStatus(s BookingStatus) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelledByPatient, StatusCancelledByPrescriber:
		return true
	}
	return false
}

// PrescriberBookingsFilter фильтр для получения бронирований специалиста
type PrescriberBookingsFilter struct {
	PrescriberID    int64          // Обязательный параметр
	StartDate       *time.Time     // Начало периода (опционально)
	EndDate         *time.Time     // Конец периода (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли отмененные бронирования
}
