package create_booking

import (
	"time"

	"github.com/m04kA/prescriber-availability/internal/domain"
	createBooking "github.com/m04kA/prescriber-availability/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
// Пациент берётся из X-User-ID
type CreateBookingRequest struct {
	PrescriberID int64   `json:"prescriberId"`
	Date         string  `json:"date"` // "2026-10-19"
	Time         string  `json:"time"` // "2:30 PM" или "14:30"
	Notes        *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID           int64   `json:"id"`
	PrescriberID int64   `json:"prescriberId"`
	PatientID    int64   `json:"patientId"`
	BookingDate  string  `json:"bookingDate"`
	StartTime    string  `json:"startTime"`
	DisplayTime  string  `json:"displayTime"`
	Status       string  `json:"status"`
	Notes        *string `json:"notes,omitempty"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(patientID int64) *createBooking.Request {
	return &createBooking.Request{
		PatientID:    patientID,
		PrescriberID: r.PrescriberID,
		Date:         r.Date,
		Time:         r.Time,
		Notes:        r.Notes,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:           resp.ID,
		PrescriberID: resp.PrescriberID,
		PatientID:    resp.PatientID,
		BookingDate:  resp.BookingDate.Format(domain.DateFormat),
		StartTime:    resp.StartTime.String(),
		DisplayTime:  resp.DisplayTime,
		Status:       resp.Status,
		Notes:        resp.Notes,
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    resp.UpdatedAt.Format(time.RFC3339),
	}
}
