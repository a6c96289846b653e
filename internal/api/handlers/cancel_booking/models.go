package cancel_booking

import (
	"github.com/m04kA/prescriber-availability/internal/service/bookings/models"
	"github.com/m04kA/prescriber-availability/pkg/ptr"
)

// CancelBookingRequest HTTP request model
type CancelBookingRequest struct {
	CancellationReason *string `json:"cancellationReason,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *CancelBookingRequest) ToServiceRequest(userID int64) *models.CancelBookingRequest {
	return &models.CancelBookingRequest{
		UserID:             userID,
		CancellationReason: ptr.Value(r.CancellationReason),
	}
}
