package edit_availability

import (
	"context"

	"github.com/m04kA/prescriber-availability/internal/service/availability/models"
)

type AvailabilityService interface {
	Edit(ctx context.Context, req *models.EditAvailabilityRequest) (*models.EditAvailabilityResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
