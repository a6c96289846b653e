package update_availability

import (
	"context"

	"github.com/m04kA/prescriber-availability/internal/domain"
	"github.com/m04kA/prescriber-availability/internal/service/availability/models"
)

type AvailabilityService interface {
	Save(ctx context.Context, req *models.SaveAvailabilityRequest) (*domain.AvailabilityDocument, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
