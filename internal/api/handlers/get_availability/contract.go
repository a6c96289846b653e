package get_availability

import (
	"context"

	"github.com/m04kA/prescriber-availability/internal/domain"
)

type AvailabilityService interface {
	Get(ctx context.Context, prescriberID int64) (*domain.AvailabilityDocument, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
