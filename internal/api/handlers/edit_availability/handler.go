package edit_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/prescriber-availability/internal/api/handlers"
	"github.com/m04kA/prescriber-availability/internal/service/availability"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgUnknownOperation   = "неизвестная операция"
	msgInvalidInput       = "некорректные параметры операции"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/availability/edit
// Один шаг редактора над черновиком; ничего не сохраняет
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req EditAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /availability/edit - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Edit(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrUnknownOperation):
			h.logger.Warn("POST /availability/edit - Unknown operation: %q", req.Operation)
			handlers.RespondBadRequest(w, msgUnknownOperation)

		case errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("POST /availability/edit - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /availability/edit - Failed to edit availability: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
