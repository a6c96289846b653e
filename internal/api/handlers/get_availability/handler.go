package get_availability

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/prescriber-availability/internal/api/handlers"
)

const (
	msgInvalidPrescriberID = "некорректный ID специалиста"
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

// Handle GET /api/v1/prescribers/{prescriberId}/availability
// Отсутствие расписания - не ошибка: {"availability": []}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	prescriberID, err := strconv.ParseInt(vars["prescriberId"], 10, 64)
	if err != nil || prescriberID <= 0 {
		h.logger.Warn("GET /prescribers/{id}/availability - Invalid prescriber ID: %s", vars["prescriberId"])
		handlers.RespondBadRequest(w, msgInvalidPrescriberID)
		return
	}

	result, err := h.service.Get(r.Context(), prescriberID)
	if err != nil {
		h.logger.Error("GET /prescribers/{id}/availability - Failed to get availability: prescriber_id=%d, error=%v",
			prescriberID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /prescribers/{id}/availability - Availability retrieved: prescriber_id=%d, slots=%d",
		prescriberID, len(result.Availability))
	handlers.RespondJSON(w, http.StatusOK, result)
}
