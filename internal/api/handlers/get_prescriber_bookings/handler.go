package get_prescriber_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/prescriber-availability/internal/api/handlers"
	"github.com/m04kA/prescriber-availability/internal/api/middleware"
	"github.com/m04kA/prescriber-availability/internal/service/bookings"
)

const (
	msgInvalidPrescriberID = "некорректный ID специалиста"
	msgMissingUserID       = "отсутствует ID пользователя"
	msgInvalidParams       = "некорректные параметры запроса"
	msgForbidden           = "доступ запрещен"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/prescribers/{prescriberId}/bookings
// Query params: date | from, to; status; includeInactive (все опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	prescriberID, err := strconv.ParseInt(vars["prescriberId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /prescribers/{id}/bookings - Invalid prescriber ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPrescriberID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /prescribers/{id}/bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	serviceReq, err := ToServiceRequest(prescriberID, userID, r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /prescribers/{id}/bookings - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.GetPrescriberBookings(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /prescribers/{id}/bookings - Access denied: prescriber_id=%d, user_id=%d",
				prescriberID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /prescribers/{id}/bookings - Invalid filter: prescriber_id=%d, %v", prescriberID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /prescribers/{id}/bookings - Failed to get bookings: prescriber_id=%d, error=%v",
				prescriberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /prescribers/{id}/bookings - Bookings retrieved: prescriber_id=%d, count=%d",
		prescriberID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result.Bookings)
}
