package update_availability

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/prescriber-availability/internal/api/handlers"
	"github.com/m04kA/prescriber-availability/internal/api/middleware"
	"github.com/m04kA/prescriber-availability/internal/service/availability"
)

const (
	msgInvalidPrescriberID = "некорректный ID специалиста"
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgMissingUserID       = "отсутствует ID пользователя"
	msgForbidden           = "доступ запрещен"

	maxBodyBytes = 64 << 10
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

// Handle PUT /api/v1/prescribers/{prescriberId}/availability
// Расписание заменяется целиком; некорректные интервалы - 400 со списком проблем
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	prescriberID, err := strconv.ParseInt(vars["prescriberId"], 10, 64)
	if err != nil || prescriberID <= 0 {
		h.logger.Warn("PUT /prescribers/{id}/availability - Invalid prescriber ID: %s", vars["prescriberId"])
		handlers.RespondBadRequest(w, msgInvalidPrescriberID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /prescribers/{id}/availability - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		h.logger.Warn("PUT /prescribers/{id}/availability - Failed to read body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := ToServiceRequest(userID, prescriberID, body)
	if err != nil {
		h.logger.Warn("PUT /prescribers/{id}/availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Save(r.Context(), serviceReq)
	if err != nil {
		if handlers.RespondValidationError(w, err) {
			h.logger.Warn("PUT /prescribers/{id}/availability - Validation failed: prescriber_id=%d, %v",
				prescriberID, err)
			return
		}

		switch {
		case errors.Is(err, availability.ErrAccessDenied):
			h.logger.Warn("PUT /prescribers/{id}/availability - Access denied: prescriber_id=%d, user_id=%d",
				prescriberID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("PUT /prescribers/{id}/availability - Unreadable availability: prescriber_id=%d, %v",
				prescriberID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PUT /prescribers/{id}/availability - Failed to save availability: prescriber_id=%d, error=%v",
				prescriberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /prescribers/{id}/availability - Availability saved: prescriber_id=%d, slots=%d",
		prescriberID, len(result.Availability))
	handlers.RespondJSON(w, http.StatusOK, result)
}
