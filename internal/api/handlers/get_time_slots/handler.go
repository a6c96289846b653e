package get_time_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/prescriber-availability/internal/api/handlers"
	getTimeSlots "github.com/m04kA/prescriber-availability/internal/usecase/get_time_slots"
)

const (
	msgInvalidPrescriberID = "некорректный ID специалиста"
	msgMissingDate         = "дата обязательна"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	useCase GetTimeSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetTimeSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/prescribers/{prescriberId}/time-slots
// Query params: date (обязательно, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	prescriberID, err := strconv.ParseInt(vars["prescriberId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /prescribers/{id}/time-slots - Invalid prescriber ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPrescriberID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /prescribers/{id}/time-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getTimeSlots.Request{
		PrescriberID: prescriberID,
		Date:         dateStr,
	})
	if err != nil {
		switch {
		case errors.Is(err, getTimeSlots.ErrInvalidInput):
			h.logger.Warn("GET /prescribers/{id}/time-slots - Invalid input: prescriber_id=%d, %v", prescriberID, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /prescribers/{id}/time-slots - Failed to get slots: prescriber_id=%d, date=%s, error=%v",
				prescriberID, dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /prescribers/{id}/time-slots - Slots retrieved: prescriber_id=%d, date=%s, slots_count=%d",
		prescriberID, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
