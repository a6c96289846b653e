package get_available_dates

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/prescriber-availability/internal/api/handlers"
	getAvailableDates "github.com/m04kA/prescriber-availability/internal/usecase/get_available_dates"
)

const (
	msgInvalidPrescriberID = "некорректный ID специалиста"
	msgInvalidHorizon      = "некорректный горизонт, ожидается число дней"
	msgInvalidParams       = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetAvailableDatesUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableDatesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/prescribers/{prescriberId}/available-dates
// Query params: horizonDays (опционально, не шире настроенного горизонта бронирования)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	prescriberID, err := strconv.ParseInt(vars["prescriberId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /prescribers/{id}/available-dates - Invalid prescriber ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPrescriberID)
		return
	}

	useCaseReq, err := ToUseCaseRequest(prescriberID, r.URL.Query().Get("horizonDays"))
	if err != nil {
		h.logger.Warn("GET /prescribers/{id}/available-dates - Invalid horizon: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHorizon)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableDates.ErrInvalidInput):
			h.logger.Warn("GET /prescribers/{id}/available-dates - Invalid input: prescriber_id=%d, %v", prescriberID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /prescribers/{id}/available-dates - Failed to get dates: prescriber_id=%d, error=%v",
				prescriberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /prescribers/{id}/available-dates - Dates retrieved: prescriber_id=%d, dates_count=%d",
		prescriberID, len(result.Dates))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
