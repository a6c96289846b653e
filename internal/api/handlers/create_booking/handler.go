package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/prescriber-availability/internal/api/handlers"
	"github.com/m04kA/prescriber-availability/internal/api/middleware"
	createBooking "github.com/m04kA/prescriber-availability/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidInput       = "некорректные данные бронирования: ожидается дата YYYY-MM-DD и время HH:MM или h:mm AM/PM"
	msgSlotNotAvailable   = "выбранное время недоступно у специалиста"
	msgDateOutOfRange     = "дата вне горизонта бронирования"
	msgPatientNotFound    = "пациент не найден"
	msgPatientInactive    = "аккаунт пациента деактивирован"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	patientID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(patientID))
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: patient_id=%d, %v", patientID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: patient_id=%d, prescriber_id=%d, date=%s, time=%s",
				patientID, req.PrescriberID, req.Date, req.Time)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrDateOutOfRange):
			h.logger.Warn("POST /bookings - Date out of range: patient_id=%d, date=%s", patientID, req.Date)
			handlers.RespondBadRequest(w, msgDateOutOfRange)

		case errors.Is(err, createBooking.ErrPatientNotFound):
			h.logger.Warn("POST /bookings - Patient not found: patient_id=%d", patientID)
			handlers.RespondNotFound(w, msgPatientNotFound)

		case errors.Is(err, createBooking.ErrPatientInactive):
			h.logger.Warn("POST /bookings - Patient inactive: patient_id=%d", patientID)
			handlers.RespondForbidden(w, msgPatientInactive)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: patient_id=%d, prescriber_id=%d, error=%v",
				patientID, req.PrescriberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, patient_id=%d, prescriber_id=%d",
		result.ID, patientID, req.PrescriberID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
