package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/m04kA/prescriber-availability/internal/engine/normalizer"
)

const (
	msgInternalError = "внутренняя ошибка сервера"
	msgValidation    = "расписание содержит некорректные интервалы"
)

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse тело ответа 400 со списком отклонённых слотов
type ValidationErrorResponse struct {
	Error  string             `json:"error"`
	Issues []normalizer.Issue `json:"issues"`
}

// RespondJSON пишет JSON ответ; nil payload - пустое тело
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

// RespondError пишет ошибку в формате {"error": "..."}
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Error: message})
}

func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

func RespondForbidden(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusForbidden, message)
}

func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnauthorized, message)
}

func RespondConflict(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusConflict, message)
}

func RespondTooManyRequests(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusTooManyRequests, message)
}

func RespondServiceUnavailable(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusServiceUnavailable, message)
}

func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}

// RespondValidationError отвечает 400 со списком проблем, если err - ValidationError.
// Возвращает false, если err другого типа и ответ не записан.
func RespondValidationError(w http.ResponseWriter, err error) bool {
	var vErr *normalizer.ValidationError
	if !errors.As(err, &vErr) {
		return false
	}
	RespondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
		Error:  msgValidation,
		Issues: vErr.Issues,
	})
	return true
}

// DecodeJSON декодирует тело запроса
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return errors.New("empty request body")
	}
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}
