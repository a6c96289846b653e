package get_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/prescriber-availability/internal/api/middleware"
	"github.com/m04kA/prescriber-availability/internal/service/bookings"
	"github.com/m04kA/prescriber-availability/internal/service/bookings/models"
	"github.com/m04kA/prescriber-availability/pkg/logger"
)

type fakeService struct {
	err error
}

func (s *fakeService) GetByID(_ context.Context, id int64, _ int64) (*models.BookingResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.BookingResponse{
		ID:           id,
		PatientID:    1,
		PrescriberID: 2,
		BookingDate:  "2026-10-19",
		StartTime:    "09:00",
		DisplayTime:  "9:00 AM",
		Status:       "pending",
	}, nil
}

func serve(svc BookingService, id string, userID int64) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/"+id, nil)
	req = mux.SetURLVars(req, map[string]string{"bookingId": id})
	if userID > 0 {
		req = req.WithContext(middleware.WithUserID(req.Context(), userID))
	}
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		id     string
		userID int64
		want   int
	}{
		{name: "ok", id: "8", userID: 1, want: http.StatusOK},
		{name: "bad id", id: "x", userID: 1, want: http.StatusBadRequest},
		{name: "no user", id: "8", want: http.StatusUnauthorized},
		{name: "not found", err: bookings.ErrBookingNotFound, id: "8", userID: 1, want: http.StatusNotFound},
		{name: "stranger", err: bookings.ErrAccessDenied, id: "8", userID: 1, want: http.StatusForbidden},
		{name: "internal", err: bookings.ErrInternal, id: "8", userID: 1, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, serve(&fakeService{err: tt.err}, tt.id, tt.userID).Code)
		})
	}
}

func TestHandle_View(t *testing.T) {
	decode := func(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
		require.Equal(t, http.StatusOK, rec.Code)
		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		return body
	}

	t.Run("patient", func(t *testing.T) {
		body := decode(t, serve(&fakeService{}, "8", 1))
		assert.Equal(t, "Monday", body["weekday"])
		assert.Equal(t, "patient", body["viewerRole"])
		assert.Equal(t, true, body["canCancel"])
		assert.Equal(t, "9:00 AM", body["displayTime"])
	})

	t.Run("prescriber", func(t *testing.T) {
		body := decode(t, serve(&fakeService{}, "8", 2))
		assert.Equal(t, "prescriber", body["viewerRole"])
	})
}

func TestNewBookingView_Cancelled(t *testing.T) {
	view := newBookingView(&models.BookingResponse{
		PatientID:   1,
		BookingDate: "2026-10-21",
		Status:      "cancelled_by_prescriber",
	}, 1)

	assert.Equal(t, "Wednesday", view.Weekday)
	assert.False(t, view.CanCancel)
}
