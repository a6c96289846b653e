package get_time_slots

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getTimeSlots "github.com/m04kA/prescriber-availability/internal/usecase/get_time_slots"
	"github.com/m04kA/prescriber-availability/pkg/logger"
)

type fakeUseCase struct {
	lastReq *getTimeSlots.Request
	resp    *getTimeSlots.Response
	err     error
}

func (u *fakeUseCase) Execute(_ context.Context, req *getTimeSlots.Request) (*getTimeSlots.Response, error) {
	u.lastReq = req
	return u.resp, u.err
}

func serve(uc GetTimeSlotsUseCase, id, query string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/prescribers/"+id+"/time-slots"+query, nil)
	req = mux.SetURLVars(req, map[string]string{"prescriberId": id})
	rec := httptest.NewRecorder()
	NewHandler(uc, logger.NewNop()).Handle(rec, req)
	return rec
}

func TestHandle_ReturnsSlots(t *testing.T) {
	uc := &fakeUseCase{resp: &getTimeSlots.Response{
		Date:            time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC),
		Weekday:         "Monday",
		HasAvailability: true,
		Slots:           []string{"9:00 AM", "9:30 AM"},
		Booked:          []string{"9:30 AM"},
	}}

	rec := serve(uc, "4", "?date=2026-10-19")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, "2026-10-19", uc.lastReq.Date)
	assert.Equal(t, int64(4), uc.lastReq.PrescriberID)
	assert.JSONEq(t, `{
		"date": "2026-10-19",
		"weekday": "Monday",
		"hasAvailability": true,
		"slots": ["9:00 AM", "9:30 AM"],
		"booked": ["9:30 AM"]
	}`, rec.Body.String())
}

func TestHandle_NoSlotsIsEmptyState(t *testing.T) {
	uc := &fakeUseCase{resp: &getTimeSlots.Response{
		Date:    time.Date(2026, time.October, 20, 0, 0, 0, 0, time.UTC),
		Weekday: "Tuesday",
	}}

	rec := serve(uc, "4", "?date=2026-10-20")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"slots":[]`)
	assert.Contains(t, rec.Body.String(), `"booked":[]`)
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, serve(&fakeUseCase{}, "x", "?date=2026-10-19").Code)
	assert.Equal(t, http.StatusBadRequest, serve(&fakeUseCase{}, "4", "").Code)
	assert.Equal(t, http.StatusBadRequest,
		serve(&fakeUseCase{err: getTimeSlots.ErrInvalidInput}, "4", "?date=19.10.2026").Code)
	assert.Equal(t, http.StatusInternalServerError,
		serve(&fakeUseCase{err: errors.New("boom")}, "4", "?date=2026-10-19").Code)
}
