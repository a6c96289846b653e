package get_availability

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/prescriber-availability/internal/domain"
	"github.com/m04kA/prescriber-availability/pkg/logger"
)

type fakeService struct {
	availability domain.WeeklyAvailability
	err          error
}

func (s *fakeService) Get(_ context.Context, _ int64) (*domain.AvailabilityDocument, error) {
	if s.err != nil {
		return nil, s.err
	}
	return domain.NewAvailabilityDocument(s.availability), nil
}

func serve(svc AvailabilityService, id string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/prescribers/"+id+"/availability", nil)
	req = mux.SetURLVars(req, map[string]string{"prescriberId": id})
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(rec, req)
	return rec
}

func TestHandle_ReturnsAvailability(t *testing.T) {
	svc := &fakeService{availability: domain.WeeklyAvailability{
		{Day: "Monday", StartTime: "09:00", EndTime: "17:00"},
	}}

	rec := serve(svc, "12")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"availability":[{"day":"Monday","startTime":"09:00","endTime":"17:00"}]}`,
		rec.Body.String())
}

func TestHandle_EmptyState(t *testing.T) {
	rec := serve(&fakeService{}, "12")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.JSONEq(t, `{"availability":[]}`, rec.Body.String())

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body, 1)
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{}, "abc").Code)
	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{}, "0").Code)
	assert.Equal(t, http.StatusInternalServerError, serve(&fakeService{err: errors.New("db")}, "1").Code)
}
