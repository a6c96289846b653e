package get_prescriber_bookings

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
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
	lastReq *models.GetPrescriberBookingsRequest
	err     error
}

func (s *fakeService) GetPrescriberBookings(_ context.Context, req *models.GetPrescriberBookingsRequest) (*models.BookingListResponse, error) {
	s.lastReq = req
	if s.err != nil {
		return nil, s.err
	}
	return &models.BookingListResponse{Bookings: []models.BookingResponse{}}, nil
}

func serve(svc BookingService, id string, userID int64, query string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/prescribers/"+id+"/bookings"+query, nil)
	req = mux.SetURLVars(req, map[string]string{"prescriberId": id})
	if userID > 0 {
		req = req.WithContext(middleware.WithUserID(req.Context(), userID))
	}
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(rec, req)
	return rec
}

func TestToServiceRequest(t *testing.T) {
	req, err := ToServiceRequest(7, 7, url.Values{"date": {"2026-10-19"}, "from": {"2026-01-01"}, "status": {"pending"}})
	require.NoError(t, err)
	require.NotNil(t, req.StartDate)
	assert.Equal(t, "2026-10-19", req.StartDate.Format("2006-01-02"))
	assert.Equal(t, "2026-10-19", req.EndDate.Format("2006-01-02"))
	assert.Equal(t, "pending", *req.Status)

	req, err = ToServiceRequest(7, 7, url.Values{"from": {"2026-10-01"}, "includeInactive": {"true"}})
	require.NoError(t, err)
	assert.Nil(t, req.EndDate)
	assert.True(t, req.IncludeInactive)

	_, err = ToServiceRequest(7, 7, url.Values{"to": {"tomorrow"}})
	assert.Error(t, err)
	_, err = ToServiceRequest(7, 7, url.Values{"includeInactive": {"maybe"}})
	assert.Error(t, err)
}

func TestHandle(t *testing.T) {
	svc := &fakeService{}
	rec := serve(svc, "7", 7, "?date=2026-10-19")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
	assert.Equal(t, int64(7), svc.lastReq.PrescriberID)

	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{}, "x", 7, "").Code)
	assert.Equal(t, http.StatusUnauthorized, serve(&fakeService{}, "7", 0, "").Code)
	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{}, "7", 7, "?date=bad").Code)
	assert.Equal(t, http.StatusForbidden, serve(&fakeService{err: bookings.ErrAccessDenied}, "7", 8, "").Code)
	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{err: bookings.ErrInvalidInput}, "7", 7, "?status=done").Code)
	assert.Equal(t, http.StatusInternalServerError, serve(&fakeService{err: bookings.ErrInternal}, "7", 7, "").Code)
}
