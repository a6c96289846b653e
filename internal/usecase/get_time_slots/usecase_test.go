package get_time_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/prescriber-availability/internal/domain"
	"github.com/m04kA/prescriber-availability/internal/engine/projector"
	"github.com/m04kA/prescriber-availability/pkg/logger"
	"github.com/m04kA/prescriber-availability/pkg/metrics"
	"github.com/m04kA/prescriber-availability/pkg/types"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type fakeAvailability struct {
	availability domain.WeeklyAvailability
	err          error
}

func (f *fakeAvailability) Availability(_ context.Context, _ int64) (domain.WeeklyAvailability, error) {
	return f.availability, f.err
}

type fakeBookingRepo struct {
	bookings   []*domain.Booking
	lastFilter domain.PrescriberBookingsFilter
	err        error
}

func (r *fakeBookingRepo) GetByPrescriberWithFilter(_ context.Context, filter domain.PrescriberBookingsFilter) ([]*domain.Booking, error) {
	r.lastFilter = filter
	return r.bookings, r.err
}

var now = time.Date(2026, time.October, 15, 14, 45, 0, 0, time.UTC)

func newUseCase(provider AvailabilityProvider, repo BookingRepository) *UseCase {
	p := projector.New(projector.Config{IncrementMinutes: 30}, fixedClock{now: now})
	var m *metrics.Metrics
	return NewUseCase(provider, repo, p, m, logger.NewNop())
}

func TestExecute_SlotsForMatchingDay(t *testing.T) {
	provider := &fakeAvailability{availability: domain.WeeklyAvailability{
		{Day: "Monday", StartTime: "14:00", EndTime: "15:30"},
		{Day: "monday", StartTime: "09:00", EndTime: "10:00"},
		{Day: "Tuesday", StartTime: "09:00", EndTime: "17:00"},
	}}
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		{ID: 1, StartTime: types.TimeString("09:30")},
	}}

	resp, err := newUseCase(provider, repo).Execute(context.Background(), &Request{PrescriberID: 3, Date: "2026-10-19"})
	require.NoError(t, err)

	assert.Equal(t, "Monday", resp.Weekday)
	assert.True(t, resp.HasAvailability)
	assert.Equal(t, []string{"9:00 AM", "9:30 AM", "2:00 PM", "2:30 PM", "3:00 PM"}, resp.Slots)
	assert.Equal(t, []string{"9:30 AM"}, resp.Booked)

	require.NotNil(t, repo.lastFilter.StartDate)
	assert.Equal(t, int64(3), repo.lastFilter.PrescriberID)
	assert.True(t, repo.lastFilter.StartDate.Equal(*repo.lastFilter.EndDate))
	assert.False(t, repo.lastFilter.IncludeInactive)
}

func TestExecute_DayWithoutAvailability(t *testing.T) {
	provider := &fakeAvailability{availability: domain.WeeklyAvailability{
		{Day: "Monday", StartTime: "09:00", EndTime: "17:00"},
	}}

	resp, err := newUseCase(provider, &fakeBookingRepo{}).Execute(context.Background(), &Request{PrescriberID: 3, Date: "2026-10-20"})
	require.NoError(t, err)

	assert.True(t, resp.HasAvailability)
	assert.Empty(t, resp.Slots)
	assert.Empty(t, resp.Booked)
}

func TestExecute_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  *Request
	}{
		{name: "zero prescriber", req: &Request{PrescriberID: 0, Date: "2026-10-19"}},
		{name: "empty date", req: &Request{PrescriberID: 1}},
		{name: "bad date", req: &Request{PrescriberID: 1, Date: "19/10/2026"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newUseCase(&fakeAvailability{}, &fakeBookingRepo{}).Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_RepositoryErrors(t *testing.T) {
	_, err := newUseCase(&fakeAvailability{err: errors.New("boom")}, &fakeBookingRepo{}).
		Execute(context.Background(), &Request{PrescriberID: 1, Date: "2026-10-19"})
	assert.ErrorIs(t, err, ErrInternal)

	_, err = newUseCase(&fakeAvailability{}, &fakeBookingRepo{err: errors.New("boom")}).
		Execute(context.Background(), &Request{PrescriberID: 1, Date: "2026-10-19"})
	assert.ErrorIs(t, err, ErrInternal)
}
