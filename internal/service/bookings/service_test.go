package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/prescriber-availability/internal/domain"
	bookingRepo "github.com/m04kA/prescriber-availability/internal/infra/storage/booking"
	"github.com/m04kA/prescriber-availability/internal/service/bookings/models"
	"github.com/m04kA/prescriber-availability/pkg/logger"
	"github.com/m04kA/prescriber-availability/pkg/ptr"
	"github.com/m04kA/prescriber-availability/pkg/types"
)

type fakeBookingRepo struct {
	bookings     map[int64]*domain.Booking
	lastFilter   domain.PrescriberBookingsFilter
	lastStatus   *domain.BookingStatus
	cancelStatus domain.BookingStatus
	err          error
}

func (r *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	if r.err != nil {
		return nil, r.err
	}
	b, ok := r.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (r *fakeBookingRepo) GetByPatientID(_ context.Context, patientID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	r.lastStatus = status
	out := make([]*domain.Booking, 0)
	for _, b := range r.bookings {
		if b.PatientID == patientID {
			out = append(out, b)
		}
	}
	return out, r.err
}

func (r *fakeBookingRepo) GetByPrescriberWithFilter(_ context.Context, filter domain.PrescriberBookingsFilter) ([]*domain.Booking, error) {
	r.lastFilter = filter
	return []*domain.Booking{}, r.err
}

func (r *fakeBookingRepo) Cancel(_ context.Context, id int64, status domain.BookingStatus, _ string) error {
	r.cancelStatus = status
	r.bookings[id].Status = status
	return nil
}

func newBooking(status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:           100,
		PrescriberID: 7,
		PatientID:    42,
		BookingDate:  time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC),
		StartTime:    types.TimeString("14:30"),
		Status:       status,
	}
}

func newService(repo *fakeBookingRepo) *Service {
	return NewService(repo, logger.NewNop())
}

func TestService_GetByID(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{100: newBooking(domain.StatusPending)}}
	svc := newService(repo)
	ctx := context.Background()

	resp, err := svc.GetByID(ctx, 100, 42)
	require.NoError(t, err)
	assert.Equal(t, "2026-10-19", resp.BookingDate)
	assert.Equal(t, "14:30", resp.StartTime)
	assert.Equal(t, "2:30 PM", resp.DisplayTime)

	_, err = svc.GetByID(ctx, 100, 7)
	assert.NoError(t, err)

	_, err = svc.GetByID(ctx, 100, 99)
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.GetByID(ctx, 101, 42)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_GetByID_RepositoryError(t *testing.T) {
	svc := newService(&fakeBookingRepo{err: errors.New("db down")})

	_, err := svc.GetByID(context.Background(), 100, 42)

	assert.ErrorIs(t, err, ErrInternal)
}

func TestService_Cancel(t *testing.T) {
	tests := []struct {
		name       string
		status     domain.BookingStatus
		userID     int64
		wantErr    error
		wantStatus domain.BookingStatus
	}{
		{name: "by patient", status: domain.StatusPending, userID: 42, wantStatus: domain.StatusCancelledByPatient},
		{name: "by prescriber", status: domain.StatusConfirmed, userID: 7, wantStatus: domain.StatusCancelledByPrescriber},
		{name: "stranger", status: domain.StatusPending, userID: 99, wantErr: ErrAccessDenied},
		{name: "already cancelled", status: domain.StatusCancelledByPatient, userID: 42, wantErr: ErrCannotCancel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{100: newBooking(tt.status)}}

			resp, err := newService(repo).Cancel(context.Background(), 100, &models.CancelBookingRequest{UserID: tt.userID})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, repo.cancelStatus)
			assert.Equal(t, string(tt.wantStatus), resp.Status)
		})
	}
}

func TestService_GetPatientBookings(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{100: newBooking(domain.StatusPending)}}
	svc := newService(repo)
	ctx := context.Background()

	resp, err := svc.GetPatientBookings(ctx, &models.GetPatientBookingsRequest{UserID: 42, PatientID: 42, Status: ptr.Ptr("pending")})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 1)
	require.NotNil(t, repo.lastStatus)
	assert.Equal(t, domain.StatusPending, *repo.lastStatus)

	_, err = svc.GetPatientBookings(ctx, &models.GetPatientBookingsRequest{UserID: 42, PatientID: 42, Status: ptr.Ptr("done")})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.GetPatientBookings(ctx, &models.GetPatientBookingsRequest{UserID: 7, PatientID: 42})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestService_GetPrescriberBookings(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{}}
	svc := newService(repo)
	ctx := context.Background()

	from := time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 7)

	resp, err := svc.GetPrescriberBookings(ctx, &models.GetPrescriberBookingsRequest{
		UserID: 7, PrescriberID: 7, StartDate: &from, EndDate: &to,
	})
	require.NoError(t, err)
	assert.NotNil(t, resp.Bookings)
	assert.Equal(t, int64(7), repo.lastFilter.PrescriberID)
	assert.Equal(t, &to, repo.lastFilter.EndDate)

	_, err = svc.GetPrescriberBookings(ctx, &models.GetPrescriberBookingsRequest{
		UserID: 7, PrescriberID: 7, StartDate: &to, EndDate: &from,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.GetPrescriberBookings(ctx, &models.GetPrescriberBookingsRequest{UserID: 42, PrescriberID: 7})
	assert.ErrorIs(t, err, ErrAccessDenied)
}
