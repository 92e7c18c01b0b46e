package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FacilityService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-FacilityService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-FacilityService/internal/service/bookings/models"
	"github.com/m04kA/SMC-FacilityService/pkg/ptr"
)

type fakeBookingRepo struct {
	booking *domain.Booking
	list    []*domain.Booking
	getErr  error

	cancelledID     int64
	cancelledStatus domain.BookingStatus
	cancelledReason string
	gotStatusFilter *domain.BookingStatus
}

func (f *fakeBookingRepo) GetByID(_ context.Context, _ int64) (*domain.Booking, error) {
	return f.booking, f.getErr
}

func (f *fakeBookingRepo) GetByUserID(_ context.Context, _ int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	f.gotStatusFilter = status
	return f.list, f.getErr
}

func (f *fakeBookingRepo) Cancel(_ context.Context, id int64, status domain.BookingStatus, reason string) error {
	f.cancelledID = id
	f.cancelledStatus = status
	f.cancelledReason = reason
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testBooking(userID int64, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:         101,
		UserID:     userID,
		FacilityID: 42,
		StartTime:  time.Date(2026, time.September, 14, 10, 0, 0, 0, time.UTC),
		EndTime:    time.Date(2026, time.September, 14, 11, 0, 0, 0, time.UTC),
		Status:     status,
	}
}

func TestGetByID_OwnerOnly(t *testing.T) {
	repo := &fakeBookingRepo{booking: testBooking(10, domain.StatusConfirmed)}
	svc := NewService(repo, nopLogger{})

	booking, err := svc.GetByID(context.Background(), 101, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(101), booking.ID)

	_, err = svc.GetByID(context.Background(), 101, 99)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_NotFound(t *testing.T) {
	repo := &fakeBookingRepo{getErr: bookingRepo.ErrBookingNotFound}
	svc := NewService(repo, nopLogger{})

	_, err := svc.GetByID(context.Background(), 404, 10)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetUserBookings_StatusFilter(t *testing.T) {
	repo := &fakeBookingRepo{list: []*domain.Booking{testBooking(10, domain.StatusConfirmed)}}
	svc := NewService(repo, nopLogger{})

	result, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		UserID: 10,
		Status: ptr.Ptr("confirmed"),
	})
	require.NoError(t, err)

	assert.Len(t, result.Bookings, 1)
	require.NotNil(t, repo.gotStatusFilter)
	assert.Equal(t, domain.StatusConfirmed, *repo.gotStatusFilter)
}

func TestGetUserBookings_InvalidStatus(t *testing.T) {
	svc := NewService(&fakeBookingRepo{}, nopLogger{})

	_, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		UserID: 10,
		Status: ptr.Ptr("unknown"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCancel_OwnerOnly(t *testing.T) {
	repo := &fakeBookingRepo{booking: testBooking(10, domain.StatusConfirmed)}
	svc := NewService(repo, nopLogger{})

	err := svc.Cancel(context.Background(), 101, &models.CancelBookingRequest{UserID: 99, Reason: "передумал"})
	assert.ErrorIs(t, err, ErrAccessDenied)

	err = svc.Cancel(context.Background(), 101, &models.CancelBookingRequest{UserID: 10, Reason: "передумал"})
	require.NoError(t, err)
	assert.Equal(t, int64(101), repo.cancelledID)
	assert.Equal(t, domain.StatusCancelledByUser, repo.cancelledStatus)
	assert.Equal(t, "передумал", repo.cancelledReason)
}

func TestCancel_CompletedBookingRejected(t *testing.T) {
	repo := &fakeBookingRepo{booking: testBooking(10, domain.StatusCompleted)}
	svc := NewService(repo, nopLogger{})

	err := svc.Cancel(context.Background(), 101, &models.CancelBookingRequest{UserID: 10})
	assert.ErrorIs(t, err, ErrCannotCancel)
}
