package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FacilityService/internal/domain"
	hoursModels "github.com/m04kA/SMC-FacilityService/internal/service/hours/models"
	"github.com/m04kA/SMC-FacilityService/pkg/types"
)

// Понедельник, рабочее окно 09:00-17:00
var (
	testDate = time.Date(2026, time.September, 14, 0, 0, 0, 0, time.UTC)
	testNow  = time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)
)

func at(hour, minute int) time.Time {
	return time.Date(2026, time.September, 14, hour, minute, 0, 0, time.UTC)
}

type fakeBookingRepo struct {
	existing  []*domain.Booking
	getErr    error
	createErr error

	created *domain.Booking
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	booking.ID = 101
	booking.CreatedAt = testNow
	booking.UpdatedAt = testNow
	f.created = booking
	return booking, nil
}

func (f *fakeBookingRepo) GetActiveByFacilityAndPeriod(_ context.Context, _ int64, _, _ time.Time) ([]*domain.Booking, error) {
	return f.existing, f.getErr
}

type fakeResolver struct {
	resolution *hoursModels.DayResolution
	err        error
}

func (f *fakeResolver) ResolveDay(_ context.Context, _ int64, _ time.Time) (*hoursModels.DayResolution, error) {
	return f.resolution, f.err
}

type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func openResolution() *hoursModels.DayResolution {
	return &hoursModels.DayResolution{
		Weekday: time.Monday,
		Window:  &domain.DayWindow{Open: types.TimeString("09:00"), Close: types.TimeString("17:00")},
		Source:  hoursModels.SourceFacility,
	}
}

func newTestUseCase(repo *fakeBookingRepo, resolver *fakeResolver, tx *fakeTxManager) *UseCase {
	uc := NewUseCase(repo, resolver, tx, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testNow}
	return uc
}

func validRequest() *Request {
	return &Request{
		UserID:     10,
		FacilityID: 42,
		StartTime:  at(10, 0),
		EndTime:    at(11, 0),
	}
}

func TestExecute_CreatesConfirmedBooking(t *testing.T) {
	repo := &fakeBookingRepo{}
	tx := &fakeTxManager{}
	uc := newTestUseCase(repo, &fakeResolver{resolution: openResolution()}, tx)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	require.NotNil(t, repo.created)
	assert.Equal(t, domain.StatusConfirmed, repo.created.Status)
	assert.Equal(t, int64(101), resp.Booking.ID)
	assert.Equal(t, 1, tx.calls)
}

func TestExecute_SlotConflictRejected(t *testing.T) {
	repo := &fakeBookingRepo{existing: []*domain.Booking{{
		ID:         1,
		UserID:     77,
		FacilityID: 42,
		StartTime:  at(10, 30),
		EndTime:    at(11, 30),
		Status:     domain.StatusConfirmed,
	}}}
	uc := newTestUseCase(repo, &fakeResolver{resolution: openResolution()}, &fakeTxManager{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotUnavailable)
	assert.Nil(t, repo.created)
}

func TestExecute_TouchingBookingAccepted(t *testing.T) {
	// Существующее бронирование заканчивается ровно в момент начала нового
	repo := &fakeBookingRepo{existing: []*domain.Booking{{
		ID:         1,
		UserID:     77,
		FacilityID: 42,
		StartTime:  at(9, 0),
		EndTime:    at(10, 0),
		Status:     domain.StatusConfirmed,
	}}}
	uc := newTestUseCase(repo, &fakeResolver{resolution: openResolution()}, &fakeTxManager{})

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.NotNil(t, repo.created)
}

func TestExecute_CancelledBookingDoesNotBlock(t *testing.T) {
	repo := &fakeBookingRepo{existing: []*domain.Booking{{
		ID:         1,
		UserID:     77,
		FacilityID: 42,
		StartTime:  at(10, 0),
		EndTime:    at(11, 0),
		Status:     domain.StatusCancelledByUser,
	}}}
	uc := newTestUseCase(repo, &fakeResolver{resolution: openResolution()}, &fakeTxManager{})

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.NotNil(t, repo.created)
}

func TestExecute_MissingFacilityRejected(t *testing.T) {
	// На пути записи расписание по умолчанию для несуществующего объекта - ошибка
	resolver := &fakeResolver{resolution: &hoursModels.DayResolution{
		Weekday: time.Monday,
		Window:  domain.DefaultWeekSchedule.ForWeekday(time.Monday),
		Source:  hoursModels.SourceDefaultMissingFacility,
	}}
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo, resolver, &fakeTxManager{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrFacilityNotFound)
	assert.Nil(t, repo.created)
}

func TestExecute_ClosedDayRejected(t *testing.T) {
	resolver := &fakeResolver{resolution: &hoursModels.DayResolution{
		Weekday: time.Sunday,
		Window:  nil,
		Source:  hoursModels.SourceDefault,
	}}
	uc := newTestUseCase(&fakeBookingRepo{}, resolver, &fakeTxManager{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrFacilityClosed)
}

func TestExecute_OutsideWindowRejected(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeResolver{resolution: openResolution()}, &fakeTxManager{})

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
	}{
		{"before opening", at(8, 0), at(9, 0)},
		{"crosses opening", at(8, 30), at(9, 30)},
		{"crosses closing", at(16, 30), at(17, 30)},
		{"after closing", at(17, 30), at(18, 30)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			req.StartTime = tt.start
			req.EndTime = tt.end

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrFacilityClosed)
		})
	}
}

func TestExecute_WindowBoundariesAccepted(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo, &fakeResolver{resolution: openResolution()}, &fakeTxManager{})

	// Ровно от открытия до закрытия
	req := validRequest()
	req.StartTime = at(9, 0)
	req.EndTime = at(17, 0)

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.NotNil(t, repo.created)
}

func TestExecute_ValidationErrors(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeResolver{resolution: openResolution()}, &fakeTxManager{})

	longNotes := make([]byte, domain.MaxNotesLength+1)
	for i := range longNotes {
		longNotes[i] = 'x'
	}
	longNotesStr := string(longNotes)

	tests := []struct {
		name   string
		mutate func(req *Request)
	}{
		{"zero user id", func(req *Request) { req.UserID = 0 }},
		{"zero facility id", func(req *Request) { req.FacilityID = 0 }},
		{"zero start time", func(req *Request) { req.StartTime = time.Time{} }},
		{"end before start", func(req *Request) { req.EndTime = req.StartTime.Add(-time.Hour) }},
		{"end equals start", func(req *Request) { req.EndTime = req.StartTime }},
		{"crosses midnight", func(req *Request) { req.EndTime = req.StartTime.Add(20 * time.Hour) }},
		{"too short", func(req *Request) { req.EndTime = req.StartTime.Add(2 * time.Minute) }},
		{"off-grid start", func(req *Request) {
			req.StartTime = at(10, 15)
			req.EndTime = at(11, 15)
		}},
		{"non-zero seconds", func(req *Request) {
			req.StartTime = req.StartTime.Add(30 * time.Second)
			req.EndTime = req.EndTime.Add(30 * time.Second)
		}},
		{"in the past", func(req *Request) {
			req.StartTime = testNow.AddDate(0, 0, -1)
			req.EndTime = req.StartTime.Add(time.Hour)
		}},
		{"notes too long", func(req *Request) { req.Notes = &longNotesStr }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_RepositoryErrorsWrapped(t *testing.T) {
	t.Run("read error", func(t *testing.T) {
		repo := &fakeBookingRepo{getErr: errors.New("connection reset")}
		uc := newTestUseCase(repo, &fakeResolver{resolution: openResolution()}, &fakeTxManager{})

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrInternal)
	})

	t.Run("create error", func(t *testing.T) {
		repo := &fakeBookingRepo{createErr: errors.New("constraint violation")}
		uc := newTestUseCase(repo, &fakeResolver{resolution: openResolution()}, &fakeTxManager{})

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrInternal)
	})
}

func TestExecute_PastDateInPastRejectedBeforeTx(t *testing.T) {
	tx := &fakeTxManager{}
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeResolver{resolution: openResolution()}, tx)

	req := validRequest()
	req.StartTime = time.Date(2026, time.August, 3, 10, 0, 0, 0, time.UTC)
	req.EndTime = req.StartTime.Add(time.Hour)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Zero(t, tx.calls)
}
