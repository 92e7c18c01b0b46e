package get_available_slots

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

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error

	gotFacilityID int64
	gotFrom       time.Time
	gotTo         time.Time
}

func (f *fakeBookingRepo) GetActiveByFacilityAndPeriod(_ context.Context, facilityID int64, from, to time.Time) ([]*domain.Booking, error) {
	f.gotFacilityID = facilityID
	f.gotFrom = from
	f.gotTo = to
	return f.bookings, f.err
}

type fakeResolver struct {
	resolution *hoursModels.DayResolution
	err        error
}

func (f *fakeResolver) ResolveDay(_ context.Context, _ int64, _ time.Time) (*hoursModels.DayResolution, error) {
	return f.resolution, f.err
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

func newTestUseCase(repo *fakeBookingRepo, resolver *fakeResolver, now time.Time) *UseCase {
	uc := NewUseCase(repo, resolver, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

func openResolution(open, close string) *hoursModels.DayResolution {
	return &hoursModels.DayResolution{
		Weekday: time.Monday,
		Window:  &domain.DayWindow{Open: types.TimeString(open), Close: types.TimeString(close)},
		Source:  hoursModels.SourceFacility,
	}
}

func TestExecute_DefaultDuration(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo, &fakeResolver{resolution: openResolution("09:00", "17:00")}, farNow)

	resp, err := uc.Execute(context.Background(), &Request{FacilityID: 42, Date: testDate})
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultSlotDurationMinutes, resp.DurationMinutes)
	assert.Len(t, resp.Slots, 15)
}

func TestExecute_QueriesWholeCalendarDay(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo, &fakeResolver{resolution: openResolution("09:00", "17:00")}, farNow)

	_, err := uc.Execute(context.Background(), &Request{FacilityID: 42, Date: testDate})
	require.NoError(t, err)

	assert.Equal(t, int64(42), repo.gotFacilityID)
	assert.Equal(t, time.Date(2026, time.September, 14, 0, 0, 0, 0, time.UTC), repo.gotFrom)
	assert.Equal(t, time.Date(2026, time.September, 14, 23, 59, 59, int(999*time.Millisecond), time.UTC), repo.gotTo)
}

func TestExecute_ClosedDayReturnsEmptySlots(t *testing.T) {
	resolver := &fakeResolver{resolution: &hoursModels.DayResolution{
		Weekday: time.Sunday,
		Window:  nil,
		Source:  hoursModels.SourceDefault,
	}}
	repo := &fakeBookingRepo{err: errors.New("must not be called")}
	uc := newTestUseCase(repo, resolver, farNow)

	resp, err := uc.Execute(context.Background(), &Request{FacilityID: 42, Date: testDate})
	require.NoError(t, err)

	assert.Empty(t, resp.Slots)
	assert.NotNil(t, resp.Slots)
	// Репозиторий не вызывался - выходной день не требует данных
	assert.Zero(t, repo.gotFacilityID)
}

func TestExecute_MissingFacilityFallsBackToDefaults(t *testing.T) {
	resolver := &fakeResolver{resolution: &hoursModels.DayResolution{
		Weekday: time.Monday,
		Window:  domain.DefaultWeekSchedule.ForWeekday(time.Monday),
		Source:  hoursModels.SourceDefaultMissingFacility,
	}}
	uc := newTestUseCase(&fakeBookingRepo{}, resolver, farNow)

	resp, err := uc.Execute(context.Background(), &Request{FacilityID: 9999, Date: testDate})
	require.NoError(t, err)

	// Чтение слотов не считает отсутствующий объект ошибкой
	assert.Len(t, resp.Slots, 15)
}

func TestExecute_ValidationErrors(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeResolver{resolution: openResolution("09:00", "17:00")}, farNow)

	tests := []struct {
		name string
		req  *Request
	}{
		{"zero facility id", &Request{FacilityID: 0, Date: testDate}},
		{"negative facility id", &Request{FacilityID: -5, Date: testDate}},
		{"missing date", &Request{FacilityID: 42}},
		{"negative duration", &Request{FacilityID: 42, Date: testDate, DurationMinutes: -30}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_ResolverErrorPropagates(t *testing.T) {
	resolver := &fakeResolver{err: errors.New("db down")}
	uc := newTestUseCase(&fakeBookingRepo{}, resolver, farNow)

	_, err := uc.Execute(context.Background(), &Request{FacilityID: 42, Date: testDate})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_RepositoryErrorPropagates(t *testing.T) {
	repo := &fakeBookingRepo{err: errors.New("connection reset")}
	uc := newTestUseCase(repo, &fakeResolver{resolution: openResolution("09:00", "17:00")}, farNow)

	_, err := uc.Execute(context.Background(), &Request{FacilityID: 42, Date: testDate})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_Idempotent(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{booking(at(10, 0), at(11, 0))}}
	uc := newTestUseCase(repo, &fakeResolver{resolution: openResolution("09:00", "17:00")}, farNow)

	req := &Request{FacilityID: 42, Date: testDate, DurationMinutes: 60}
	first, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first.Slots, second.Slots)
}
