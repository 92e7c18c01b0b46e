package hours

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FacilityService/internal/domain"
	facilityRepo "github.com/m04kA/SMC-FacilityService/internal/infra/storage/facility"
	"github.com/m04kA/SMC-FacilityService/internal/service/hours/models"
)

type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

func validUpdateRequest() *models.UpdateWeekRequest {
	return &models.UpdateWeekRequest{
		UserID:  1,
		Tier:    domain.TierFacility,
		OwnerID: 42,
		Week: domain.WeekSchedule{
			Monday: &domain.DayWindow{Open: "09:00", Close: "18:00"},
		},
	}
}

func TestUpdateWeek_ReplacesScheduleInTransaction(t *testing.T) {
	tx := &fakeTxManager{}
	svc := NewService(
		&fakeFacilityRepo{facility: testFacility()},
		&fakeHoursRepo{weeks: map[domain.HoursTier]*domain.WeekSchedule{}},
		tx,
		nopLogger{},
	)

	err := svc.UpdateWeek(context.Background(), validUpdateRequest())
	require.NoError(t, err)
	assert.Equal(t, 1, tx.calls)
}

func TestUpdateWeek_UnknownFacilityRejected(t *testing.T) {
	svc := NewService(
		&fakeFacilityRepo{err: facilityRepo.ErrFacilityNotFound},
		&fakeHoursRepo{weeks: map[domain.HoursTier]*domain.WeekSchedule{}},
		&fakeTxManager{},
		nopLogger{},
	)

	err := svc.UpdateWeek(context.Background(), validUpdateRequest())
	assert.ErrorIs(t, err, ErrFacilityNotFound)
}

func TestUpdateWeek_LocationTierSkipsFacilityCheck(t *testing.T) {
	// Для уровней локации и организации существование объекта не проверяется
	svc := NewService(
		&fakeFacilityRepo{err: facilityRepo.ErrFacilityNotFound},
		&fakeHoursRepo{weeks: map[domain.HoursTier]*domain.WeekSchedule{}},
		&fakeTxManager{},
		nopLogger{},
	)

	req := validUpdateRequest()
	req.Tier = domain.TierLocation
	req.OwnerID = 7

	err := svc.UpdateWeek(context.Background(), req)
	assert.NoError(t, err)
}

func TestUpdateWeek_ValidationErrors(t *testing.T) {
	svc := NewService(
		&fakeFacilityRepo{facility: testFacility()},
		&fakeHoursRepo{weeks: map[domain.HoursTier]*domain.WeekSchedule{}},
		&fakeTxManager{},
		nopLogger{},
	)

	tests := []struct {
		name   string
		mutate func(req *models.UpdateWeekRequest)
	}{
		{"unknown tier", func(req *models.UpdateWeekRequest) { req.Tier = "country" }},
		{"default tier not writable", func(req *models.UpdateWeekRequest) { req.Tier = domain.TierDefault }},
		{"zero owner id", func(req *models.UpdateWeekRequest) { req.OwnerID = 0 }},
		{"open after close", func(req *models.UpdateWeekRequest) {
			req.Week.Monday = &domain.DayWindow{Open: "18:00", Close: "09:00"}
		}},
		{"open equals close", func(req *models.UpdateWeekRequest) {
			req.Week.Monday = &domain.DayWindow{Open: "09:00", Close: "09:00"}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validUpdateRequest()
			tt.mutate(req)

			err := svc.UpdateWeek(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestUpdateWeek_AllClosedWeekIsValid(t *testing.T) {
	svc := NewService(
		&fakeFacilityRepo{facility: testFacility()},
		&fakeHoursRepo{weeks: map[domain.HoursTier]*domain.WeekSchedule{}},
		&fakeTxManager{},
		nopLogger{},
	)

	req := validUpdateRequest()
	req.Week = domain.WeekSchedule{}

	err := svc.UpdateWeek(context.Background(), req)
	assert.NoError(t, err)
}

func TestDeleteWeek(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := NewService(
			&fakeFacilityRepo{facility: testFacility()},
			&fakeHoursRepo{weeks: map[domain.HoursTier]*domain.WeekSchedule{}},
			&fakeTxManager{},
			nopLogger{},
		)

		err := svc.DeleteWeek(context.Background(), &models.DeleteWeekRequest{
			UserID:  1,
			Tier:    domain.TierFacility,
			OwnerID: 42,
		})
		assert.NoError(t, err)
	})

	t.Run("invalid tier", func(t *testing.T) {
		svc := NewService(
			&fakeFacilityRepo{facility: testFacility()},
			&fakeHoursRepo{weeks: map[domain.HoursTier]*domain.WeekSchedule{}},
			&fakeTxManager{},
			nopLogger{},
		)

		err := svc.DeleteWeek(context.Background(), &models.DeleteWeekRequest{
			UserID:  1,
			Tier:    "country",
			OwnerID: 42,
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
