package get_available_slots_range

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FacilityService/internal/domain"
	slotsUC "github.com/m04kA/SMC-FacilityService/internal/usecase/get_available_slots"
)

// Понедельник
var startDate = time.Date(2026, time.September, 14, 0, 0, 0, 0, time.UTC)

type fakeAvailability struct {
	err      error
	failDate string
	requests []*slotsUC.Request
}

func (f *fakeAvailability) Execute(_ context.Context, req *slotsUC.Request) (*slotsUC.Response, error) {
	f.requests = append(f.requests, req)

	if f.err != nil && (f.failDate == "" || req.Date.Format(domain.DateFormat) == f.failDate) {
		return nil, f.err
	}

	// Воскресенье закрыто, остальные дни - один слот
	slots := []domain.TimeSlot{}
	if req.Date.Weekday() != time.Sunday {
		slots = append(slots, domain.TimeSlot{StartTime: "09:00", EndTime: "10:00", IsAvailable: true})
	}

	return &slotsUC.Response{
		FacilityID:      req.FacilityID,
		Date:            req.Date,
		DurationMinutes: req.DurationMinutes,
		Slots:           slots,
	}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestExecute_CollectsConsecutiveDays(t *testing.T) {
	availability := &fakeAvailability{}
	uc := NewUseCase(availability, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		FacilityID: 42,
		StartDate:  startDate,
		Days:       3,
	})
	require.NoError(t, err)

	require.Len(t, resp.DaySlots, 3)
	assert.Contains(t, resp.DaySlots, "2026-09-14")
	assert.Contains(t, resp.DaySlots, "2026-09-15")
	assert.Contains(t, resp.DaySlots, "2026-09-16")

	// Лексикографический порядок ключей совпадает с хронологическим
	keys := make([]string, 0, len(resp.DaySlots))
	for key := range resp.DaySlots {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	assert.Equal(t, []string{"2026-09-14", "2026-09-15", "2026-09-16"}, keys)
}

func TestExecute_DefaultDays(t *testing.T) {
	availability := &fakeAvailability{}
	uc := NewUseCase(availability, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{FacilityID: 42, StartDate: startDate})
	require.NoError(t, err)

	assert.Len(t, resp.DaySlots, domain.DefaultRangeDays)
	assert.Len(t, availability.requests, domain.DefaultRangeDays)
}

func TestExecute_ClosedDayIncludedWithEmptySlots(t *testing.T) {
	availability := &fakeAvailability{}
	uc := NewUseCase(availability, nopLogger{})

	// 2026-09-14 (Пн) .. 2026-09-20 (Вс)
	resp, err := uc.Execute(context.Background(), &Request{
		FacilityID: 42,
		StartDate:  startDate,
		Days:       7,
	})
	require.NoError(t, err)

	sunday, ok := resp.DaySlots["2026-09-20"]
	require.True(t, ok, "closed day must still be present in the response")
	assert.Empty(t, sunday)
}

func TestExecute_DurationPassedToEachDay(t *testing.T) {
	availability := &fakeAvailability{}
	uc := NewUseCase(availability, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		FacilityID:      42,
		StartDate:       startDate,
		Days:            3,
		DurationMinutes: 90,
	})
	require.NoError(t, err)

	require.Len(t, availability.requests, 3)
	for _, req := range availability.requests {
		assert.Equal(t, 90, req.DurationMinutes)
		assert.Equal(t, int64(42), req.FacilityID)
	}
}

func TestExecute_ValidationErrors(t *testing.T) {
	uc := NewUseCase(&fakeAvailability{}, nopLogger{})

	tests := []struct {
		name string
		req  *Request
	}{
		{"zero facility id", &Request{FacilityID: 0, StartDate: startDate}},
		{"missing start date", &Request{FacilityID: 42}},
		{"too many days", &Request{FacilityID: 42, StartDate: startDate, Days: domain.MaxRangeDays + 1}},
		{"negative duration", &Request{FacilityID: 42, StartDate: startDate, DurationMinutes: -60}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_DayErrorAbortsWholeRange(t *testing.T) {
	availability := &fakeAvailability{
		err:      errors.New("db down"),
		failDate: "2026-09-15",
	}
	uc := NewUseCase(availability, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		FacilityID: 42,
		StartDate:  startDate,
		Days:       3,
	})

	// Ошибка любого дня - ошибка всего запроса, без частичных результатов
	assert.ErrorIs(t, err, ErrInternal)
	assert.Nil(t, resp)
	assert.Len(t, availability.requests, 2)
}

func TestExecute_MaxDaysAccepted(t *testing.T) {
	availability := &fakeAvailability{}
	uc := NewUseCase(availability, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		FacilityID: 42,
		StartDate:  startDate,
		Days:       domain.MaxRangeDays,
	})
	require.NoError(t, err)
	assert.Len(t, resp.DaySlots, domain.MaxRangeDays)
}
