package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FacilityService/internal/domain"
	"github.com/m04kA/SMC-FacilityService/pkg/ptr"
	"github.com/m04kA/SMC-FacilityService/pkg/types"
)

// Понедельник 2026-09-14, рабочее окно по умолчанию 09:00-17:00
var (
	testDate = time.Date(2026, time.September, 14, 0, 0, 0, 0, time.UTC)
	farNow   = time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)
)

func window(open, close string) *domain.DayWindow {
	return &domain.DayWindow{Open: types.TimeString(open), Close: types.TimeString(close)}
}

func booking(start, end time.Time) *domain.Booking {
	return &domain.Booking{
		ID:         1,
		UserID:     10,
		FacilityID: 42,
		StartTime:  start,
		EndTime:    end,
		Status:     domain.StatusConfirmed,
	}
}

func at(hour, minute int) time.Time {
	return time.Date(2026, time.September, 14, hour, minute, 0, 0, time.UTC)
}

func TestGenerateTimeSlots_FullDayGrid(t *testing.T) {
	slots, err := generateTimeSlots(testDate, window("09:00", "17:00"), 60, farNow, nil)
	require.NoError(t, err)

	// Старты 09:00 .. 16:00 с шагом 30 минут
	require.Len(t, slots, 15)
	assert.Equal(t, "09:00", slots[0].StartTime.String())
	assert.Equal(t, "10:00", slots[0].EndTime.String())
	assert.Equal(t, "16:00", slots[14].StartTime.String())
	assert.Equal(t, "17:00", slots[14].EndTime.String())

	for _, slot := range slots {
		assert.True(t, slot.IsAvailable, "slot %s must be available", slot.StartTime)
	}
}

func TestGenerateTimeSlots_GridStepIndependentOfDuration(t *testing.T) {
	slots, err := generateTimeSlots(testDate, window("09:00", "17:00"), 90, farNow, nil)
	require.NoError(t, err)

	// Последний старт 15:30: слот 15:30-17:00 успевает до закрытия
	require.Len(t, slots, 14)
	assert.Equal(t, "09:00", slots[0].StartTime.String())
	assert.Equal(t, "10:30", slots[0].EndTime.String())
	assert.Equal(t, "09:30", slots[1].StartTime.String())
	assert.Equal(t, "15:30", slots[13].StartTime.String())
	assert.Equal(t, "17:00", slots[13].EndTime.String())
}

func TestGenerateTimeSlots_ClosedDay(t *testing.T) {
	slots, err := generateTimeSlots(testDate, nil, 60, farNow, nil)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateTimeSlots_DurationLongerThanWindow(t *testing.T) {
	// Суббота 10:00-15:00 - всего 5 часов, слот на 8 часов не помещается
	slots, err := generateTimeSlots(testDate, window("10:00", "15:00"), 480, farNow, nil)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateTimeSlots_DurationEqualsWindow(t *testing.T) {
	slots, err := generateTimeSlots(testDate, window("10:00", "15:00"), 300, farNow, nil)
	require.NoError(t, err)

	// Единственный старт - ровно в открытие
	require.Len(t, slots, 1)
	assert.Equal(t, "10:00", slots[0].StartTime.String())
	assert.Equal(t, "15:00", slots[0].EndTime.String())
}

func TestGenerateTimeSlots_BookingMarksOverlappingSlots(t *testing.T) {
	bookings := []*domain.Booking{booking(at(10, 0), at(11, 0))}

	slots, err := generateTimeSlots(testDate, window("09:00", "17:00"), 60, farNow, bookings)
	require.NoError(t, err)
	require.Len(t, slots, 15)

	available := make(map[string]bool, len(slots))
	for _, slot := range slots {
		available[slot.StartTime.String()] = slot.IsAvailable
	}

	// Слот 09:00-10:00 касается бронирования границей - не конфликт
	assert.True(t, available["09:00"])
	// Слоты, пересекающие интервал 10:00-11:00, заняты
	assert.False(t, available["09:30"])
	assert.False(t, available["10:00"])
	assert.False(t, available["10:30"])
	// Слот 11:00-12:00 начинается в момент окончания бронирования - свободен
	assert.True(t, available["11:00"])
}

func TestGenerateTimeSlots_InactiveBookingIgnored(t *testing.T) {
	cancelled := booking(at(10, 0), at(11, 0))
	cancelled.Status = domain.StatusCancelledByUser

	slots, err := generateTimeSlots(testDate, window("09:00", "17:00"), 60, farNow, []*domain.Booking{cancelled})
	require.NoError(t, err)

	for _, slot := range slots {
		assert.True(t, slot.IsAvailable, "slot %s must be available", slot.StartTime)
	}
}

func TestGenerateTimeSlots_SameDaySkipsPastSlots(t *testing.T) {
	// Сейчас 10:05 того же дня: первый предлагаемый старт - 10:30
	now := at(10, 5)

	slots, err := generateTimeSlots(testDate, window("09:00", "17:00"), 60, now, nil)
	require.NoError(t, err)

	require.NotEmpty(t, slots)
	assert.Equal(t, "10:30", slots[0].StartTime.String())
	assert.Equal(t, "16:00", slots[len(slots)-1].StartTime.String())
}

func TestGenerateTimeSlots_SameDayOnGridBoundary(t *testing.T) {
	// Ровно 10:30 - слот 10:30 еще доступен
	now := at(10, 30)

	slots, err := generateTimeSlots(testDate, window("09:00", "17:00"), 60, now, nil)
	require.NoError(t, err)

	require.NotEmpty(t, slots)
	assert.Equal(t, "10:30", slots[0].StartTime.String())
}

func TestGenerateTimeSlots_SameDayStartedMinuteCountsAsPast(t *testing.T) {
	// 10:30:01 - граница 10:30 уже прошла
	now := time.Date(2026, time.September, 14, 10, 30, 1, 0, time.UTC)

	slots, err := generateTimeSlots(testDate, window("09:00", "17:00"), 60, now, nil)
	require.NoError(t, err)

	require.NotEmpty(t, slots)
	assert.Equal(t, "11:00", slots[0].StartTime.String())
}

func TestGenerateTimeSlots_SameDayAfterLastStart(t *testing.T) {
	now := at(16, 45)

	slots, err := generateTimeSlots(testDate, window("09:00", "17:00"), 60, now, nil)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateTimeSlots_OtherDayNotAdjusted(t *testing.T) {
	// Запрос на будущую дату: текущее время суток роли не играет
	now := time.Date(2026, time.September, 13, 23, 0, 0, 0, time.UTC)

	slots, err := generateTimeSlots(testDate, window("09:00", "17:00"), 60, now, nil)
	require.NoError(t, err)
	require.Len(t, slots, 15)
	assert.Equal(t, "09:00", slots[0].StartTime.String())
}

func TestRoundUpToGrid(t *testing.T) {
	tests := []struct {
		name     string
		minutes  int
		expected int
	}{
		{"on boundary", 630, 630},       // 10:30 -> 10:30
		{"just after hour", 605, 630},   // 10:05 -> 10:30
		{"just after half", 631, 660},   // 10:31 -> 11:00
		{"midnight", 0, 0},              // 00:00 -> 00:00
		{"one minute past", 1, 30},      // 00:01 -> 00:30
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, roundUpToGrid(tt.minutes))
		})
	}
}

func TestOverlapsAny_NamedCases(t *testing.T) {
	candidateStart := at(10, 0)
	candidateEnd := at(11, 0)

	tests := []struct {
		name     string
		booking  *domain.Booking
		overlaps bool
	}{
		{"starts during", booking(at(10, 30), at(11, 30)), true},
		{"ends during", booking(at(9, 30), at(10, 30)), true},
		{"contains candidate", booking(at(9, 0), at(12, 0)), true},
		{"contained by candidate", booking(at(10, 15), at(10, 45)), true},
		{"identical interval", booking(at(10, 0), at(11, 0)), true},
		{"touches start", booking(at(9, 0), at(10, 0)), false},
		{"touches end", booking(at(11, 0), at(12, 0)), false},
		{"disjoint before", booking(at(8, 0), at(9, 0)), false},
		{"disjoint after", booking(at(12, 0), at(13, 0)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := overlapsAny(candidateStart, candidateEnd, []*domain.Booking{tt.booking})
			assert.Equal(t, tt.overlaps, got)
		})
	}
}

func TestGenerateTimeSlots_NotesDoNotAffectAvailability(t *testing.T) {
	b := booking(at(12, 0), at(13, 0))
	b.Notes = ptr.Ptr("личная тренировка")

	slots, err := generateTimeSlots(testDate, window("09:00", "17:00"), 30, farNow, []*domain.Booking{b})
	require.NoError(t, err)

	for _, slot := range slots {
		if slot.StartTime.String() == "12:00" || slot.StartTime.String() == "12:30" {
			assert.False(t, slot.IsAvailable)
		} else {
			assert.True(t, slot.IsAvailable, "slot %s", slot.StartTime)
		}
	}
}
