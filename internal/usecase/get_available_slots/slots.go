package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-FacilityService/internal/domain"
	"github.com/m04kA/SMC-FacilityService/pkg/types"
)

// generateTimeSlots генерирует слоты на день по фиксированной 30-минутной сетке.
//
// Сетка начинается со времени открытия (для сегодняшней даты - с ближайшей
// границы :00/:30 не раньше текущего времени) и заканчивается последним
// стартом, при котором слот успевает завершиться до закрытия (включительно).
// Шаг сетки НЕ зависит от длительности слота: слот любой длительности
// начинается только на границах :00/:30.
//
// Каждый слот сетки попадает в результат; занятость отмечается флагом
// IsAvailable по пересечению с активными бронированиями.
func generateTimeSlots(
	date time.Time,
	window *domain.DayWindow,
	durationMinutes int,
	now time.Time,
	bookings []*domain.Booking,
) ([]domain.TimeSlot, error) {
	// Выходной день - слотов нет
	if window == nil {
		return []domain.TimeSlot{}, nil
	}

	openMinutes, err := window.Open.Minutes()
	if err != nil {
		return nil, err
	}
	closeMinutes, err := window.Close.Minutes()
	if err != nil {
		return nil, err
	}

	gridStart := openMinutes

	// Последний допустимый старт: слот должен закончиться не позже закрытия.
	// Если длительность больше всего рабочего окна - слотов нет.
	lastStart := closeMinutes - durationMinutes
	if lastStart < gridStart {
		return []domain.TimeSlot{}, nil
	}

	// Для сегодняшней даты сдвигаем начало сетки вперед, чтобы не предлагать
	// уже прошедшие слоты. Будущих (и прошедших) дат корректировка не касается.
	if isSameDay(date, now) {
		nowMinutes := minutesOfDay(now)
		if nowMinutes > gridStart {
			gridStart = roundUpToGrid(nowMinutes)
		}
	}

	slots := make([]domain.TimeSlot, 0, (lastStart-gridStart)/domain.SlotGridIntervalMinutes+1)

	for start := gridStart; start <= lastStart; start += domain.SlotGridIntervalMinutes {
		startTime, err := types.NewTimeStringFromMinutes(start)
		if err != nil {
			return nil, err
		}
		endTime, err := types.NewTimeStringFromMinutes(start + durationMinutes)
		if err != nil {
			return nil, err
		}

		slotStart, err := startTime.OnDate(date)
		if err != nil {
			return nil, err
		}
		slotEnd := slotStart.Add(time.Duration(durationMinutes) * time.Minute)

		slots = append(slots, domain.TimeSlot{
			StartTime:   startTime,
			EndTime:     endTime,
			IsAvailable: !overlapsAny(slotStart, slotEnd, bookings),
		})
	}

	return slots, nil
}

// overlapsAny проверяет пересечение кандидата [start, end) хотя бы с одним
// активным бронированием.
//
// Интервалы полуоткрытые: [s1, e1) и [s2, e2) пересекаются тогда и только
// тогда, когда s1 < e2 && s2 < e1. Один тест покрывает все четыре именованных
// случая пересечения:
//   - starts-during: бронирование начинается внутри кандидата
//   - ends-during: бронирование заканчивается внутри кандидата
//   - contains: бронирование целиком накрывает кандидата
//   - contained-by: бронирование целиком внутри кандидата
//
// Граничные случаи пересечением НЕ считаются: слот 11:00-12:00 и
// бронирование 12:00-13:00 не конфликтуют.
func overlapsAny(start, end time.Time, bookings []*domain.Booking) bool {
	for _, booking := range bookings {
		// Неактивные бронирования слот не занимают
		if !booking.IsActive() {
			continue
		}
		if booking.StartTime.Before(end) && start.Before(booking.EndTime) {
			return true
		}
	}
	return false
}

// roundUpToGrid округляет минуты от начала дня вверх до ближайшей границы
// 30-минутной сетки (:00 или :30). 10:05 -> 10:30, 10:31 -> 11:00, 10:30 -> 10:30.
func roundUpToGrid(minutes int) int {
	remainder := minutes % domain.SlotGridIntervalMinutes
	if remainder == 0 {
		return minutes
	}
	return minutes + domain.SlotGridIntervalMinutes - remainder
}

// minutesOfDay возвращает минуты от начала дня с округлением вверх:
// начатая минута считается прошедшей (10:00:30 -> 601)
func minutesOfDay(t time.Time) int {
	minutes := t.Hour()*60 + t.Minute()
	if t.Second() > 0 || t.Nanosecond() > 0 {
		minutes++
	}
	return minutes
}

// isSameDay проверяет, что две даты относятся к одному и тому же календарному дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// startOfDay возвращает начало календарного дня (00:00:00.000)
func startOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// endOfDay возвращает конец календарного дня (23:59:59.999)
func endOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 23, 59, 59, int(999*time.Millisecond), date.Location())
}
