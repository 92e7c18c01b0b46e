package domain

// Default request parameters
const (
	DefaultSlotDurationMinutes = 60
	DefaultRangeDays           = 7
)

// Business validation constants
const (
	// SlotGridIntervalMinutes фиксированный шаг сетки слотов.
	// Слоты любой длительности начинаются только на границах :00/:30.
	SlotGridIntervalMinutes = 30

	MinSlotDurationMinutes = 5
	MaxSlotDurationMinutes = 480 // 8 часов
	MaxRangeDays           = 90
	MaxNotesLength         = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// DefaultWeekSchedule расписание по умолчанию, применяется когда ни один
// уровень иерархии (организация -> локация -> объект) не настроен.
// Пн-Пт 09:00-17:00, Сб 10:00-15:00, Вс - выходной.
// Таблица неизменяемая: никогда не мутировать и не пересоздавать на запрос.
var DefaultWeekSchedule = WeekSchedule{
	Monday:    &DayWindow{Open: "09:00", Close: "17:00"},
	Tuesday:   &DayWindow{Open: "09:00", Close: "17:00"},
	Wednesday: &DayWindow{Open: "09:00", Close: "17:00"},
	Thursday:  &DayWindow{Open: "09:00", Close: "17:00"},
	Friday:    &DayWindow{Open: "09:00", Close: "17:00"},
	Saturday:  &DayWindow{Open: "10:00", Close: "15:00"},
	Sunday:    nil,
}

// InactiveStatuses список статусов, не занимающих слот.
// Используется репозиторием при выборке бронирований для расчёта доступности.
var InactiveStatuses = []BookingStatus{
	StatusCancelledByUser,
	StatusCancelledByFacility,
	StatusNoShow,
}
