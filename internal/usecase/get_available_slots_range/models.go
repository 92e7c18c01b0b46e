package get_available_slots_range

import (
	"time"

	"github.com/m04kA/SMC-FacilityService/internal/domain"
)

// Request модель запроса на получение слотов за диапазон дней
type Request struct {
	UserID          int64     // ID пользователя (для логирования, не влияет на результат)
	FacilityID      int64     // ID объекта
	StartDate       time.Time // Первый день диапазона (время игнорируется)
	Days            int       // Количество дней; 0 = значение по умолчанию (7)
	DurationMinutes int       // Длительность слота; 0 = длительность по умолчанию (60 минут)
}

// Response модель ответа со слотами по дням.
// Ключи - даты в формате YYYY-MM-DD; лексикографический порядок ключей
// совпадает с хронологическим
type Response struct {
	FacilityID      int64
	DurationMinutes int
	DaySlots        map[string][]domain.TimeSlot
}
