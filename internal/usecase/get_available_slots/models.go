package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-FacilityService/internal/domain"
)

// Request модель запроса на получение слотов на один день
type Request struct {
	UserID          int64     // ID пользователя (для логирования, не влияет на результат)
	FacilityID      int64     // ID объекта
	Date            time.Time // Дата, на которую запрашиваются слоты (время игнорируется)
	DurationMinutes int       // Длительность слота; 0 = длительность по умолчанию (60 минут)
}

// Response модель ответа со списком слотов
// Slots содержит ВСЕ слоты сетки, включая занятые (флаг IsAvailable);
// фильтрация по доступности - забота вызывающего кода
type Response struct {
	FacilityID      int64
	Date            time.Time
	DurationMinutes int
	Slots           []domain.TimeSlot
}
