package create_booking

import (
	"time"

	"github.com/m04kA/SMC-FacilityService/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID     int64     // ID пользователя-владельца бронирования
	FacilityID int64     // ID объекта
	StartTime  time.Time // Начало бронирования
	EndTime    time.Time // Конец бронирования (тот же календарный день)
	Notes      *string   // Комментарий пользователя (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	Booking *domain.Booking
}
