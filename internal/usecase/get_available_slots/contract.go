package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-FacilityService/internal/domain"
	hoursModels "github.com/m04kA/SMC-FacilityService/internal/service/hours/models"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetActiveByFacilityAndPeriod получает активные бронирования объекта за период
	GetActiveByFacilityAndPeriod(ctx context.Context, facilityID int64, from, to time.Time) ([]*domain.Booking, error)
}

// HoursResolver интерфейс resolver-а расписаний работы
type HoursResolver interface {
	// ResolveDay возвращает эффективное окно работы объекта на день недели даты
	ResolveDay(ctx context.Context, facilityID int64, date time.Time) (*hoursModels.DayResolution, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
