package hours

import (
	"context"

	"github.com/m04kA/SMC-FacilityService/internal/domain"
)

// FacilityRepository интерфейс репозитория объектов
type FacilityRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Facility, error)
}

// HoursRepository интерфейс репозитория расписаний работы
type HoursRepository interface {
	GetWeek(ctx context.Context, tier domain.HoursTier, ownerID int64) (*domain.WeekSchedule, error)
	ReplaceWeek(ctx context.Context, tier domain.HoursTier, ownerID int64, week *domain.WeekSchedule) error
	DeleteWeek(ctx context.Context, tier domain.HoursTier, ownerID int64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
