package facilities

import (
	"context"

	"github.com/m04kA/SMC-FacilityService/internal/domain"
)

// FacilityRepository репозиторий объектов (только чтение)
type FacilityRepository interface {
	GetByLocation(ctx context.Context, locationID int64) ([]*domain.Facility, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
