package get_business_hours

import (
	"context"

	"github.com/m04kA/SMC-FacilityService/internal/service/hours/models"
)

type HoursResolver interface {
	ResolveWeek(ctx context.Context, facilityID int64) (*models.WeekResolution, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
