package update_business_hours

import (
	"context"

	"github.com/m04kA/SMC-FacilityService/internal/service/hours/models"
)

type HoursService interface {
	UpdateWeek(ctx context.Context, req *models.UpdateWeekRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
