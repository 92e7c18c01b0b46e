package get_location_facilities

import (
	"context"

	"github.com/m04kA/SMC-FacilityService/internal/service/facilities/models"
)

type FacilityService interface {
	ListByLocation(ctx context.Context, locationID int64) (*models.FacilityListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
