package get_available_slots_range

import (
	"context"

	slotsUC "github.com/m04kA/SMC-FacilityService/internal/usecase/get_available_slots"
)

// AvailabilityUseCase интерфейс use case получения слотов на один день
type AvailabilityUseCase interface {
	Execute(ctx context.Context, req *slotsUC.Request) (*slotsUC.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
