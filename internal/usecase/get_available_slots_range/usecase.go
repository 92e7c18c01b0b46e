package get_available_slots_range

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-FacilityService/internal/domain"
	slotsUC "github.com/m04kA/SMC-FacilityService/internal/usecase/get_available_slots"
)

// UseCase use case для получения слотов бронирования объекта за диапазон дней
type UseCase struct {
	availability AvailabilityUseCase
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(availability AvailabilityUseCase, logger Logger) *UseCase {
	return &UseCase{
		availability: availability,
		logger:       logger,
	}
}

// Execute выполняет use case получения слотов за диапазон дней.
//
// Дни обрабатываются последовательно от StartDate; ошибка любого дня
// прерывает обработку и возвращается вызывающему коду без частичных
// результатов.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlotsRange: user=%d, facility=%d, startDate=%s, days=%d, duration=%d",
		req.UserID, req.FacilityID, req.StartDate.Format(domain.DateFormat), req.Days, req.DurationMinutes)

	// 1. Нормализуем параметры и валидируем входные данные
	if req.Days == 0 {
		req.Days = domain.DefaultRangeDays
	}
	if req.DurationMinutes == 0 {
		req.DurationMinutes = domain.DefaultSlotDurationMinutes
	}
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlotsRange: validation failed: %v", err)
		return nil, err
	}

	// 2. Собираем слоты по каждому дню диапазона
	daySlots := make(map[string][]domain.TimeSlot, req.Days)

	for offset := 0; offset < req.Days; offset++ {
		date := req.StartDate.AddDate(0, 0, offset)

		dayResp, err := uc.availability.Execute(ctx, &slotsUC.Request{
			UserID:          req.UserID,
			FacilityID:      req.FacilityID,
			Date:            date,
			DurationMinutes: req.DurationMinutes,
		})
		if err != nil {
			uc.logger.Error("GetAvailableSlotsRange: failed to get slots for %s: %v",
				date.Format(domain.DateFormat), err)
			return nil, fmt.Errorf("%w: failed to get slots for %s: %v",
				ErrInternal, date.Format(domain.DateFormat), err)
		}

		daySlots[date.Format(domain.DateFormat)] = dayResp.Slots
	}

	uc.logger.Info("GetAvailableSlotsRange: collected %d days for facility=%d", len(daySlots), req.FacilityID)

	return &Response{
		FacilityID:      req.FacilityID,
		DurationMinutes: req.DurationMinutes,
		DaySlots:        daySlots,
	}, nil
}
