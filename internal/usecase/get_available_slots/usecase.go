package get_available_slots

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-FacilityService/internal/domain"
)

// UseCase use case для получения слотов бронирования объекта на один день
type UseCase struct {
	bookingRepo   BookingRepository
	hoursResolver HoursResolver
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	hoursResolver HoursResolver,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		hoursResolver: hoursResolver,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case получения слотов на день
//
// Ошибки валидации и ошибки персистентности пробрасываются вызывающему коду
// без повторов и без частичных результатов: либо полный список слотов,
// либо ошибка запроса.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: user=%d, facility=%d, date=%s, duration=%d",
		req.UserID, req.FacilityID, req.Date.Format(domain.DateFormat), req.DurationMinutes)

	// 1. Нормализуем длительность и валидируем входные данные
	if req.DurationMinutes == 0 {
		req.DurationMinutes = domain.DefaultSlotDurationMinutes
	}
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Разрешаем расписание работы на день недели даты
	resolution, err := uc.hoursResolver.ResolveDay(ctx, req.FacilityID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to resolve business hours for facility=%d: %v", req.FacilityID, err)
		return nil, fmt.Errorf("%w: failed to resolve business hours: %v", ErrInternal, err)
	}

	// Отсутствующий объект resolver молча сводит к расписанию по умолчанию;
	// здесь это только повод для предупреждения в логе
	if resolution.Source.IsMissingFacility() {
		uc.logger.Warn("GetAvailableSlots: facility id=%d not found, default schedule applied", req.FacilityID)
	}

	// 4. Выходной день - сразу пустой список
	if resolution.IsClosed() {
		uc.logger.Info("GetAvailableSlots: facility=%d is closed on %s",
			req.FacilityID, req.Date.Format(domain.DateFormat))
		return &Response{
			FacilityID:      req.FacilityID,
			Date:            req.Date,
			DurationMinutes: req.DurationMinutes,
			Slots:           []domain.TimeSlot{},
		}, nil
	}

	// 5. Получаем активные бронирования объекта в границах календарного дня.
	// Запрос покрывает только бронирования, целиком лежащие внутри дня;
	// бронирования через полночь контрактом хранения запрещены.
	bookings, err := uc.bookingRepo.GetActiveByFacilityAndPeriod(ctx, req.FacilityID, startOfDay(req.Date), endOfDay(req.Date))
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 6. Генерируем слоты с флагами доступности
	slots, err := generateTimeSlots(req.Date, resolution.Window, req.DurationMinutes, now, bookings)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate time slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate time slots: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots for facility=%d, date=%s (hours source: %s)",
		len(slots), req.FacilityID, req.Date.Format(domain.DateFormat), resolution.Source)

	return &Response{
		FacilityID:      req.FacilityID,
		Date:            req.Date,
		DurationMinutes: req.DurationMinutes,
		Slots:           slots,
	}, nil
}
