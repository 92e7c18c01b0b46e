package create_booking

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-FacilityService/internal/domain"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo   BookingRepository
	hoursResolver HoursResolver
	txManager     TransactionManager
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	hoursResolver HoursResolver,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		hoursResolver: hoursResolver,
		txManager:     txManager,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case создания бронирования.
//
// Проверка доступности и вставка выполняются в одной сериализуемой
// транзакции: чтение дневного окна блокирует строки FOR UPDATE, поэтому
// два конкурентных запроса на один слот не создадут двойного бронирования.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, facility=%d, start=%s, end=%s",
		req.UserID, req.FacilityID, req.StartTime.Format(time.RFC3339), req.EndTime.Format(time.RFC3339))

	// 1. Валидируем входные данные
	now := uc.timeProvider.Now()
	if err := validateRequest(req, now); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	var created *domain.Booking

	// 2. Проверка доступности и вставка атомарно
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Разрешаем расписание работы на день бронирования
		resolution, err := uc.hoursResolver.ResolveDay(txCtx, req.FacilityID, req.StartTime)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to resolve business hours for facility=%d: %v", req.FacilityID, err)
			return fmt.Errorf("%w: failed to resolve business hours: %v", ErrInternal, err)
		}

		// На пути записи отсутствующий объект - это ошибка, а не расписание по умолчанию
		if resolution.Source.IsMissingFacility() {
			uc.logger.Warn("CreateBooking: facility id=%d not found", req.FacilityID)
			return ErrFacilityNotFound
		}

		// 2.2. Выходной день - бронировать нечего
		if resolution.IsClosed() {
			uc.logger.Info("CreateBooking: facility=%d is closed on %s",
				req.FacilityID, req.StartTime.Format(domain.DateFormat))
			return ErrFacilityClosed
		}

		// 2.3. Бронирование должно целиком лежать в рабочем окне
		within, err := isWithinWindow(req.StartTime, req.EndTime, resolution.Window)
		if err != nil {
			return fmt.Errorf("%w: failed to check business hours window: %v", ErrInternal, err)
		}
		if !within {
			uc.logger.Info("CreateBooking: requested time is outside business hours of facility=%d", req.FacilityID)
			return ErrFacilityClosed
		}

		// 2.4. Читаем активные бронирования дня с блокировкой FOR UPDATE
		dayBookings, err := uc.bookingRepo.GetActiveByFacilityAndPeriod(
			txCtx, req.FacilityID, startOfDay(req.StartTime), endOfDay(req.StartTime))
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 2.5. Проверяем пересечение с активными бронированиями
		if overlapsAny(req.StartTime, req.EndTime, dayBookings) {
			uc.logger.Info("CreateBooking: slot %s - %s of facility=%d is already booked",
				req.StartTime.Format(time.RFC3339), req.EndTime.Format(time.RFC3339), req.FacilityID)
			return ErrSlotUnavailable
		}

		// 2.6. Создаем бронирование
		created, err = uc.bookingRepo.Create(txCtx, &domain.Booking{
			UserID:     req.UserID,
			FacilityID: req.FacilityID,
			StartTime:  req.StartTime,
			EndTime:    req.EndTime,
			Status:     domain.StatusConfirmed,
			Notes:      req.Notes,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: booking id=%d created for user=%d, facility=%d",
		created.ID, req.UserID, req.FacilityID)

	return &Response{Booking: created}, nil
}

// isWithinWindow проверяет, что интервал [start, end] целиком лежит в рабочем окне дня
func isWithinWindow(start, end time.Time, window *domain.DayWindow) (bool, error) {
	openAt, err := window.Open.OnDate(start)
	if err != nil {
		return false, err
	}
	closeAt, err := window.Close.OnDate(start)
	if err != nil {
		return false, err
	}
	return !start.Before(openAt) && !end.After(closeAt), nil
}

// overlapsAny проверяет пересечение кандидата [start, end) хотя бы с одним
// активным бронированием. Интервалы полуоткрытые: совпадение границ
// пересечением не считается.
func overlapsAny(start, end time.Time, bookings []*domain.Booking) bool {
	for _, booking := range bookings {
		if !booking.IsActive() {
			continue
		}
		if booking.StartTime.Before(end) && start.Before(booking.EndTime) {
			return true
		}
	}
	return false
}

// isSameDay проверяет, что две даты относятся к одному и тому же календарному дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// startOfDay возвращает начало календарного дня (00:00:00.000)
func startOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// endOfDay возвращает конец календарного дня (23:59:59.999)
func endOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 23, 59, 59, int(999*time.Millisecond), date.Location())
}
