package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-FacilityService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, now time.Time) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.FacilityID <= 0 {
		return fmt.Errorf("%w: facilityID must be positive", ErrInvalidInput)
	}

	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return fmt.Errorf("%w: startTime and endTime are required", ErrInvalidInput)
	}

	if !req.EndTime.After(req.StartTime) {
		return fmt.Errorf("%w: endTime must be after startTime", ErrInvalidInput)
	}

	// Бронирования через полночь не поддерживаются
	if !isSameDay(req.StartTime, req.EndTime) {
		return fmt.Errorf("%w: booking must start and end on the same day", ErrInvalidInput)
	}

	durationMinutes := int(req.EndTime.Sub(req.StartTime).Minutes())
	if durationMinutes < domain.MinSlotDurationMinutes {
		return fmt.Errorf("%w: duration must be at least %d minutes", ErrInvalidInput, domain.MinSlotDurationMinutes)
	}
	if durationMinutes > domain.MaxSlotDurationMinutes {
		return fmt.Errorf("%w: duration must not exceed %d minutes", ErrInvalidInput, domain.MaxSlotDurationMinutes)
	}

	// Старт только на границах 30-минутной сетки (:00 или :30), ровно в начале минуты
	if req.StartTime.Minute()%domain.SlotGridIntervalMinutes != 0 ||
		req.StartTime.Second() != 0 || req.StartTime.Nanosecond() != 0 {
		return fmt.Errorf("%w: startTime must be aligned to %d-minute grid", ErrInvalidInput, domain.SlotGridIntervalMinutes)
	}

	if req.StartTime.Before(now) {
		return fmt.Errorf("%w: startTime must not be in the past", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}
