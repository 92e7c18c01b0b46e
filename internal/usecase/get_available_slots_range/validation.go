package get_available_slots_range

import (
	"fmt"

	"github.com/m04kA/SMC-FacilityService/internal/domain"
)

// validateRequest валидирует входные данные запроса.
// Количество дней и длительность к этому моменту уже нормализованы.
func validateRequest(req *Request) error {
	if req.FacilityID <= 0 {
		return fmt.Errorf("%w: facilityID must be positive", ErrInvalidInput)
	}

	if req.StartDate.IsZero() {
		return fmt.Errorf("%w: startDate is required", ErrInvalidInput)
	}

	if req.Days <= 0 {
		return fmt.Errorf("%w: days must be positive", ErrInvalidInput)
	}

	if req.Days > domain.MaxRangeDays {
		return fmt.Errorf("%w: days must not exceed %d", ErrInvalidInput, domain.MaxRangeDays)
	}

	if req.DurationMinutes <= 0 {
		return fmt.Errorf("%w: durationMinutes must be positive", ErrInvalidInput)
	}

	return nil
}
