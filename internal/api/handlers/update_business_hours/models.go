package update_business_hours

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-FacilityService/internal/domain"
	"github.com/m04kA/SMC-FacilityService/internal/service/hours/models"
	"github.com/m04kA/SMC-FacilityService/pkg/types"
)

// UpdateBusinessHoursRequest HTTP request model
// Ключи Days - дни недели в нижнем регистре ("monday" .. "sunday");
// пропущенный день или null означает выходной
type UpdateBusinessHoursRequest struct {
	Days map[string]*DayWindow `json:"days"`
}

// DayWindow окно работы одного дня
type DayWindow struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
// с парсингом имен дней и времени
func (r *UpdateBusinessHoursRequest) ToServiceRequest(userID int64, tier domain.HoursTier, ownerID int64) (*models.UpdateWeekRequest, error) {
	var week domain.WeekSchedule

	for name, window := range r.Days {
		weekday, ok := weekdayNames[name]
		if !ok {
			return nil, fmt.Errorf("unknown weekday %q", name)
		}
		if window == nil {
			continue
		}

		open, err := types.NewTimeStringFromString(window.Open)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		closeTime, err := types.NewTimeStringFromString(window.Close)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}

		week.SetWeekday(weekday, &domain.DayWindow{Open: open, Close: closeTime})
	}

	return &models.UpdateWeekRequest{
		UserID:  userID,
		Tier:    tier,
		OwnerID: ownerID,
		Week:    week,
	}, nil
}

// ParseTier конвертирует сегмент URL в уровень иерархии
func ParseTier(s string) (domain.HoursTier, error) {
	tier := domain.HoursTier(s)
	switch tier {
	case domain.TierFacility, domain.TierLocation, domain.TierOrganization:
		return tier, nil
	default:
		return "", fmt.Errorf("unknown tier %q", s)
	}
}
