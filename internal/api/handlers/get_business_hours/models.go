package get_business_hours

import (
	"strings"

	"github.com/m04kA/SMC-FacilityService/internal/service/hours/models"
)

// BusinessHoursResponse HTTP response model
// Ключи Days - дни недели в нижнем регистре ("monday" .. "sunday");
// null вместо окна означает выходной день
type BusinessHoursResponse struct {
	FacilityID int64                 `json:"facilityId"`
	Source     string                `json:"source"`
	Days       map[string]*DayWindow `json:"days"`
}

// DayWindow окно работы одного дня
type DayWindow struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

// FromWeekResolution конвертирует результат resolver-а в HTTP response
func FromWeekResolution(resolution *models.WeekResolution) *BusinessHoursResponse {
	days := make(map[string]*DayWindow, len(resolution.Days))
	for _, day := range resolution.Days {
		key := strings.ToLower(day.Weekday.String())
		if day.Window == nil {
			days[key] = nil
			continue
		}
		days[key] = &DayWindow{
			Open:  day.Window.Open.String(),
			Close: day.Window.Close.String(),
		}
	}

	return &BusinessHoursResponse{
		FacilityID: resolution.FacilityID,
		Source:     string(resolution.Source),
		Days:       days,
	}
}
