package models

import (
	"time"

	"github.com/m04kA/SMC-FacilityService/internal/domain"
)

// Source указывает, какой уровень иерархии дал эффективное расписание.
// Отдельное значение SourceDefaultMissingFacility помечает ситуацию,
// когда объект не найден и молча применены значения по умолчанию -
// вызывающий код сам решает, считать ли это ошибкой.
type Source string

const (
	SourceFacility               Source = "facility"
	SourceLocation               Source = "location"
	SourceOrganization           Source = "organization"
	SourceDefault                Source = "default"
	SourceDefaultMissingFacility Source = "default_missing_facility"
)

// IsMissingFacility сообщает, что разрешение прошло по умолчанию из-за отсутствующего объекта
func (s Source) IsMissingFacility() bool {
	return s == SourceDefaultMissingFacility
}

// FromTier конвертирует уровень иерархии domain в Source
func FromTier(tier domain.HoursTier) Source {
	switch tier {
	case domain.TierFacility:
		return SourceFacility
	case domain.TierLocation:
		return SourceLocation
	case domain.TierOrganization:
		return SourceOrganization
	default:
		return SourceDefault
	}
}

// DayResolution результат разрешения расписания на один день.
// Window == nil означает выходной день.
type DayResolution struct {
	Weekday time.Weekday
	Window  *domain.DayWindow
	Source  Source
}

// IsClosed сообщает, что день является выходным
func (r *DayResolution) IsClosed() bool {
	return r.Window == nil
}

// WeekResolution результат разрешения расписания на неделю
type WeekResolution struct {
	FacilityID int64
	Days       []DayResolution // 7 дней, начиная с воскресенья (порядок time.Weekday)
	Source     Source
}

// UpdateWeekRequest запрос на замену расписания уровня иерархии
type UpdateWeekRequest struct {
	UserID  int64
	Tier    domain.HoursTier
	OwnerID int64
	Week    domain.WeekSchedule
}

// DeleteWeekRequest запрос на удаление расписания уровня иерархии
type DeleteWeekRequest struct {
	UserID  int64
	Tier    domain.HoursTier
	OwnerID int64
}
