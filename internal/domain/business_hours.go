package domain

import (
	"time"

	"github.com/m04kA/SMC-FacilityService/pkg/types"
)

// DayWindow is the open/close window of a single weekday.
// Invariant: Open < Close, both within the same day (no overnight wraparound).
type DayWindow struct {
	Open  types.TimeString
	Close types.TimeString
}

// IsValid reports whether the window satisfies the Open < Close invariant
func (w *DayWindow) IsValid() bool {
	return w.Open.IsBefore(w.Close)
}

// WeekSchedule maps each weekday to its open/close window.
// A nil entry means the day is closed.
type WeekSchedule struct {
	Monday    *DayWindow
	Tuesday   *DayWindow
	Wednesday *DayWindow
	Thursday  *DayWindow
	Friday    *DayWindow
	Saturday  *DayWindow
	Sunday    *DayWindow
}

// ForWeekday returns the window for the given weekday (nil = closed)
func (s *WeekSchedule) ForWeekday(weekday time.Weekday) *DayWindow {
	switch weekday {
	case time.Monday:
		return s.Monday
	case time.Tuesday:
		return s.Tuesday
	case time.Wednesday:
		return s.Wednesday
	case time.Thursday:
		return s.Thursday
	case time.Friday:
		return s.Friday
	case time.Saturday:
		return s.Saturday
	case time.Sunday:
		return s.Sunday
	default:
		return nil
	}
}

// SetWeekday replaces the window for the given weekday
func (s *WeekSchedule) SetWeekday(weekday time.Weekday, window *DayWindow) {
	switch weekday {
	case time.Monday:
		s.Monday = window
	case time.Tuesday:
		s.Tuesday = window
	case time.Wednesday:
		s.Wednesday = window
	case time.Thursday:
		s.Thursday = window
	case time.Friday:
		s.Friday = window
	case time.Saturday:
		s.Saturday = window
	case time.Sunday:
		s.Sunday = window
	}
}

// HoursTier identifies the level of the configuration hierarchy an override
// belongs to. Overrides apply facility-first: facility > location > organization,
// with DefaultWeekSchedule as the final fallback.
type HoursTier string

const (
	TierFacility     HoursTier = "facility"
	TierLocation     HoursTier = "location"
	TierOrganization HoursTier = "organization"
	TierDefault      HoursTier = "default"
)

// ResolveWindow collapses the override chain to the effective window for one
// weekday: the first configured tier wins, the built-in default closes the chain.
// A tier is "configured" when its schedule is non-nil; a configured tier may
// still mark the day closed (nil window), and that decision is final for it.
func ResolveWindow(weekday time.Weekday, facility, location, organization *WeekSchedule) (*DayWindow, HoursTier) {
	if facility != nil {
		return facility.ForWeekday(weekday), TierFacility
	}
	if location != nil {
		return location.ForWeekday(weekday), TierLocation
	}
	if organization != nil {
		return organization.ForWeekday(weekday), TierOrganization
	}
	return DefaultWeekSchedule.ForWeekday(weekday), TierDefault
}
