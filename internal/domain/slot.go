package domain

import "github.com/m04kA/SMC-FacilityService/pkg/types"

// TimeSlot is one candidate booking window of exactly the requested duration,
// starting on the 30-minute availability grid. Slots are produced transiently
// per request and never persisted.
type TimeSlot struct {
	StartTime   types.TimeString
	EndTime     types.TimeString
	IsAvailable bool
}
