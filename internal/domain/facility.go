package domain

import "time"

// Facility represents a bookable resource (a court, a room, a studio)
// belonging to a location of an organization.
type Facility struct {
	ID             int64
	OrganizationID int64
	LocationID     int64
	Name           string
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
