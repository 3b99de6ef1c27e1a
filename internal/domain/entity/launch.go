// internal/domain/entity/launch.go
package entity

import (
	"time"
)

// Launch represents a space launch record
type Launch struct {
	FlightNumber int       `json:"flightNumber" bson:"flightNumber"` // unique index
	Mission      string    `json:"mission" bson:"mission"`
	Rocket       string    `json:"rocket" bson:"rocket"`
	LaunchDate   time.Time `json:"launchDate" bson:"launchDate"`
	Target       string    `json:"target,omitempty" bson:"target,omitempty"`
	Customers    []string  `json:"customers" bson:"customers"`
	Upcoming     bool      `json:"upcoming" bson:"upcoming"`
	Success      *bool     `json:"success" bson:"success"` // null for some upcoming provider launches
}

// LaunchInput is the caller-supplied part of a new launch
type LaunchInput struct {
	Mission    string
	Rocket     string
	Target     string
	LaunchDate time.Time
}

// LaunchPatch is a partial update. Nil fields are left untouched.
type LaunchPatch struct {
	Upcoming *bool
	Success  *bool
}

// IsEmpty reports whether the patch changes nothing
func (p LaunchPatch) IsEmpty() bool {
	return p.Upcoming == nil && p.Success == nil
}

// LaunchQuery controls pagination when listing launches. A zero Limit means no limit.
type LaunchQuery struct {
	Skip  int64
	Limit int64
}

// Bool returns a pointer to b
func Bool(b bool) *bool {
	return &b
}
