package models

import "time"

type ResourceType string

const (
	ResourceCourt ResourceType = "court"
	ResourceField ResourceType = "field"
	ResourceTable ResourceType = "table"
)

// Resource is a physical playing surface matches get assigned to.
type Resource struct {
	ID   string       `json:"id"`
	Name string       `json:"name"`
	Type ResourceType `json:"type"`
}

// ScheduledMatch is a match augmented with its assigned start time and
// resource.
type ScheduledMatch struct {
	Match       Match     `json:"match"`
	ScheduledAt time.Time `json:"scheduled_at"`
	ResourceID  string    `json:"resource_id"`
}
