package entities

import "time"

// VisitStatus represents the lifecycle of a scheduled site visit.

type VisitStatus string

const (
	VisitStatusScheduled   VisitStatus = "scheduled"
	VisitStatusRescheduled VisitStatus = "rescheduled"
	VisitStatusCompleted   VisitStatus = "completed"
	VisitStatusCancelled   VisitStatus = "cancelled"
)

// SiteVisit is an in-person viewing tied to exactly one lead.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (lead_id-index): lead_id
//
// A visit references at most one subject: Project or Property. Both may
// be nil (subject unresolved), in which case the visit is excluded from
// project grouping but still appears in the flat timeline.

type SiteVisit struct {
	ID     string `json:"id"`
	LeadID string `json:"lead_id"`

	Project  *SubjectRef `json:"project,omitempty"`
	Property *SubjectRef `json:"property,omitempty"`

	Status      VisitStatus `json:"status"`
	ScheduledAt time.Time   `json:"scheduled_at"`

	// Outcome fields, set when the visit completes.
	Rating   int    `json:"rating,omitempty"`
	Feedback string `json:"feedback,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ValidVisitStatus reports whether s is a known visit status.
func ValidVisitStatus(s VisitStatus) bool {
	switch s {
	case VisitStatusScheduled, VisitStatusRescheduled, VisitStatusCompleted, VisitStatusCancelled:
		return true
	}
	return false
}
