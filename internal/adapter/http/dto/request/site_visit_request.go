package request

import (
	"time"

	"github.com/kavyp12/rama-vista-hub-sub001/internal/domain/entities"
)

// ScheduleVisitRequest books an in-person viewing for a lead. At most
// one of project/property may be set; the use case rejects both.
type ScheduleVisitRequest struct {
	LeadID      string             `json:"lead_id" binding:"required"`
	ScheduledAt time.Time          `json:"scheduled_at" binding:"required"`
	Project     *SubjectRefRequest `json:"project"`
	Property    *SubjectRefRequest `json:"property"`
}

func (r ScheduleVisitRequest) ToEntity() entities.SiteVisit {
	return entities.SiteVisit{
		LeadID:      r.LeadID,
		ScheduledAt: r.ScheduledAt,
		Project:     r.Project.ToEntity(),
		Property:    r.Property.ToEntity(),
	}
}

// VisitStatusRequest moves a visit through its lifecycle.
type VisitStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// CompleteVisitRequest captures the outcome of a finished visit.
type CompleteVisitRequest struct {
	Rating   int    `json:"rating" binding:"required"`
	Feedback string `json:"feedback"`
}
