package request

import "github.com/kavyp12/rama-vista-hub-sub001/internal/domain/entities"

// ActivityLogRequest appends one audit record. LeadID and LeadName are
// both optional; historical data references leads either way.
type ActivityLogRequest struct {
	EntityType string `json:"entity_type" binding:"required"`
	EntityID   string `json:"entity_id"`
	Action     string `json:"action" binding:"required"`
	LeadID     string `json:"lead_id"`
	LeadName   string `json:"lead_name"`
	Details    string `json:"details"`
}

func (r ActivityLogRequest) ToEntity() entities.ActivityLog {
	return entities.ActivityLog{
		EntityType: r.EntityType,
		EntityID:   r.EntityID,
		Action:     r.Action,
		LeadID:     r.LeadID,
		LeadName:   r.LeadName,
		Details:    r.Details,
	}
}
