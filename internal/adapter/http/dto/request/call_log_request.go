package request

import (
	"time"

	"github.com/kavyp12/rama-vista-hub-sub001/internal/domain/entities"
)

// CallLogRequest records one telecalling attempt against a lead.
type CallLogRequest struct {
	LeadID       string    `json:"lead_id" binding:"required"`
	AgentID      string    `json:"agent_id"`
	Status       string    `json:"status" binding:"required"`
	CalledAt     time.Time `json:"called_at"`
	DurationSecs int       `json:"duration_secs"`
	Notes        string    `json:"notes"`
}

func (r CallLogRequest) ToEntity() entities.CallLog {
	return entities.CallLog{
		LeadID:       r.LeadID,
		AgentID:      r.AgentID,
		Status:       entities.CallStatus(r.Status),
		CalledAt:     r.CalledAt,
		DurationSecs: r.DurationSecs,
		Notes:        r.Notes,
	}
}
