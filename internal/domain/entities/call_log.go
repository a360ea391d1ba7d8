package entities

import "time"

// CallStatus is the telecalling outcome code for a logged call.

type CallStatus string

const (
	CallStatusConnected   CallStatus = "connected"
	CallStatusNoAnswer    CallStatus = "no_answer"
	CallStatusBusy        CallStatus = "busy"
	CallStatusCallback    CallStatus = "callback"
	CallStatusWrongNumber CallStatus = "wrong_number"
)

// CallLog records a telecalling interaction between an agent and a lead.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (lead_id-index): lead_id
//   - GSI2 (agent_id-index): agent_id

type CallLog struct {
	ID           string     `json:"id"`
	LeadID       string     `json:"lead_id"`
	AgentID      string     `json:"agent_id"`
	Status       CallStatus `json:"status"`
	CalledAt     time.Time  `json:"called_at"`
	DurationSecs int        `json:"duration_secs,omitempty"`
	Notes        string     `json:"notes,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// ValidCallStatus reports whether s is a known call status code.
func ValidCallStatus(s CallStatus) bool {
	switch s {
	case CallStatusConnected, CallStatusNoAnswer, CallStatusBusy, CallStatusCallback, CallStatusWrongNumber:
		return true
	}
	return false
}
