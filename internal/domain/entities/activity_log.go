package entities

import "time"

// ActivityLog is an append-only audit record.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (lead_id-index): lead_id
//
// Historical records associate to a lead by id or, inconsistently, by
// the lead's name inside LeadName. Queries must honor both (see
// ActivityLogUseCase.ListByLead).

type ActivityLog struct {
	ID         string    `json:"id"`
	EntityType string    `json:"entity_type"`
	EntityID   string    `json:"entity_id,omitempty"`
	Action     string    `json:"action"`
	LeadID     string    `json:"lead_id,omitempty"`
	LeadName   string    `json:"lead_name,omitempty"`
	Details    string    `json:"details,omitempty"`
	ActorID    string    `json:"actor_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
