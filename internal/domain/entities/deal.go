package entities

import "time"

// DealStage tracks a monetary transaction separately from the lead funnel.

type DealStage string

const (
	DealStageOpen  DealStage = "open"
	DealStageToken DealStage = "token"
	DealStageWon   DealStage = "won"
	DealStageLost  DealStage = "lost"
)

// Deal is a monetary transaction tied to a lead.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (lead_id-index): lead_id

type Deal struct {
	ID         string    `json:"id"`
	LeadID     string    `json:"lead_id"`
	PropertyID string    `json:"property_id,omitempty"`
	Value      float64   `json:"value"`
	Stage      DealStage `json:"stage"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ValidDealStage reports whether s is a known deal stage.
func ValidDealStage(s DealStage) bool {
	switch s {
	case DealStageOpen, DealStageToken, DealStageWon, DealStageLost:
		return true
	}
	return false
}
