package entities

import "time"

// CampaignStatus is the lifecycle of a marketing campaign.

type CampaignStatus string

const (
	CampaignStatusDraft     CampaignStatus = "draft"
	CampaignStatusActive    CampaignStatus = "active"
	CampaignStatusPaused    CampaignStatus = "paused"
	CampaignStatusCompleted CampaignStatus = "completed"
)

// Campaign is a marketing campaign. Dispatching publishes a
// campaign.dispatch event for the sending worker; the worker itself is
// a separate service.
//
// Storage model (DynamoDB):
//   - PK: id

type Campaign struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Channel   string         `json:"channel"` // sms, email, whatsapp
	Budget    float64        `json:"budget,omitempty"`
	Status    CampaignStatus `json:"status"`
	StartsAt  time.Time      `json:"starts_at,omitempty"`
	EndsAt    time.Time      `json:"ends_at,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
