package request

import (
	"time"

	"github.com/kavyp12/rama-vista-hub-sub001/internal/domain/entities"
)

// CampaignRequest is the create/update payload for a marketing campaign.
type CampaignRequest struct {
	Name     string    `json:"name" binding:"required"`
	Channel  string    `json:"channel" binding:"required"`
	Budget   float64   `json:"budget"`
	Status   string    `json:"status"`
	StartsAt time.Time `json:"starts_at"`
	EndsAt   time.Time `json:"ends_at"`
}

func (r CampaignRequest) ToEntity() entities.Campaign {
	return entities.Campaign{
		Name:     r.Name,
		Channel:  r.Channel,
		Budget:   r.Budget,
		Status:   entities.CampaignStatus(r.Status),
		StartsAt: r.StartsAt,
		EndsAt:   r.EndsAt,
	}
}
