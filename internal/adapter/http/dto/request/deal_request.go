package request

import "github.com/kavyp12/rama-vista-hub-sub001/internal/domain/entities"

// DealRequest opens a deal against a lead.
type DealRequest struct {
	LeadID     string  `json:"lead_id" binding:"required"`
	PropertyID string  `json:"property_id"`
	Value      float64 `json:"value" binding:"required"`
	Stage      string  `json:"stage"`
}

func (r DealRequest) ToEntity() entities.Deal {
	return entities.Deal{
		LeadID:     r.LeadID,
		PropertyID: r.PropertyID,
		Value:      r.Value,
		Stage:      entities.DealStage(r.Stage),
	}
}

// DealStageRequest moves a deal to a new stage.
type DealStageRequest struct {
	Stage string `json:"stage" binding:"required"`
}