package response

import (
	"time"

	"github.com/kavyp12/rama-vista-hub-sub001/internal/domain/entities"
)

type PaymentResponse struct {
	PaymentID string    `json:"payment_id"`
	ID        string    `json:"id"`
	DealID    string    `json:"deal_id"`
	LeadID    string    `json:"lead_id,omitempty"`
	Amount    float64   `json:"amount"`
	Date      time.Time `json:"date"`
	Status    string    `json:"status"`

	ProviderPayloadRaw string                 `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:          p.ID,
		ID:                 p.ID,
		DealID:             p.DealID,
		LeadID:             p.LeadID,
		Amount:             p.Amount,
		Date:               p.Date,
		Status:             string(p.Status),
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
		ProviderPayload:    p.ProviderPayload,
	}
}
