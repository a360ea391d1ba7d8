package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus represents the payment processing outcome.

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusDenied   PaymentStatus = "denied"
)

// Payment is a token/booking payment collected against a deal.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (deal_id-index): deal_id
//
// Provider payload:
//   - ProviderPayloadRaw keeps the original body (JSON) for
//     traceability/audit.
//   - ProviderPayload is an optional parsed representation, useful for
//     querying/debugging.

type Payment struct {
	ID     string        `json:"id"`
	DealID string        `json:"deal_id"`
	LeadID string        `json:"lead_id,omitempty"`
	Amount float64       `json:"amount"`
	Date   time.Time     `json:"date"`
	Status PaymentStatus `json:"status"`

	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}
