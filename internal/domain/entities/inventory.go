package entities

import "time"

// PropertyStatus is the sale state of an individual unit.

type PropertyStatus string

const (
	PropertyStatusAvailable PropertyStatus = "available"
	PropertyStatusReserved  PropertyStatus = "reserved"
	PropertyStatusSold      PropertyStatus = "sold"
)

// Project is a multi-unit real-estate development.
//
// Storage model (DynamoDB):
//   - PK: id

type Project struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Location   string    `json:"location,omitempty"`
	Developer  string    `json:"developer,omitempty"`
	TotalUnits int       `json:"total_units,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Property is an individual sellable unit, optionally part of a Project.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (project_id-index): project_id

type Property struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	ProjectID string         `json:"project_id,omitempty"`
	Type      string         `json:"type,omitempty"`
	Price     float64        `json:"price,omitempty"`
	Location  string         `json:"location,omitempty"`
	Status    PropertyStatus `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// ValidPropertyStatus reports whether s is a known property status.
func ValidPropertyStatus(s PropertyStatus) bool {
	switch s {
	case PropertyStatusAvailable, PropertyStatusReserved, PropertyStatusSold:
		return true
	}
	return false
}
