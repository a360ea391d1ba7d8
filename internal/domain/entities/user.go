package entities

import "time"

// Role gates access to CRM operations.
//
// Domain notes:
//   - admin: everything, including user management.
//   - manager: everything except user management.
//   - agent: leads, visits, calls, pipeline.
//   - telecaller: lead reads and call logging only.

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleManager    Role = "manager"
	RoleAgent      Role = "agent"
	RoleTelecaller Role = "telecaller"
)

// User is a CRM operator (agents and telecallers included).
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (email-index): email

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	Role         Role      `json:"role"`
	PasswordHash string    `json:"-"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
}

// ValidRole reports whether r is a known role.
func ValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleManager, RoleAgent, RoleTelecaller:
		return true
	}
	return false
}
