package request

import "github.com/kavyp12/rama-vista-hub-sub001/internal/domain/entities"

// LoginRequest carries operator credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest creates a CRM operator account. Admin only.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Phone    string `json:"phone"`
	Role     string `json:"role" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

func (r RegisterRequest) ToEntity() entities.User {
	return entities.User{
		Name:  r.Name,
		Email: r.Email,
		Phone: r.Phone,
		Role:  entities.Role(r.Role),
	}
}
