package request

import (
	"strings"

	"github.com/kavyp12/rama-vista-hub-sub001/internal/domain/entities"
)

// SubjectRefRequest mirrors entities.SubjectRef. Embedded payloads from
// older clients may omit the id, so only the name is required.
type SubjectRefRequest struct {
	ID   string `json:"id"`
	Name string `json:"name" binding:"required"`
}

func (r *SubjectRefRequest) ToEntity() *entities.SubjectRef {
	if r == nil {
		return nil
	}
	return &entities.SubjectRef{
		ID:   strings.TrimSpace(r.ID),
		Name: strings.TrimSpace(r.Name),
	}
}

// LeadRequest is the create/update payload for a lead. Stage and
// temperature default server-side when omitted on create.
type LeadRequest struct {
	Name        string             `json:"name" binding:"required"`
	Phone       string             `json:"phone" binding:"required"`
	Email       string             `json:"email"`
	Stage       string             `json:"stage"`
	Temperature string             `json:"temperature"`
	Source      string             `json:"source"`
	AssignedTo  string             `json:"assigned_to"`
	BudgetMin   float64            `json:"budget_min"`
	BudgetMax   float64            `json:"budget_max"`
	Project     *SubjectRefRequest `json:"project"`
	Property    *SubjectRefRequest `json:"property"`
}

func (r LeadRequest) ToEntity() entities.Lead {
	return entities.Lead{
		Name:        r.Name,
		Phone:       r.Phone,
		Email:       strings.TrimSpace(r.Email),
		Stage:       entities.LeadStage(r.Stage),
		Temperature: entities.Temperature(r.Temperature),
		Source:      strings.TrimSpace(r.Source),
		AssignedTo:  strings.TrimSpace(r.AssignedTo),
		BudgetMin:   r.BudgetMin,
		BudgetMax:   r.BudgetMax,
		Project:     r.Project.ToEntity(),
		Property:    r.Property.ToEntity(),
	}
}
