package request

import "github.com/kavyp12/rama-vista-hub-sub001/internal/domain/entities"

// ProjectRequest is the create/update payload for a development project.
type ProjectRequest struct {
	Name       string `json:"name" binding:"required"`
	Location   string `json:"location"`
	Developer  string `json:"developer"`
	TotalUnits int    `json:"total_units"`
}

func (r ProjectRequest) ToEntity() entities.Project {
	return entities.Project{
		Name:       r.Name,
		Location:   r.Location,
		Developer:  r.Developer,
		TotalUnits: r.TotalUnits,
	}
}

// PropertyRequest is the create/update payload for an individual unit.
type PropertyRequest struct {
	Title     string  `json:"title" binding:"required"`
	ProjectID string  `json:"project_id"`
	Type      string  `json:"type"`
	Price     float64 `json:"price"`
	Location  string  `json:"location"`
	Status    string  `json:"status"`
}

func (r PropertyRequest) ToEntity() entities.Property {
	return entities.Property{
		Title:     r.Title,
		ProjectID: r.ProjectID,
		Type:      r.Type,
		Price:     r.Price,
		Location:  r.Location,
		Status:    entities.PropertyStatus(r.Status),
	}
}
