package response

import (
	"time"

	"github.com/kavyp12/rama-vista-hub-sub001/internal/domain/entities"
	"github.com/kavyp12/rama-vista-hub-sub001/internal/usecase"
)

type LeadResponse struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Phone       string               `json:"phone"`
	Email       string               `json:"email,omitempty"`
	Stage       string               `json:"stage"`
	Temperature string               `json:"temperature"`
	Source      string               `json:"source,omitempty"`
	AssignedTo  string               `json:"assigned_to,omitempty"`
	BudgetMin   float64              `json:"budget_min,omitempty"`
	BudgetMax   float64              `json:"budget_max,omitempty"`
	Project     *entities.SubjectRef `json:"project,omitempty"`
	Property    *entities.SubjectRef `json:"property,omitempty"`

	SiteVisits []entities.SiteVisit `json:"site_visits,omitempty"`
	CallLogs   []entities.CallLog   `json:"call_logs,omitempty"`
	Deals      []entities.Deal      `json:"deals,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromLead(l entities.Lead) LeadResponse {
	return LeadResponse{
		ID:          l.ID,
		Name:        l.Name,
		Phone:       l.Phone,
		Email:       l.Email,
		Stage:       string(l.Stage),
		Temperature: string(l.Temperature),
		Source:      l.Source,
		AssignedTo:  l.AssignedTo,
		BudgetMin:   l.BudgetMin,
		BudgetMax:   l.BudgetMax,
		Project:     l.Project,
		Property:    l.Property,
		SiteVisits:  l.SiteVisits,
		CallLogs:    l.CallLogs,
		Deals:       l.Deals,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}

func FromLeads(leads []entities.Lead) []LeadResponse {
	out := make([]LeadResponse, 0, len(leads))
	for _, l := range leads {
		out = append(out, FromLead(l))
	}
	return out
}

// LeadDetailResponse is the detail-dialog aggregate: the person's full
// visit history grouped by project, or the flat timeline when no
// groupable visits exist.
type LeadDetailResponse struct {
	Lead          LeadResponse            `json:"lead"`
	RelatedLeads  []LeadResponse          `json:"related_leads,omitempty"`
	ProjectGroups []usecase.ProjectGroup  `json:"project_groups,omitempty"`
	Timeline      []usecase.TimelineEntry `json:"timeline,omitempty"`
}

func FromLeadDetail(d usecase.LeadDetail) LeadDetailResponse {
	return LeadDetailResponse{
		Lead:          FromLead(d.Lead),
		RelatedLeads:  FromLeads(d.RelatedLeads),
		ProjectGroups: d.ProjectGroups,
		Timeline:      d.Timeline,
	}
}
