package entities

import "time"

// LeadStage represents a lead's position in the sales funnel.
//
// Domain notes:
//   - The client UI renders one kanban column per stage, in the order
//     listed below.
//   - No transition graph is enforced: any stage may follow any other.

type LeadStage string

const (
	LeadStageNew         LeadStage = "new"
	LeadStageContacted   LeadStage = "contacted"
	LeadStageSiteVisit   LeadStage = "site_visit"
	LeadStageNegotiation LeadStage = "negotiation"
	LeadStageToken       LeadStage = "token"
	LeadStageCompleted   LeadStage = "completed"
	LeadStageClosed      LeadStage = "closed"
	LeadStageLost        LeadStage = "lost"
)

// PipelineStages is the fixed, ordered stage list used by the kanban
// board. Column presence is guaranteed independent of data.
var PipelineStages = []LeadStage{
	LeadStageNew,
	LeadStageContacted,
	LeadStageSiteVisit,
	LeadStageNegotiation,
	LeadStageToken,
	LeadStageCompleted,
	LeadStageClosed,
	LeadStageLost,
}

// Temperature is a qualitative urgency/interest rating on a lead.

type Temperature string

const (
	TemperatureHot  Temperature = "hot"
	TemperatureWarm Temperature = "warm"
	TemperatureCold Temperature = "cold"
)

// SubjectRef is a loose reference to a visited subject (a Project or a
// Property). Embedded payloads do not always carry the subject id, so
// ID may be empty while Name is set.
type SubjectRef struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

// Lead is a prospective customer tracked through the funnel.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (phone-index): phone
//
// The nested SiteVisits/CallLogs/Deals collections are hydrated from
// their own tables at read time; they are never stored on the lead item.

type Lead struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Phone       string      `json:"phone"`
	Email       string      `json:"email,omitempty"`
	Stage       LeadStage   `json:"stage"`
	Temperature Temperature `json:"temperature"`
	Source      string      `json:"source,omitempty"`
	AssignedTo  string      `json:"assigned_to,omitempty"`
	BudgetMin   float64     `json:"budget_min,omitempty"`
	BudgetMax   float64     `json:"budget_max,omitempty"`

	// Declared interest, used as the pipeline fallback subject when a
	// lead has no visits with a resolvable subject.
	Project  *SubjectRef `json:"project,omitempty"`
	Property *SubjectRef `json:"property,omitempty"`

	SiteVisits []SiteVisit `json:"site_visits,omitempty"`
	CallLogs   []CallLog   `json:"call_logs,omitempty"`
	Deals      []Deal      `json:"deals,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ValidStage reports whether s is one of the known funnel stages.
func ValidStage(s LeadStage) bool {
	for _, st := range PipelineStages {
		if st == s {
			return true
		}
	}
	return false
}

// ValidTemperature reports whether t is a known temperature rating.
func ValidTemperature(t Temperature) bool {
	switch t {
	case TemperatureHot, TemperatureWarm, TemperatureCold:
		return true
	}
	return false
}
