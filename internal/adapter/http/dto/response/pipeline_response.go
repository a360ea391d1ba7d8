package response

import "github.com/kavyp12/rama-vista-hub-sub001/internal/usecase"

// PipelineRowResponse is one kanban card: a lead paired with one of its
// project interests.
type PipelineRowResponse struct {
	Lead              LeadResponse `json:"lead"`
	DisplayProject    string       `json:"display_project,omitempty"`
	ProjectKey        string       `json:"project_key"`
	ProjectVisitCount int          `json:"project_visit_count"`
}

// StageColumnResponse is one kanban column. Every funnel stage is
// present even when empty.
type StageColumnResponse struct {
	Stage string                `json:"stage"`
	Rows  []PipelineRowResponse `json:"rows"`
}

func FromPipeline(columns []usecase.StageColumn) []StageColumnResponse {
	out := make([]StageColumnResponse, 0, len(columns))
	for _, col := range columns {
		rows := make([]PipelineRowResponse, 0, len(col.Rows))
		for _, row := range col.Rows {
			rows = append(rows, PipelineRowResponse{
				Lead:              FromLead(row.Lead),
				DisplayProject:    row.DisplayProject,
				ProjectKey:        row.ProjectKey,
				ProjectVisitCount: row.ProjectVisitCount,
			})
		}
		out = append(out, StageColumnResponse{Stage: string(col.Stage), Rows: rows})
	}
	return out
}
