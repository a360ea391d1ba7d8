package usecase

import (
	"sort"
	"time"

	"github.com/kavyp12/rama-vista-hub-sub001/internal/domain/entities"
)

// PipelineRow is the kanban card unit: one row per (lead, project-subject)
// pairing. A lead that toured several projects appears once per project
// so each interest can be worked independently.

type PipelineRow struct {
	Lead entities.Lead `json:"lead"`

	// DisplayProject is the subject's display name; empty when the lead
	// has no resolvable subject anywhere.
	DisplayProject string `json:"display_project,omitempty"`

	// ProjectKey is unique per lead+subject pairing and stable across
	// recomputation; used as the render key.
	ProjectKey string `json:"project_key"`

	ProjectVisitCount int `json:"project_visit_count"`
}

// StageColumn is one kanban column. Columns exist for every stage in
// entities.PipelineStages even when empty.
type StageColumn struct {
	Stage entities.LeadStage `json:"stage"`
	Rows  []PipelineRow      `json:"rows"`
}

// TimelineEntryType discriminates the record kinds in a unified timeline.
type TimelineEntryType string

const (
	TimelineEntryVisit TimelineEntryType = "visit"
	TimelineEntryCall  TimelineEntryType = "call"
)

// TimelineEntry is a visit or call normalized onto a common date axis.
type TimelineEntry struct {
	Type  TimelineEntryType   `json:"type"`
	Date  time.Time           `json:"date"`
	Visit *entities.SiteVisit `json:"visit,omitempty"`
	Call  *entities.CallLog   `json:"call,omitempty"`
}

// ProjectGroup accumulates one person's visit history for a single
// project subject, across all lead records sharing their phone number.
type ProjectGroup struct {
	DisplayProject string               `json:"display_project"`
	Lead           entities.Lead        `json:"lead"`
	Visits         []entities.SiteVisit `json:"visits"`
}

// subjectKey resolves the grouping key and display name for a visit
// subject. The key prefers the subject id when the embedded payload
// carries one and falls back to the display name otherwise; two
// distinct id-less subjects sharing a name will still merge.
func subjectKey(project, property *entities.SubjectRef) (key, display string) {
	ref := project
	if ref == nil {
		ref = property
	}
	if ref == nil || (ref.Name == "" && ref.ID == "") {
		return "", ""
	}
	if ref.ID != "" {
		return ref.ID, ref.Name
	}
	return ref.Name, ref.Name
}

// ExpandByProject produces one PipelineRow per distinct visit subject of
// each lead. Visits with no resolvable subject are excluded from
// grouping. A lead with no groupable visits yields exactly one fallback
// row from its own declared project/property reference (or none), so
// every lead is represented at least once.
//
// Row order: leads in input order; within a lead, subjects in first-seen
// visit order. Downstream stage grouping preserves this order.
func ExpandByProject(leads []entities.Lead) []PipelineRow {
	rows := make([]PipelineRow, 0, len(leads))
	for _, lead := range leads {
		type bucket struct {
			display string
			count   int
		}
		var order []string
		buckets := map[string]*bucket{}

		for _, v := range lead.SiteVisits {
			key, display := subjectKey(v.Project, v.Property)
			if key == "" {
				continue
			}
			b, ok := buckets[key]
			if !ok {
				b = &bucket{display: display}
				buckets[key] = b
				order = append(order, key)
			}
			b.count++
		}

		if len(order) == 0 {
			key, display := subjectKey(lead.Project, lead.Property)
			rows = append(rows, PipelineRow{
				Lead:           lead,
				DisplayProject: display,
				ProjectKey:     lead.ID + "-" + key,
			})
			continue
		}

		for _, key := range order {
			b := buckets[key]
			rows = append(rows, PipelineRow{
				Lead:              lead,
				DisplayProject:    b.display,
				ProjectKey:        lead.ID + "-" + key,
				ProjectVisitCount: b.count,
			})
		}
	}
	return rows
}

// GroupByStage partitions expanded rows into the fixed ordered stage
// columns. Single pass, insertion-order preserving per column; rows with
// an unknown stage are dropped (they have no column to render into).
func GroupByStage(rows []PipelineRow) []StageColumn {
	index := make(map[entities.LeadStage]int, len(entities.PipelineStages))
	columns := make([]StageColumn, len(entities.PipelineStages))
	for i, stage := range entities.PipelineStages {
		columns[i] = StageColumn{Stage: stage, Rows: []PipelineRow{}}
		index[stage] = i
	}
	for _, row := range rows {
		i, ok := index[row.Lead.Stage]
		if !ok {
			continue
		}
		columns[i].Rows = append(columns[i].Rows, row)
	}
	return columns
}

// BuildTimeline merges one lead's visits and calls into a single feed
// sorted most-recent-first. The sort is stable: entries with equal
// timestamps keep concatenation order (visits before calls). Pure;
// recomputed on every call.
func BuildTimeline(lead entities.Lead) []TimelineEntry {
	entries := make([]TimelineEntry, 0, len(lead.SiteVisits)+len(lead.CallLogs))
	for i := range lead.SiteVisits {
		v := lead.SiteVisits[i]
		entries = append(entries, TimelineEntry{Type: TimelineEntryVisit, Date: v.ScheduledAt, Visit: &v})
	}
	for i := range lead.CallLogs {
		c := lead.CallLogs[i]
		entries = append(entries, TimelineEntry{Type: TimelineEntryCall, Date: c.CalledAt, Call: &c})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})
	return entries
}

// GroupVisitsAcrossLeads regroups all visits of a person (the primary
// lead plus phone-matched siblings) by project subject, independent of
// which lead record each visit is attached to. The representative lead
// of a group is the first lead that contributed a visit to it.
//
// An empty result signals the caller to fall back to the flat
// per-lead timeline.
func GroupVisitsAcrossLeads(primary entities.Lead, siblings []entities.Lead) []ProjectGroup {
	all := append([]entities.Lead{primary}, siblings...)

	var order []string
	groups := map[string]*ProjectGroup{}
	for _, lead := range all {
		for _, v := range lead.SiteVisits {
			key, display := subjectKey(v.Project, v.Property)
			if key == "" {
				continue
			}
			g, ok := groups[key]
			if !ok {
				g = &ProjectGroup{DisplayProject: display, Lead: lead}
				groups[key] = g
				order = append(order, key)
			}
			g.Visits = append(g.Visits, v)
		}
	}

	out := make([]ProjectGroup, 0, len(order))
	for _, key := range order {
		out = append(out, *groups[key])
	}
	return out
}
