package usecase

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"

	"github.com/kavyp12/rama-vista-hub-sub001/internal/domain/entities"
)

func projectVisit(name string, at time.Time) entities.SiteVisit {
	return entities.SiteVisit{
		Project:     &entities.SubjectRef{Name: name},
		Status:      entities.VisitStatusScheduled,
		ScheduledAt: at,
	}
}

func propertyVisit(title string, at time.Time) entities.SiteVisit {
	return entities.SiteVisit{
		Property:    &entities.SubjectRef{Name: title},
		Status:      entities.VisitStatusScheduled,
		ScheduledAt: at,
	}
}

func TestExpandByProject(t *testing.T) {
	day := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("single project yields one row with visit count", func(t *testing.T) {
		asha := entities.Lead{
			ID:    "1",
			Name:  "Asha",
			Stage: entities.LeadStageSiteVisit,
			SiteVisits: []entities.SiteVisit{
				projectVisit("Lakeview", day),
				projectVisit("Lakeview", day.AddDate(0, 0, 7)),
			},
		}

		rows := ExpandByProject([]entities.Lead{asha})
		if len(rows) != 1 {
			t.Fatalf("expected 1 row, got %d", len(rows))
		}
		if rows[0].DisplayProject != "Lakeview" {
			t.Fatalf("expected Lakeview, got %q", rows[0].DisplayProject)
		}
		if rows[0].ProjectVisitCount != 2 {
			t.Fatalf("expected 2 visits, got %d", rows[0].ProjectVisitCount)
		}
	})

	t.Run("multi project split", func(t *testing.T) {
		raj := entities.Lead{
			ID:    "2",
			Name:  "Raj",
			Stage: entities.LeadStageNegotiation,
			SiteVisits: []entities.SiteVisit{
				projectVisit("Lakeview", day),
				propertyVisit("Unit 4B", day.AddDate(0, 0, 1)),
			},
		}

		rows := ExpandByProject([]entities.Lead{raj})
		if len(rows) != 2 {
			t.Fatalf("expected 2 rows, got %d", len(rows))
		}
		if rows[0].ProjectKey != "2-Lakeview" || rows[1].ProjectKey != "2-Unit 4B" {
			t.Fatalf("unexpected keys: %q, %q", rows[0].ProjectKey, rows[1].ProjectKey)
		}
		if rows[0].ProjectVisitCount != 1 || rows[1].ProjectVisitCount != 1 {
			t.Fatalf("unexpected counts: %+v", rows)
		}
	})

	t.Run("no visits yields fallback row from declared reference", func(t *testing.T) {
		mina := entities.Lead{
			ID:      "3",
			Name:    "Mina",
			Stage:   entities.LeadStageNew,
			Project: &entities.SubjectRef{Name: "Hillcrest"},
		}

		rows := ExpandByProject([]entities.Lead{mina})
		if len(rows) != 1 {
			t.Fatalf("expected 1 row, got %d", len(rows))
		}
		if rows[0].DisplayProject != "Hillcrest" || rows[0].ProjectVisitCount != 0 {
			t.Fatalf("unexpected fallback row: %+v", rows[0])
		}
	})

	t.Run("no visits and no declared reference still yields a row", func(t *testing.T) {
		rows := ExpandByProject([]entities.Lead{{ID: "4", Name: "Dev", Stage: entities.LeadStageNew}})
		if len(rows) != 1 {
			t.Fatalf("expected 1 row, got %d", len(rows))
		}
		if rows[0].DisplayProject != "" {
			t.Fatalf("expected empty display project, got %q", rows[0].DisplayProject)
		}
	})

	t.Run("visits without a resolvable subject fall back", func(t *testing.T) {
		lead := entities.Lead{
			ID:    "5",
			Stage: entities.LeadStageContacted,
			SiteVisits: []entities.SiteVisit{
				{Status: entities.VisitStatusScheduled, ScheduledAt: day},
			},
		}
		rows := ExpandByProject([]entities.Lead{lead})
		if len(rows) != 1 || rows[0].ProjectVisitCount != 0 {
			t.Fatalf("expected single fallback row, got %+v", rows)
		}
	})

	t.Run("subject id preferred over display name", func(t *testing.T) {
		// Two distinct projects sharing a display name stay separate
		// when the embedded payload carries ids.
		lead := entities.Lead{
			ID:    "6",
			Stage: entities.LeadStageSiteVisit,
			SiteVisits: []entities.SiteVisit{
				{Project: &entities.SubjectRef{ID: "p-1", Name: "Lakeview"}, ScheduledAt: day},
				{Project: &entities.SubjectRef{ID: "p-2", Name: "Lakeview"}, ScheduledAt: day},
			},
		}
		rows := ExpandByProject([]entities.Lead{lead})
		if len(rows) != 2 {
			t.Fatalf("expected 2 rows for distinct ids, got %d", len(rows))
		}
	})

	t.Run("every lead is represented at least once", func(t *testing.T) {
		leads := []entities.Lead{
			{ID: "1", Stage: entities.LeadStageNew},
			{ID: "2", Stage: entities.LeadStageLost, SiteVisits: []entities.SiteVisit{projectVisit("A", day), projectVisit("B", day)}},
			{ID: "3", Stage: entities.LeadStageToken, Property: &entities.SubjectRef{Name: "Unit 9"}},
		}
		rows := ExpandByProject(leads)

		seen := map[string]bool{}
		for _, r := range rows {
			seen[r.Lead.ID] = true
		}
		for _, l := range leads {
			if !seen[l.ID] {
				t.Fatalf("lead %s dropped from expansion", l.ID)
			}
		}
		if len(rows) != 4 {
			t.Fatalf("expected 4 rows (1+2+1), got %d", len(rows))
		}
	})

	t.Run("idempotent on unchanged input", func(t *testing.T) {
		leads := []entities.Lead{
			{ID: "1", Stage: entities.LeadStageNew, SiteVisits: []entities.SiteVisit{projectVisit("A", day), propertyVisit("B", day)}},
		}
		first := ExpandByProject(leads)
		second := ExpandByProject(leads)
		if !reflect.DeepEqual(first, second) {
			t.Fatalf("expansion not idempotent:\n%+v\n%+v", first, second)
		}
	})
}

func TestGroupByStage(t *testing.T) {
	t.Run("all columns present even when empty", func(t *testing.T) {
		columns := GroupByStage(nil)
		if len(columns) != len(entities.PipelineStages) {
			t.Fatalf("expected %d columns, got %d", len(entities.PipelineStages), len(columns))
		}
		for i, c := range columns {
			if c.Stage != entities.PipelineStages[i] {
				t.Fatalf("column %d out of order: %s", i, c.Stage)
			}
			if c.Rows == nil || len(c.Rows) != 0 {
				t.Fatalf("expected empty rows slice for %s", c.Stage)
			}
		}
	})

	t.Run("partition preserves order and loses nothing", func(t *testing.T) {
		rows := []PipelineRow{
			{Lead: entities.Lead{ID: "1", Stage: entities.LeadStageNew}, ProjectKey: "1-A"},
			{Lead: entities.Lead{ID: "2", Stage: entities.LeadStageToken}, ProjectKey: "2-B"},
			{Lead: entities.Lead{ID: "3", Stage: entities.LeadStageNew}, ProjectKey: "3-C"},
			{Lead: entities.Lead{ID: "4", Stage: entities.LeadStageLost}, ProjectKey: "4-D"},
		}
		columns := GroupByStage(rows)

		var rebuilt []PipelineRow
		for _, c := range columns {
			for _, r := range c.Rows {
				if r.Lead.Stage != c.Stage {
					t.Fatalf("row %s in wrong column %s", r.ProjectKey, c.Stage)
				}
			}
			rebuilt = append(rebuilt, c.Rows...)
		}
		if len(rebuilt) != len(rows) {
			t.Fatalf("partition lost/duplicated rows: %d != %d", len(rebuilt), len(rows))
		}

		// new-stage rows keep their relative order.
		newCol := columns[0]
		if len(newCol.Rows) != 2 || newCol.Rows[0].ProjectKey != "1-A" || newCol.Rows[1].ProjectKey != "3-C" {
			t.Fatalf("unexpected new column: %+v", newCol.Rows)
		}
	})

	t.Run("unknown stage rows are dropped", func(t *testing.T) {
		rows := []PipelineRow{{Lead: entities.Lead{ID: "1", Stage: "bogus"}}}
		columns := GroupByStage(rows)
		for _, c := range columns {
			if len(c.Rows) != 0 {
				t.Fatalf("unexpected row in column %s", c.Stage)
			}
		}
	})
}

func TestBuildTimeline(t *testing.T) {
	t.Run("merge sorts descending by date", func(t *testing.T) {
		lead := entities.Lead{
			ID: "1",
			SiteVisits: []entities.SiteVisit{
				projectVisit("Lakeview", time.Date(2024, 1, 5, 9, 0, 0, 0, time.UTC)),
			},
			CallLogs: []entities.CallLog{
				{CalledAt: time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC)},
			},
		}

		got := BuildTimeline(lead)
		if len(got) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(got))
		}
		if got[0].Type != TimelineEntryVisit || got[1].Type != TimelineEntryCall {
			t.Fatalf("unexpected order: %s, %s", got[0].Type, got[1].Type)
		}
		if got[0].Visit == nil || got[1].Call == nil {
			t.Fatalf("expected typed payloads: %+v", got)
		}
	})

	t.Run("length equals visits plus calls", func(t *testing.T) {
		day := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
		lead := entities.Lead{ID: "1"}
		for i := 0; i < 3; i++ {
			lead.SiteVisits = append(lead.SiteVisits, projectVisit("A", day.AddDate(0, 0, i)))
		}
		for i := 0; i < 4; i++ {
			lead.CallLogs = append(lead.CallLogs, entities.CallLog{CalledAt: day.AddDate(0, 0, i)})
		}

		got := BuildTimeline(lead)
		if len(got) != 7 {
			t.Fatalf("expected 7 entries, got %d", len(got))
		}
		for i := 1; i < len(got); i++ {
			if got[i].Date.After(got[i-1].Date) {
				t.Fatalf("not sorted descending at %d", i)
			}
		}
	})

	t.Run("empty lead yields empty timeline", func(t *testing.T) {
		if got := BuildTimeline(entities.Lead{ID: "1"}); len(got) != 0 {
			t.Fatalf("expected empty timeline, got %d entries", len(got))
		}
	})

	t.Run("no hidden mutation of input", func(t *testing.T) {
		lead := entities.Lead{
			ID:         "1",
			SiteVisits: []entities.SiteVisit{projectVisit("A", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))},
			CallLogs:   []entities.CallLog{{CalledAt: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)}},
		}
		before, _ := json.Marshal(lead)
		first := BuildTimeline(lead)
		second := BuildTimeline(lead)
		after, _ := json.Marshal(lead)

		if string(before) != string(after) {
			t.Fatalf("input mutated")
		}
		if !reflect.DeepEqual(first, second) {
			t.Fatalf("timeline not idempotent")
		}
	})
}

func TestGroupVisitsAcrossLeads(t *testing.T) {
	day := time.Date(2024, 4, 1, 11, 0, 0, 0, time.UTC)

	t.Run("accumulates visits across phone siblings", func(t *testing.T) {
		primary := entities.Lead{
			ID: "1", Phone: "555",
			SiteVisits: []entities.SiteVisit{projectVisit("Lakeview", day)},
		}
		sibling := entities.Lead{
			ID: "7", Phone: "555",
			SiteVisits: []entities.SiteVisit{
				projectVisit("Lakeview", day.AddDate(0, 0, 3)),
				propertyVisit("Unit 4B", day.AddDate(0, 0, 5)),
			},
		}

		groups := GroupVisitsAcrossLeads(primary, []entities.Lead{sibling})
		if len(groups) != 2 {
			t.Fatalf("expected 2 groups, got %d", len(groups))
		}
		if groups[0].DisplayProject != "Lakeview" || len(groups[0].Visits) != 2 {
			t.Fatalf("unexpected Lakeview group: %+v", groups[0])
		}
		if groups[0].Lead.ID != "1" {
			t.Fatalf("representative lead should be first contributor, got %s", groups[0].Lead.ID)
		}
		if groups[1].DisplayProject != "Unit 4B" || groups[1].Lead.ID != "7" {
			t.Fatalf("unexpected Unit 4B group: %+v", groups[1])
		}
	})

	t.Run("no visits anywhere yields empty grouping", func(t *testing.T) {
		groups := GroupVisitsAcrossLeads(entities.Lead{ID: "1"}, []entities.Lead{{ID: "2"}})
		if len(groups) != 0 {
			t.Fatalf("expected empty grouping, got %d", len(groups))
		}
	})
}
