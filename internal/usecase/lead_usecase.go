package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/kavyp12/rama-vista-hub-sub001/internal/domain/entities"
	"github.com/kavyp12/rama-vista-hub-sub001/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrLeadNotFound       = errors.New("lead not found")
	ErrInvalidLeadID      = errors.New("invalid lead id")
	ErrInvalidLeadInput   = errors.New("invalid lead input")
	ErrInvalidStage       = errors.New("invalid stage")
	ErrInvalidTemperature = errors.New("invalid temperature")
)

// LeadFilter narrows List results. Zero-valued fields match everything.
type LeadFilter struct {
	Stage       entities.LeadStage
	Temperature entities.Temperature
	AssignedTo  string
}

// LeadDetail is the aggregate behind the lead detail dialog: the primary
// lead, its phone-matched siblings, and either per-project visit groups
// or (when the person has no groupable visits) the flat timeline.
type LeadDetail struct {
	Lead          entities.Lead   `json:"lead"`
	RelatedLeads  []entities.Lead `json:"related_leads,omitempty"`
	ProjectGroups []ProjectGroup  `json:"project_groups,omitempty"`
	Timeline      []TimelineEntry `json:"timeline,omitempty"`
}

// ILeadUseCase exposes lead operations, including the pipeline board and
// the detail/timeline aggregates built on the grouping core.

type ILeadUseCase interface {
	Create(ctx context.Context, l entities.Lead) (entities.Lead, error)
	GetByID(ctx context.Context, id string) (entities.Lead, error)
	List(ctx context.Context, filter LeadFilter) ([]entities.Lead, error)
	Update(ctx context.Context, l entities.Lead) (entities.Lead, error)
	Delete(ctx context.Context, id string) error
	Timeline(ctx context.Context, id string) ([]TimelineEntry, error)
	Detail(ctx context.Context, id string) (LeadDetail, error)
	Pipeline(ctx context.Context) ([]StageColumn, error)
}

type LeadUseCase struct {
	repo         interfaces.ILeadRepository
	visitRepo    interfaces.ISiteVisitRepository
	callRepo     interfaces.ICallLogRepository
	dealRepo     interfaces.IDealRepository
	activityRepo interfaces.IActivityLogRepository
}

var _ ILeadUseCase = (*LeadUseCase)(nil)

func NewLeadUseCase(
	repo interfaces.ILeadRepository,
	visitRepo interfaces.ISiteVisitRepository,
	callRepo interfaces.ICallLogRepository,
	dealRepo interfaces.IDealRepository,
	activityRepo interfaces.IActivityLogRepository,
) *LeadUseCase {
	return &LeadUseCase{
		repo:         repo,
		visitRepo:    visitRepo,
		callRepo:     callRepo,
		dealRepo:     dealRepo,
		activityRepo: activityRepo,
	}
}

func (u *LeadUseCase) Create(ctx context.Context, l entities.Lead) (entities.Lead, error) {
	l.Name = strings.TrimSpace(l.Name)
	l.Phone = strings.TrimSpace(l.Phone)
	if l.Name == "" || l.Phone == "" {
		return entities.Lead{}, ErrInvalidLeadInput
	}
	if l.Stage == "" {
		l.Stage = entities.LeadStageNew
	}
	if !entities.ValidStage(l.Stage) {
		return entities.Lead{}, ErrInvalidStage
	}
	if l.Temperature == "" {
		l.Temperature = entities.TemperatureWarm
	}
	if !entities.ValidTemperature(l.Temperature) {
		return entities.Lead{}, ErrInvalidTemperature
	}

	now := time.Now().UTC()
	l.ID = uuid.NewString()
	l.CreatedAt = now
	l.UpdatedAt = now
	l.SiteVisits = nil
	l.CallLogs = nil
	l.Deals = nil

	created, err := u.repo.Create(ctx, l)
	if err != nil {
		return entities.Lead{}, err
	}
	u.recordActivity(ctx, created, "created", "lead created from source "+created.Source)
	return created, nil
}

func (u *LeadUseCase) GetByID(ctx context.Context, id string) (entities.Lead, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Lead{}, ErrInvalidLeadID
	}

	l, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Lead{}, err
	}
	if l.ID == "" {
		return entities.Lead{}, ErrLeadNotFound
	}
	return u.hydrate(ctx, l)
}

func (u *LeadUseCase) List(ctx context.Context, filter LeadFilter) ([]entities.Lead, error) {
	leads, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]entities.Lead, 0, len(leads))
	for _, l := range leads {
		if filter.Stage != "" && l.Stage != filter.Stage {
			continue
		}
		if filter.Temperature != "" && l.Temperature != filter.Temperature {
			continue
		}
		if filter.AssignedTo != "" && l.AssignedTo != filter.AssignedTo {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}

func (u *LeadUseCase) Update(ctx context.Context, l entities.Lead) (entities.Lead, error) {
	l.ID = strings.TrimSpace(l.ID)
	if l.ID == "" {
		return entities.Lead{}, ErrInvalidLeadID
	}
	l.Name = strings.TrimSpace(l.Name)
	l.Phone = strings.TrimSpace(l.Phone)
	if l.Name == "" || l.Phone == "" {
		return entities.Lead{}, ErrInvalidLeadInput
	}
	if !entities.ValidStage(l.Stage) {
		return entities.Lead{}, ErrInvalidStage
	}
	if !entities.ValidTemperature(l.Temperature) {
		return entities.Lead{}, ErrInvalidTemperature
	}

	current, err := u.repo.GetByID(ctx, l.ID)
	if err != nil {
		return entities.Lead{}, err
	}
	if current.ID == "" {
		return entities.Lead{}, ErrLeadNotFound
	}

	l.CreatedAt = current.CreatedAt
	l.UpdatedAt = time.Now().UTC()
	l.SiteVisits = nil
	l.CallLogs = nil
	l.Deals = nil

	updated, err := u.repo.Update(ctx, l)
	if err != nil {
		return entities.Lead{}, err
	}
	// The conditional put reports a record deleted between the existence
	// check and the write as a zero item, not an error.
	if updated.ID == "" {
		return entities.Lead{}, ErrLeadNotFound
	}
	if current.Stage != updated.Stage {
		u.recordActivity(ctx, updated, "stage_changed", string(current.Stage)+" -> "+string(updated.Stage))
	}
	return updated, nil
}

func (u *LeadUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidLeadID
	}

	l, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if l.ID == "" {
		return ErrLeadNotFound
	}
	return u.repo.Delete(ctx, id)
}

// Timeline returns the lead's unified visit/call feed, most recent first.
func (u *LeadUseCase) Timeline(ctx context.Context, id string) ([]TimelineEntry, error) {
	l, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return BuildTimeline(l), nil
}

// Detail assembles the lead detail view: phone-matched sibling leads are
// fetched so the person's full cross-lead visit history can be regrouped
// by project. When no groupable visits exist the flat timeline is
// returned instead and ProjectGroups stays empty.
func (u *LeadUseCase) Detail(ctx context.Context, id string) (LeadDetail, error) {
	primary, err := u.GetByID(ctx, id)
	if err != nil {
		return LeadDetail{}, err
	}

	var siblings []entities.Lead
	if primary.Phone != "" {
		matches, err := u.repo.ListByPhone(ctx, primary.Phone)
		if err != nil {
			return LeadDetail{}, err
		}
		for _, m := range matches {
			if m.ID == primary.ID {
				continue
			}
			hydrated, err := u.hydrate(ctx, m)
			if err != nil {
				return LeadDetail{}, err
			}
			siblings = append(siblings, hydrated)
		}
	}

	detail := LeadDetail{
		Lead:          primary,
		RelatedLeads:  siblings,
		ProjectGroups: GroupVisitsAcrossLeads(primary, siblings),
	}
	if len(detail.ProjectGroups) == 0 {
		detail.Timeline = BuildTimeline(primary)
	}
	return detail, nil
}

// Pipeline builds the kanban board: leads expanded one row per project
// interest, partitioned into the fixed stage columns.
func (u *LeadUseCase) Pipeline(ctx context.Context) ([]StageColumn, error) {
	leads, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range leads {
		visits, err := u.visitRepo.ListByLeadID(ctx, leads[i].ID)
		if err != nil {
			return nil, err
		}
		leads[i].SiteVisits = visits
	}
	return GroupByStage(ExpandByProject(leads)), nil
}

func (u *LeadUseCase) hydrate(ctx context.Context, l entities.Lead) (entities.Lead, error) {
	visits, err := u.visitRepo.ListByLeadID(ctx, l.ID)
	if err != nil {
		return entities.Lead{}, err
	}
	calls, err := u.callRepo.ListByLeadID(ctx, l.ID)
	if err != nil {
		return entities.Lead{}, err
	}
	deals, err := u.dealRepo.ListByLeadID(ctx, l.ID)
	if err != nil {
		return entities.Lead{}, err
	}
	l.SiteVisits = visits
	l.CallLogs = calls
	l.Deals = deals
	return l, nil
}

// recordActivity is best effort; audit failures never fail the mutation.
func (u *LeadUseCase) recordActivity(ctx context.Context, l entities.Lead, action, details string) {
	if u.activityRepo == nil {
		return
	}
	_, _ = u.activityRepo.Create(ctx, entities.ActivityLog{
		ID:         uuid.NewString(),
		EntityType: "lead",
		EntityID:   l.ID,
		Action:     action,
		LeadID:     l.ID,
		LeadName:   l.Name,
		Details:    details,
		CreatedAt:  time.Now().UTC(),
	})
}
