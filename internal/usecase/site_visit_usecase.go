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
	ErrVisitNotFound        = errors.New("site visit not found")
	ErrInvalidVisitID       = errors.New("invalid visit id")
	ErrInvalidVisitInput    = errors.New("invalid visit input")
	ErrInvalidVisitStatus   = errors.New("invalid visit status")
	ErrInvalidVisitRating   = errors.New("invalid visit rating")
	ErrVisitSubjectConflict = errors.New("visit references both project and property")
)

// ISiteVisitUseCase exposes site-visit scheduling and outcome capture.

type ISiteVisitUseCase interface {
	Schedule(ctx context.Context, v entities.SiteVisit) (entities.SiteVisit, error)
	ListByLeadID(ctx context.Context, leadID string) ([]entities.SiteVisit, error)
	UpdateStatus(ctx context.Context, id string, status entities.VisitStatus) (entities.SiteVisit, error)
	Complete(ctx context.Context, id string, rating int, feedback string) (entities.SiteVisit, error)
}

type SiteVisitUseCase struct {
	repo     interfaces.ISiteVisitRepository
	leadRepo interfaces.ILeadRepository
}

var _ ISiteVisitUseCase = (*SiteVisitUseCase)(nil)

func NewSiteVisitUseCase(repo interfaces.ISiteVisitRepository, leadRepo interfaces.ILeadRepository) *SiteVisitUseCase {
	return &SiteVisitUseCase{repo: repo, leadRepo: leadRepo}
}

func (u *SiteVisitUseCase) Schedule(ctx context.Context, v entities.SiteVisit) (entities.SiteVisit, error) {
	v.LeadID = strings.TrimSpace(v.LeadID)
	if v.LeadID == "" || v.ScheduledAt.IsZero() {
		return entities.SiteVisit{}, ErrInvalidVisitInput
	}
	// A visit references at most one subject.
	if v.Project != nil && v.Property != nil {
		return entities.SiteVisit{}, ErrVisitSubjectConflict
	}

	lead, err := u.leadRepo.GetByID(ctx, v.LeadID)
	if err != nil {
		return entities.SiteVisit{}, err
	}
	if lead.ID == "" {
		return entities.SiteVisit{}, ErrLeadNotFound
	}

	now := time.Now().UTC()
	v.ID = uuid.NewString()
	v.Status = entities.VisitStatusScheduled
	v.Rating = 0
	v.Feedback = ""
	v.CreatedAt = now
	v.UpdatedAt = now
	return u.repo.Create(ctx, v)
}

func (u *SiteVisitUseCase) ListByLeadID(ctx context.Context, leadID string) ([]entities.SiteVisit, error) {
	leadID = strings.TrimSpace(leadID)
	if leadID == "" {
		return nil, ErrInvalidLeadID
	}
	return u.repo.ListByLeadID(ctx, leadID)
}

func (u *SiteVisitUseCase) UpdateStatus(ctx context.Context, id string, status entities.VisitStatus) (entities.SiteVisit, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.SiteVisit{}, ErrInvalidVisitID
	}
	if !entities.ValidVisitStatus(status) {
		return entities.SiteVisit{}, ErrInvalidVisitStatus
	}

	v, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.SiteVisit{}, err
	}
	if v.ID == "" {
		return entities.SiteVisit{}, ErrVisitNotFound
	}

	v.Status = status
	v.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, v)
}

// Complete marks the visit completed and captures the outcome.
func (u *SiteVisitUseCase) Complete(ctx context.Context, id string, rating int, feedback string) (entities.SiteVisit, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.SiteVisit{}, ErrInvalidVisitID
	}
	if rating < 1 || rating > 5 {
		return entities.SiteVisit{}, ErrInvalidVisitRating
	}

	v, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.SiteVisit{}, err
	}
	if v.ID == "" {
		return entities.SiteVisit{}, ErrVisitNotFound
	}

	v.Status = entities.VisitStatusCompleted
	v.Rating = rating
	v.Feedback = strings.TrimSpace(feedback)
	v.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, v)
}
