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
	ErrDealNotFound     = errors.New("deal not found")
	ErrInvalidDealID    = errors.New("invalid deal id")
	ErrInvalidDealValue = errors.New("invalid deal value")
	ErrInvalidDealStage = errors.New("invalid deal stage")
)

// IDealUseCase exposes deal operations. Deal stage is tracked separately
// from the lead funnel stage.

type IDealUseCase interface {
	Create(ctx context.Context, d entities.Deal) (entities.Deal, error)
	ListByLeadID(ctx context.Context, leadID string) ([]entities.Deal, error)
	UpdateStage(ctx context.Context, id string, stage entities.DealStage) (entities.Deal, error)
}

type DealUseCase struct {
	repo     interfaces.IDealRepository
	leadRepo interfaces.ILeadRepository
}

var _ IDealUseCase = (*DealUseCase)(nil)

func NewDealUseCase(repo interfaces.IDealRepository, leadRepo interfaces.ILeadRepository) *DealUseCase {
	return &DealUseCase{repo: repo, leadRepo: leadRepo}
}

func (u *DealUseCase) Create(ctx context.Context, d entities.Deal) (entities.Deal, error) {
	d.LeadID = strings.TrimSpace(d.LeadID)
	if d.LeadID == "" {
		return entities.Deal{}, ErrInvalidLeadID
	}
	if d.Value <= 0 {
		return entities.Deal{}, ErrInvalidDealValue
	}
	if d.Stage == "" {
		d.Stage = entities.DealStageOpen
	}
	if !entities.ValidDealStage(d.Stage) {
		return entities.Deal{}, ErrInvalidDealStage
	}

	lead, err := u.leadRepo.GetByID(ctx, d.LeadID)
	if err != nil {
		return entities.Deal{}, err
	}
	if lead.ID == "" {
		return entities.Deal{}, ErrLeadNotFound
	}

	now := time.Now().UTC()
	d.ID = uuid.NewString()
	d.CreatedAt = now
	d.UpdatedAt = now
	return u.repo.Create(ctx, d)
}

func (u *DealUseCase) ListByLeadID(ctx context.Context, leadID string) ([]entities.Deal, error) {
	leadID = strings.TrimSpace(leadID)
	if leadID == "" {
		return nil, ErrInvalidLeadID
	}
	return u.repo.ListByLeadID(ctx, leadID)
}

func (u *DealUseCase) UpdateStage(ctx context.Context, id string, stage entities.DealStage) (entities.Deal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Deal{}, ErrInvalidDealID
	}
	if !entities.ValidDealStage(stage) {
		return entities.Deal{}, ErrInvalidDealStage
	}

	updated, err := u.repo.UpdateStage(ctx, id, stage)
	if err != nil {
		return entities.Deal{}, err
	}
	if updated.ID == "" {
		return entities.Deal{}, ErrDealNotFound
	}
	return updated, nil
}
