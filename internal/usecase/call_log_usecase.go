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
	ErrInvalidCallInput  = errors.New("invalid call input")
	ErrInvalidCallStatus = errors.New("invalid call status")
	ErrInvalidAgentID    = errors.New("invalid agent id")
)

// ICallLogUseCase exposes telecalling log operations.

type ICallLogUseCase interface {
	Log(ctx context.Context, c entities.CallLog) (entities.CallLog, error)
	ListByLeadID(ctx context.Context, leadID string) ([]entities.CallLog, error)
	ListByAgentID(ctx context.Context, agentID string) ([]entities.CallLog, error)
}

type CallLogUseCase struct {
	repo     interfaces.ICallLogRepository
	leadRepo interfaces.ILeadRepository
}

var _ ICallLogUseCase = (*CallLogUseCase)(nil)

func NewCallLogUseCase(repo interfaces.ICallLogRepository, leadRepo interfaces.ILeadRepository) *CallLogUseCase {
	return &CallLogUseCase{repo: repo, leadRepo: leadRepo}
}

func (u *CallLogUseCase) Log(ctx context.Context, c entities.CallLog) (entities.CallLog, error) {
	c.LeadID = strings.TrimSpace(c.LeadID)
	c.AgentID = strings.TrimSpace(c.AgentID)
	if c.LeadID == "" || c.AgentID == "" {
		return entities.CallLog{}, ErrInvalidCallInput
	}
	if !entities.ValidCallStatus(c.Status) {
		return entities.CallLog{}, ErrInvalidCallStatus
	}
	if c.CalledAt.IsZero() {
		c.CalledAt = time.Now().UTC()
	}

	lead, err := u.leadRepo.GetByID(ctx, c.LeadID)
	if err != nil {
		return entities.CallLog{}, err
	}
	if lead.ID == "" {
		return entities.CallLog{}, ErrLeadNotFound
	}

	c.ID = uuid.NewString()
	c.CreatedAt = time.Now().UTC()
	return u.repo.Create(ctx, c)
}

func (u *CallLogUseCase) ListByLeadID(ctx context.Context, leadID string) ([]entities.CallLog, error) {
	leadID = strings.TrimSpace(leadID)
	if leadID == "" {
		return nil, ErrInvalidLeadID
	}
	return u.repo.ListByLeadID(ctx, leadID)
}

func (u *CallLogUseCase) ListByAgentID(ctx context.Context, agentID string) ([]entities.CallLog, error) {
	agentID = strings.TrimSpace(agentID)
	if agentID == "" {
		return nil, ErrInvalidAgentID
	}
	return u.repo.ListByAgentID(ctx, agentID)
}
