package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/kavyp12/rama-vista-hub-sub001/internal/domain/entities"
	"github.com/kavyp12/rama-vista-hub-sub001/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var ErrInvalidActivityInput = errors.New("invalid activity input")

// IActivityLogUseCase exposes the audit trail.

type IActivityLogUseCase interface {
	Record(ctx context.Context, a entities.ActivityLog) (entities.ActivityLog, error)
	ListByLead(ctx context.Context, leadID, leadName string) ([]entities.ActivityLog, error)
}

type ActivityLogUseCase struct {
	repo interfaces.IActivityLogRepository
}

var _ IActivityLogUseCase = (*ActivityLogUseCase)(nil)

func NewActivityLogUseCase(repo interfaces.IActivityLogRepository) *ActivityLogUseCase {
	return &ActivityLogUseCase{repo: repo}
}

func (u *ActivityLogUseCase) Record(ctx context.Context, a entities.ActivityLog) (entities.ActivityLog, error) {
	a.EntityType = strings.TrimSpace(a.EntityType)
	a.Action = strings.TrimSpace(a.Action)
	if a.EntityType == "" || a.Action == "" {
		return entities.ActivityLog{}, ErrInvalidActivityInput
	}
	a.ID = uuid.NewString()
	a.CreatedAt = time.Now().UTC()
	return u.repo.Create(ctx, a)
}

// ListByLead returns a lead's audit records, most recent first.
//
// Historical records reference a lead by id or by name, inconsistently.
// Both lookups run and the union is deduplicated by record id; narrowing
// to id-only matching would silently drop name-keyed history.
func (u *ActivityLogUseCase) ListByLead(ctx context.Context, leadID, leadName string) ([]entities.ActivityLog, error) {
	leadID = strings.TrimSpace(leadID)
	leadName = strings.TrimSpace(leadName)
	if leadID == "" && leadName == "" {
		return nil, ErrInvalidActivityInput
	}

	var merged []entities.ActivityLog
	seen := map[string]bool{}

	if leadID != "" {
		byID, err := u.repo.ListByLeadID(ctx, leadID)
		if err != nil {
			return nil, err
		}
		for _, a := range byID {
			if !seen[a.ID] {
				seen[a.ID] = true
				merged = append(merged, a)
			}
		}
	}
	if leadName != "" {
		byName, err := u.repo.ListByLeadName(ctx, leadName)
		if err != nil {
			return nil, err
		}
		for _, a := range byName {
			if !seen[a.ID] {
				seen[a.ID] = true
				merged = append(merged, a)
			}
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].CreatedAt.After(merged[j].CreatedAt)
	})
	return merged, nil
}
