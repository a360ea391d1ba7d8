package interfaces

import (
	"context"

	"github.com/kavyp12/rama-vista-hub-sub001/internal/domain/entities"
)

// IDealRepository abstracts DynamoDB persistence for Deal.

type IDealRepository interface {
	Create(ctx context.Context, d entities.Deal) (entities.Deal, error)
	GetByID(ctx context.Context, id string) (entities.Deal, error)
	ListByLeadID(ctx context.Context, leadID string) ([]entities.Deal, error)
	List(ctx context.Context) ([]entities.Deal, error)
	UpdateStage(ctx context.Context, id string, stage entities.DealStage) (entities.Deal, error)
}
