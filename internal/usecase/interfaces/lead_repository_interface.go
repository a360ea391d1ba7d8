package interfaces

import (
	"context"

	"github.com/kavyp12/rama-vista-hub-sub001/internal/domain/entities"
)

// ILeadRepository abstracts DynamoDB persistence for Lead.
//
// Nested visit/call/deal collections are not stored on the lead item;
// use cases hydrate them from the child repositories.

type ILeadRepository interface {
	Create(ctx context.Context, l entities.Lead) (entities.Lead, error)
	GetByID(ctx context.Context, id string) (entities.Lead, error)
	List(ctx context.Context) ([]entities.Lead, error)
	ListByPhone(ctx context.Context, phone string) ([]entities.Lead, error)
	Update(ctx context.Context, l entities.Lead) (entities.Lead, error)
	Delete(ctx context.Context, id string) error
}
