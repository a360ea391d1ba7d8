package interfaces

import (
	"context"

	"github.com/kavyp12/rama-vista-hub-sub001/internal/domain/entities"
)

// ICampaignRepository abstracts DynamoDB persistence for Campaign.

type ICampaignRepository interface {
	Create(ctx context.Context, c entities.Campaign) (entities.Campaign, error)
	GetByID(ctx context.Context, id string) (entities.Campaign, error)
	List(ctx context.Context) ([]entities.Campaign, error)
	Update(ctx context.Context, c entities.Campaign) (entities.Campaign, error)
	Delete(ctx context.Context, id string) error
}
