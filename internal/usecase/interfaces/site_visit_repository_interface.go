package interfaces

import (
	"context"

	"github.com/kavyp12/rama-vista-hub-sub001/internal/domain/entities"
)

// ISiteVisitRepository abstracts DynamoDB persistence for SiteVisit.

type ISiteVisitRepository interface {
	Create(ctx context.Context, v entities.SiteVisit) (entities.SiteVisit, error)
	GetByID(ctx context.Context, id string) (entities.SiteVisit, error)
	ListByLeadID(ctx context.Context, leadID string) ([]entities.SiteVisit, error)
	List(ctx context.Context) ([]entities.SiteVisit, error)
	Update(ctx context.Context, v entities.SiteVisit) (entities.SiteVisit, error)
}
