package interfaces

import (
	"context"

	"github.com/kavyp12/rama-vista-hub-sub001/internal/domain/entities"
)

// IActivityLogRepository abstracts DynamoDB persistence for ActivityLog.
//
// Lead association is inconsistent in historical data (id or name), so
// both lookups exist; the use case merges them.

type IActivityLogRepository interface {
	Create(ctx context.Context, a entities.ActivityLog) (entities.ActivityLog, error)
	ListByLeadID(ctx context.Context, leadID string) ([]entities.ActivityLog, error)
	ListByLeadName(ctx context.Context, leadName string) ([]entities.ActivityLog, error)
}
