package interfaces

import (
	"context"

	"github.com/kavyp12/rama-vista-hub-sub001/internal/domain/entities"
)

// ICallLogRepository abstracts DynamoDB persistence for CallLog.

type ICallLogRepository interface {
	Create(ctx context.Context, c entities.CallLog) (entities.CallLog, error)
	ListByLeadID(ctx context.Context, leadID string) ([]entities.CallLog, error)
	ListByAgentID(ctx context.Context, agentID string) ([]entities.CallLog, error)
}
