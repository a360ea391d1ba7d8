package repository

import (
	"context"
	"time"

	"github.com/kavyp12/rama-vista-hub-sub001/internal/domain/entities"
	"github.com/kavyp12/rama-vista-hub-sub001/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultCallLogsTableName = "call_logs"
	callLogsLeadIDIndex      = "lead_id-index"
	callLogsAgentIDIndex     = "agent_id-index"
)

type callLogItem struct {
	ID           string `dynamodbav:"id"`
	LeadID       string `dynamodbav:"lead_id"`
	AgentID      string `dynamodbav:"agent_id"`
	Status       string `dynamodbav:"status"`
	CalledAt     string `dynamodbav:"called_at"`
	DurationSecs int    `dynamodbav:"duration_secs,omitempty"`
	Notes        string `dynamodbav:"notes,omitempty"`
	CreatedAt    string `dynamodbav:"created_at"`
}

// CallLogDynamoRepository persists CallLog entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: lead_id-index (PK: lead_id)
//   - GSI: agent_id-index (PK: agent_id)

type CallLogDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICallLogRepository = (*CallLogDynamoRepository)(nil)

func NewCallLogDynamoRepository(ddb *dynamodb.Client) *CallLogDynamoRepository {
	return &CallLogDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CALL_LOGS_TABLE", defaultCallLogsTableName),
	}
}

func (r *CallLogDynamoRepository) Create(ctx context.Context, c entities.CallLog) (entities.CallLog, error) {
	av, err := attributevalue.MarshalMap(toCallLogItem(c))
	if err != nil {
		return entities.CallLog{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.CallLog{}, err
	}
	return c, nil
}

func (r *CallLogDynamoRepository) ListByLeadID(ctx context.Context, leadID string) ([]entities.CallLog, error) {
	return r.queryIndex(ctx, callLogsLeadIDIndex, "lead_id", leadID)
}

func (r *CallLogDynamoRepository) ListByAgentID(ctx context.Context, agentID string) ([]entities.CallLog, error) {
	return r.queryIndex(ctx, callLogsAgentIDIndex, "agent_id", agentID)
}

func (r *CallLogDynamoRepository) queryIndex(ctx context.Context, index, attr, value string) ([]entities.CallLog, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String("#attr = :val"),
		ExpressionAttributeNames: map[string]string{
			"#attr": attr,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":val": &types.AttributeValueMemberS{Value: value},
		},
	})
	if err != nil {
		return nil, err
	}

	calls := make([]entities.CallLog, 0, len(out.Items))
	for _, raw := range out.Items {
		var it callLogItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		calls = append(calls, fromCallLogItem(it))
	}
	return calls, nil
}

func toCallLogItem(c entities.CallLog) callLogItem {
	return callLogItem{
		ID:           c.ID,
		LeadID:       c.LeadID,
		AgentID:      c.AgentID,
		Status:       string(c.Status),
		CalledAt:     c.CalledAt.UTC().Format(time.RFC3339Nano),
		DurationSecs: c.DurationSecs,
		Notes:        c.Notes,
		CreatedAt:    c.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromCallLogItem(it callLogItem) entities.CallLog {
	calledAt, _ := time.Parse(time.RFC3339Nano, it.CalledAt)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.CallLog{
		ID:           it.ID,
		LeadID:       it.LeadID,
		AgentID:      it.AgentID,
		Status:       entities.CallStatus(it.Status),
		CalledAt:     calledAt,
		DurationSecs: it.DurationSecs,
		Notes:        it.Notes,
		CreatedAt:    createdAt,
	}
}
