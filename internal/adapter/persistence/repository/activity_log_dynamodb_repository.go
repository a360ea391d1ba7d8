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
	defaultActivityLogsTableName = "activity_logs"
	activityLogsLeadIDIndex      = "lead_id-index"
)

type activityLogItem struct {
	ID         string `dynamodbav:"id"`
	EntityType string `dynamodbav:"entity_type"`
	EntityID   string `dynamodbav:"entity_id,omitempty"`
	Action     string `dynamodbav:"action"`
	LeadID     string `dynamodbav:"lead_id,omitempty"`
	LeadName   string `dynamodbav:"lead_name,omitempty"`
	Details    string `dynamodbav:"details,omitempty"`
	ActorID    string `dynamodbav:"actor_id,omitempty"`
	CreatedAt  string `dynamodbav:"created_at"`
}

// ActivityLogDynamoRepository persists ActivityLog entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: lead_id-index (PK: lead_id)
//
// Name lookups have no index; older records carry only lead_name, so
// ListByLeadName falls back to a filtered scan.

type ActivityLogDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IActivityLogRepository = (*ActivityLogDynamoRepository)(nil)

func NewActivityLogDynamoRepository(ddb *dynamodb.Client) *ActivityLogDynamoRepository {
	return &ActivityLogDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ACTIVITY_LOGS_TABLE", defaultActivityLogsTableName),
	}
}

func (r *ActivityLogDynamoRepository) Create(ctx context.Context, a entities.ActivityLog) (entities.ActivityLog, error) {
	av, err := attributevalue.MarshalMap(toActivityLogItem(a))
	if err != nil {
		return entities.ActivityLog{}, err
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
		return entities.ActivityLog{}, err
	}
	return a, nil
}

func (r *ActivityLogDynamoRepository) ListByLeadID(ctx context.Context, leadID string) ([]entities.ActivityLog, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(activityLogsLeadIDIndex),
		KeyConditionExpression: aws.String("lead_id = :lid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":lid": &types.AttributeValueMemberS{Value: leadID},
		},
	})
	if err != nil {
		return nil, err
	}

	logs := make([]entities.ActivityLog, 0, len(out.Items))
	for _, raw := range out.Items {
		var it activityLogItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		logs = append(logs, fromActivityLogItem(it))
	}
	return logs, nil
}

func (r *ActivityLogDynamoRepository) ListByLeadName(ctx context.Context, leadName string) ([]entities.ActivityLog, error) {
	var logs []entities.ActivityLog
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:        aws.String(r.tableName),
			FilterExpression: aws.String("lead_name = :name"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":name": &types.AttributeValueMemberS{Value: leadName},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []activityLogItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			logs = append(logs, fromActivityLogItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return logs, nil
}

func toActivityLogItem(a entities.ActivityLog) activityLogItem {
	return activityLogItem{
		ID:         a.ID,
		EntityType: a.EntityType,
		EntityID:   a.EntityID,
		Action:     a.Action,
		LeadID:     a.LeadID,
		LeadName:   a.LeadName,
		Details:    a.Details,
		ActorID:    a.ActorID,
		CreatedAt:  a.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromActivityLogItem(it activityLogItem) entities.ActivityLog {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.ActivityLog{
		ID:         it.ID,
		EntityType: it.EntityType,
		EntityID:   it.EntityID,
		Action:     it.Action,
		LeadID:     it.LeadID,
		LeadName:   it.LeadName,
		Details:    it.Details,
		ActorID:    it.ActorID,
		CreatedAt:  createdAt,
	}
}
