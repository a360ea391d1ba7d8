package repository

import (
	"context"
	"errors"
	"time"

	"github.com/kavyp12/rama-vista-hub-sub001/internal/domain/entities"
	"github.com/kavyp12/rama-vista-hub-sub001/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultDealsTableName = "deals"
	dealsLeadIDIndex      = "lead_id-index"
)

type dealItem struct {
	ID         string `dynamodbav:"id"`
	LeadID     string `dynamodbav:"lead_id"`
	PropertyID string `dynamodbav:"property_id,omitempty"`
	Value      string `dynamodbav:"value"`
	Stage      string `dynamodbav:"stage"`
	CreatedAt  string `dynamodbav:"created_at"`
	UpdatedAt  string `dynamodbav:"updated_at"`
}

// DealDynamoRepository persists Deal entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: lead_id-index (PK: lead_id)

type DealDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDealRepository = (*DealDynamoRepository)(nil)

func NewDealDynamoRepository(ddb *dynamodb.Client) *DealDynamoRepository {
	return &DealDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DEALS_TABLE", defaultDealsTableName),
	}
}

func (r *DealDynamoRepository) Create(ctx context.Context, d entities.Deal) (entities.Deal, error) {
	av, err := attributevalue.MarshalMap(toDealItem(d))
	if err != nil {
		return entities.Deal{}, err
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
		return entities.Deal{}, err
	}
	return d, nil
}

func (r *DealDynamoRepository) GetByID(ctx context.Context, id string) (entities.Deal, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Deal{}, err
	}
	if len(out.Item) == 0 {
		return entities.Deal{}, nil
	}

	var it dealItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Deal{}, err
	}
	return fromDealItem(it), nil
}

func (r *DealDynamoRepository) ListByLeadID(ctx context.Context, leadID string) ([]entities.Deal, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(dealsLeadIDIndex),
		KeyConditionExpression: aws.String("lead_id = :lid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":lid": &types.AttributeValueMemberS{Value: leadID},
		},
	})
	if err != nil {
		return nil, err
	}

	deals := make([]entities.Deal, 0, len(out.Items))
	for _, raw := range out.Items {
		var it dealItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		deals = append(deals, fromDealItem(it))
	}
	return deals, nil
}

func (r *DealDynamoRepository) List(ctx context.Context) ([]entities.Deal, error) {
	var deals []entities.Deal
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []dealItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			deals = append(deals, fromDealItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return deals, nil
}

func (r *DealDynamoRepository) UpdateStage(ctx context.Context, id string, stage entities.DealStage) (entities.Deal, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #stage = :stage, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":stage":      &types.AttributeValueMemberS{Value: string(stage)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#stage":      "stage",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Deal{}, nil
		}
		return entities.Deal{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Deal{}, nil
	}

	var it dealItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Deal{}, err
	}
	return fromDealItem(it), nil
}

func toDealItem(d entities.Deal) dealItem {
	return dealItem{
		ID:         d.ID,
		LeadID:     d.LeadID,
		PropertyID: d.PropertyID,
		Value:      floatToString(d.Value),
		Stage:      string(d.Stage),
		CreatedAt:  d.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:  d.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromDealItem(it dealItem) entities.Deal {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Deal{
		ID:         it.ID,
		LeadID:     it.LeadID,
		PropertyID: it.PropertyID,
		Value:      stringToFloat(it.Value),
		Stage:      entities.DealStage(it.Stage),
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
	}
}
