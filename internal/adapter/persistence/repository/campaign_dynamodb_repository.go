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

const defaultCampaignsTableName = "campaigns"

type campaignItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Channel   string `dynamodbav:"channel"`
	Budget    string `dynamodbav:"budget,omitempty"`
	Status    string `dynamodbav:"status"`
	StartsAt  string `dynamodbav:"starts_at,omitempty"`
	EndsAt    string `dynamodbav:"ends_at,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// CampaignDynamoRepository persists Campaign entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type CampaignDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICampaignRepository = (*CampaignDynamoRepository)(nil)

func NewCampaignDynamoRepository(ddb *dynamodb.Client) *CampaignDynamoRepository {
	return &CampaignDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CAMPAIGNS_TABLE", defaultCampaignsTableName),
	}
}

func (r *CampaignDynamoRepository) Create(ctx context.Context, c entities.Campaign) (entities.Campaign, error) {
	av, err := attributevalue.MarshalMap(toCampaignItem(c))
	if err != nil {
		return entities.Campaign{}, err
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
		return entities.Campaign{}, err
	}
	return c, nil
}

func (r *CampaignDynamoRepository) GetByID(ctx context.Context, id string) (entities.Campaign, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Campaign{}, err
	}
	if len(out.Item) == 0 {
		return entities.Campaign{}, nil
	}

	var it campaignItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Campaign{}, err
	}
	return fromCampaignItem(it), nil
}

func (r *CampaignDynamoRepository) List(ctx context.Context) ([]entities.Campaign, error) {
	var campaigns []entities.Campaign
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []campaignItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			campaigns = append(campaigns, fromCampaignItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return campaigns, nil
}

func (r *CampaignDynamoRepository) Update(ctx context.Context, c entities.Campaign) (entities.Campaign, error) {
	av, err := attributevalue.MarshalMap(toCampaignItem(c))
	if err != nil {
		return entities.Campaign{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Campaign{}, nil
		}
		return entities.Campaign{}, err
	}
	return c, nil
}

func (r *CampaignDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toCampaignItem(c entities.Campaign) campaignItem {
	it := campaignItem{
		ID:        c.ID,
		Name:      c.Name,
		Channel:   c.Channel,
		Budget:    floatToString(c.Budget),
		Status:    string(c.Status),
		CreatedAt: c.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: c.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if !c.StartsAt.IsZero() {
		it.StartsAt = c.StartsAt.UTC().Format(time.RFC3339Nano)
	}
	if !c.EndsAt.IsZero() {
		it.EndsAt = c.EndsAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromCampaignItem(it campaignItem) entities.Campaign {
	startsAt, _ := time.Parse(time.RFC3339Nano, it.StartsAt)
	endsAt, _ := time.Parse(time.RFC3339Nano, it.EndsAt)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Campaign{
		ID:        it.ID,
		Name:      it.Name,
		Channel:   it.Channel,
		Budget:    stringToFloat(it.Budget),
		Status:    entities.CampaignStatus(it.Status),
		StartsAt:  startsAt,
		EndsAt:    endsAt,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}
