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
	defaultSiteVisitsTableName = "site_visits"
	siteVisitsLeadIDIndex      = "lead_id-index"
)

type siteVisitItem struct {
	ID          string          `dynamodbav:"id"`
	LeadID      string          `dynamodbav:"lead_id"`
	Project     *subjectRefItem `dynamodbav:"project,omitempty"`
	Property    *subjectRefItem `dynamodbav:"property,omitempty"`
	Status      string          `dynamodbav:"status"`
	ScheduledAt string          `dynamodbav:"scheduled_at"`
	Rating      int             `dynamodbav:"rating,omitempty"`
	Feedback    string          `dynamodbav:"feedback,omitempty"`
	CreatedAt   string          `dynamodbav:"created_at"`
	UpdatedAt   string          `dynamodbav:"updated_at"`
}

// SiteVisitDynamoRepository persists SiteVisit entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: lead_id-index (PK: lead_id)

type SiteVisitDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISiteVisitRepository = (*SiteVisitDynamoRepository)(nil)

func NewSiteVisitDynamoRepository(ddb *dynamodb.Client) *SiteVisitDynamoRepository {
	return &SiteVisitDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SITE_VISITS_TABLE", defaultSiteVisitsTableName),
	}
}

func (r *SiteVisitDynamoRepository) Create(ctx context.Context, v entities.SiteVisit) (entities.SiteVisit, error) {
	av, err := attributevalue.MarshalMap(toSiteVisitItem(v))
	if err != nil {
		return entities.SiteVisit{}, err
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
		return entities.SiteVisit{}, err
	}
	return v, nil
}

func (r *SiteVisitDynamoRepository) GetByID(ctx context.Context, id string) (entities.SiteVisit, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.SiteVisit{}, err
	}
	if len(out.Item) == 0 {
		return entities.SiteVisit{}, nil
	}

	var it siteVisitItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.SiteVisit{}, err
	}
	return fromSiteVisitItem(it), nil
}

func (r *SiteVisitDynamoRepository) ListByLeadID(ctx context.Context, leadID string) ([]entities.SiteVisit, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(siteVisitsLeadIDIndex),
		KeyConditionExpression: aws.String("lead_id = :lid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":lid": &types.AttributeValueMemberS{Value: leadID},
		},
	})
	if err != nil {
		return nil, err
	}

	visits := make([]entities.SiteVisit, 0, len(out.Items))
	for _, raw := range out.Items {
		var it siteVisitItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		visits = append(visits, fromSiteVisitItem(it))
	}
	return visits, nil
}

func (r *SiteVisitDynamoRepository) List(ctx context.Context) ([]entities.SiteVisit, error) {
	var visits []entities.SiteVisit
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []siteVisitItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			visits = append(visits, fromSiteVisitItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return visits, nil
}

func (r *SiteVisitDynamoRepository) Update(ctx context.Context, v entities.SiteVisit) (entities.SiteVisit, error) {
	av, err := attributevalue.MarshalMap(toSiteVisitItem(v))
	if err != nil {
		return entities.SiteVisit{}, err
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
			return entities.SiteVisit{}, nil
		}
		return entities.SiteVisit{}, err
	}
	return v, nil
}

func toSiteVisitItem(v entities.SiteVisit) siteVisitItem {
	return siteVisitItem{
		ID:          v.ID,
		LeadID:      v.LeadID,
		Project:     toSubjectRefItem(v.Project),
		Property:    toSubjectRefItem(v.Property),
		Status:      string(v.Status),
		ScheduledAt: v.ScheduledAt.UTC().Format(time.RFC3339Nano),
		Rating:      v.Rating,
		Feedback:    v.Feedback,
		CreatedAt:   v.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:   v.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromSiteVisitItem(it siteVisitItem) entities.SiteVisit {
	scheduledAt, _ := time.Parse(time.RFC3339Nano, it.ScheduledAt)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.SiteVisit{
		ID:          it.ID,
		LeadID:      it.LeadID,
		Project:     fromSubjectRefItem(it.Project),
		Property:    fromSubjectRefItem(it.Property),
		Status:      entities.VisitStatus(it.Status),
		ScheduledAt: scheduledAt,
		Rating:      it.Rating,
		Feedback:    it.Feedback,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}
