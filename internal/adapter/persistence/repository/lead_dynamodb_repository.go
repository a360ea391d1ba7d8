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
	defaultLeadsTableName = "leads"
	leadsPhoneIndex       = "phone-index"
)

type subjectRefItem struct {
	ID   string `dynamodbav:"id,omitempty"`
	Name string `dynamodbav:"name"`
}

type leadItem struct {
	ID          string          `dynamodbav:"id"`
	Name        string          `dynamodbav:"name"`
	Phone       string          `dynamodbav:"phone"`
	Email       string          `dynamodbav:"email,omitempty"`
	Stage       string          `dynamodbav:"stage"`
	Temperature string          `dynamodbav:"temperature"`
	Source      string          `dynamodbav:"source,omitempty"`
	AssignedTo  string          `dynamodbav:"assigned_to,omitempty"`
	BudgetMin   string          `dynamodbav:"budget_min,omitempty"`
	BudgetMax   string          `dynamodbav:"budget_max,omitempty"`
	Project     *subjectRefItem `dynamodbav:"project,omitempty"`
	Property    *subjectRefItem `dynamodbav:"property,omitempty"`
	CreatedAt   string          `dynamodbav:"created_at"`
	UpdatedAt   string          `dynamodbav:"updated_at"`
}

// LeadDynamoRepository persists Lead entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: phone-index (PK: phone)
//
// Nested visit/call/deal collections live in their own tables; the lead
// item carries only the lead's own fields.

type LeadDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ILeadRepository = (*LeadDynamoRepository)(nil)

func NewLeadDynamoRepository(ddb *dynamodb.Client) *LeadDynamoRepository {
	return &LeadDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("LEADS_TABLE", defaultLeadsTableName),
	}
}

func (r *LeadDynamoRepository) Create(ctx context.Context, l entities.Lead) (entities.Lead, error) {
	av, err := attributevalue.MarshalMap(toLeadItem(l))
	if err != nil {
		return entities.Lead{}, err
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
		return entities.Lead{}, err
	}
	return l, nil
}

func (r *LeadDynamoRepository) GetByID(ctx context.Context, id string) (entities.Lead, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Lead{}, err
	}
	if len(out.Item) == 0 {
		return entities.Lead{}, nil
	}

	var it leadItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Lead{}, err
	}
	return fromLeadItem(it), nil
}

// List scans the whole table. Lead books are small (hundreds to low
// thousands of records), so a paginated scan is fine here.
func (r *LeadDynamoRepository) List(ctx context.Context) ([]entities.Lead, error) {
	var leads []entities.Lead
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []leadItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			leads = append(leads, fromLeadItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return leads, nil
}

func (r *LeadDynamoRepository) ListByPhone(ctx context.Context, phone string) ([]entities.Lead, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(leadsPhoneIndex),
		KeyConditionExpression: aws.String("phone = :phone"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":phone": &types.AttributeValueMemberS{Value: phone},
		},
	})
	if err != nil {
		return nil, err
	}

	leads := make([]entities.Lead, 0, len(out.Items))
	for _, raw := range out.Items {
		var it leadItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		leads = append(leads, fromLeadItem(it))
	}
	return leads, nil
}

func (r *LeadDynamoRepository) Update(ctx context.Context, l entities.Lead) (entities.Lead, error) {
	av, err := attributevalue.MarshalMap(toLeadItem(l))
	if err != nil {
		return entities.Lead{}, err
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
			return entities.Lead{}, nil
		}
		return entities.Lead{}, err
	}
	return l, nil
}

func (r *LeadDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toLeadItem(l entities.Lead) leadItem {
	it := leadItem{
		ID:          l.ID,
		Name:        l.Name,
		Phone:       l.Phone,
		Email:       l.Email,
		Stage:       string(l.Stage),
		Temperature: string(l.Temperature),
		Source:      l.Source,
		AssignedTo:  l.AssignedTo,
		CreatedAt:   l.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:   l.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if l.BudgetMin > 0 {
		it.BudgetMin = floatToString(l.BudgetMin)
	}
	if l.BudgetMax > 0 {
		it.BudgetMax = floatToString(l.BudgetMax)
	}
	it.Project = toSubjectRefItem(l.Project)
	it.Property = toSubjectRefItem(l.Property)
	return it
}

func fromLeadItem(it leadItem) entities.Lead {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Lead{
		ID:          it.ID,
		Name:        it.Name,
		Phone:       it.Phone,
		Email:       it.Email,
		Stage:       entities.LeadStage(it.Stage),
		Temperature: entities.Temperature(it.Temperature),
		Source:      it.Source,
		AssignedTo:  it.AssignedTo,
		BudgetMin:   stringToFloat(it.BudgetMin),
		BudgetMax:   stringToFloat(it.BudgetMax),
		Project:     fromSubjectRefItem(it.Project),
		Property:    fromSubjectRefItem(it.Property),
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}

func toSubjectRefItem(ref *entities.SubjectRef) *subjectRefItem {
	if ref == nil {
		return nil
	}
	return &subjectRefItem{ID: ref.ID, Name: ref.Name}
}

func fromSubjectRefItem(it *subjectRefItem) *entities.SubjectRef {
	if it == nil {
		return nil
	}
	return &entities.SubjectRef{ID: it.ID, Name: it.Name}
}
