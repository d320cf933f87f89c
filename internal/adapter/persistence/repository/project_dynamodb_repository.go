package repository

import (
	"context"
	"errors"
	"time"

	"micsa_os/internal/domain/entities"
	"micsa_os/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultProjectsTableName = "projects"

type projectItem struct {
	ID                string `dynamodbav:"id"`
	CreatedAt         string `dynamodbav:"created_at"`
	QuoteID           string `dynamodbav:"quote_id"`
	Name              string `dynamodbav:"name"`
	ClientName        string `dynamodbav:"client_name"`
	Location          string `dynamodbav:"location,omitempty"`
	Status            string `dynamodbav:"status"`
	ClosedAt          string `dynamodbav:"closed_at,omitempty"`
	PendingSignatures int    `dynamodbav:"pending_signatures"`
}

// ProjectDynamoRepository persists Project entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The pending_signatures attribute is the closure gate: the signature
// repository adjusts it inside TransactWriteItems and Close commits only
// when it reads zero, all in conditional writes on this one row.

type ProjectDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProjectRepository = (*ProjectDynamoRepository)(nil)

func NewProjectDynamoRepository(ddb *dynamodb.Client) *ProjectDynamoRepository {
	return &ProjectDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROJECTS_TABLE", defaultProjectsTableName),
	}
}

func (r *ProjectDynamoRepository) Create(ctx context.Context, p entities.Project) (entities.Project, error) {
	av, err := attributevalue.MarshalMap(toProjectItem(p))
	if err != nil {
		return entities.Project{}, err
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
		return entities.Project{}, err
	}
	return p, nil
}

func (r *ProjectDynamoRepository) GetByID(ctx context.Context, id string) (entities.Project, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Project{}, err
	}
	if len(out.Item) == 0 {
		return entities.Project{}, nil
	}

	var it projectItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Project{}, err
	}
	return fromProjectItem(it), nil
}

func (r *ProjectDynamoRepository) List(ctx context.Context) ([]entities.Project, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	projects := make([]entities.Project, 0, len(out.Items))
	for _, raw := range out.Items {
		var it projectItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		projects = append(projects, fromProjectItem(it))
	}
	return projects, nil
}

// Close commits ACTIVE -> CLOSED in one conditional update: the row must
// still be ACTIVE with zero pending signatures. A refused condition returns
// a zero-value entity and nil error; the usecase re-reads to explain why.
func (r *ProjectDynamoRepository) Close(ctx context.Context, id string, closedAt time.Time) (entities.Project, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :active AND #pending = :zero"),
		UpdateExpression:    aws.String("SET #status = :closed, #closed_at = :closed_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":        "id",
			"#status":    "status",
			"#pending":   "pending_signatures",
			"#closed_at": "closed_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":active":    &types.AttributeValueMemberS{Value: string(entities.ProjectStatusActive)},
			":closed":    &types.AttributeValueMemberS{Value: string(entities.ProjectStatusClosed)},
			":zero":      &types.AttributeValueMemberN{Value: "0"},
			":closed_at": &types.AttributeValueMemberS{Value: closedAt.UTC().Format(time.RFC3339Nano)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Project{}, nil
		}
		return entities.Project{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Project{}, nil
	}

	var it projectItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Project{}, err
	}
	return fromProjectItem(it), nil
}

func toProjectItem(p entities.Project) projectItem {
	it := projectItem{
		ID:                p.ID,
		CreatedAt:         p.CreatedAt.UTC().Format(time.RFC3339Nano),
		QuoteID:           p.QuoteID,
		Name:              p.Name,
		ClientName:        p.ClientName,
		Location:          p.Location,
		Status:            string(p.Status),
		PendingSignatures: p.PendingSignatures,
	}
	if p.ClosedAt != nil {
		it.ClosedAt = p.ClosedAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromProjectItem(it projectItem) entities.Project {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	p := entities.Project{
		ID:                it.ID,
		CreatedAt:         createdAt,
		QuoteID:           it.QuoteID,
		Name:              it.Name,
		ClientName:        it.ClientName,
		Location:          it.Location,
		Status:            entities.ProjectStatus(it.Status),
		PendingSignatures: it.PendingSignatures,
	}
	if it.ClosedAt != "" {
		closedAt, err := time.Parse(time.RFC3339Nano, it.ClosedAt)
		if err == nil {
			p.ClosedAt = &closedAt
		}
	}
	return p
}
