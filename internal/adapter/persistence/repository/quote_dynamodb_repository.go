package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"micsa_os/internal/domain/entities"
	"micsa_os/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultQuotesTableName = "quotes"

// quoteItem flattens the list/query columns and keeps the full immutable
// artifact as a JSON payload. Quotes are never updated, so there is no
// field-level update expression to worry about.

type quoteItem struct {
	ID          string `dynamodbav:"id"`
	CreatedAt   string `dynamodbav:"created_at"`
	ClientName  string `dynamodbav:"client_name"`
	ProjectName string `dynamodbav:"project_name"`
	Total       string `dynamodbav:"total"`
	Status      string `dynamodbav:"status"`
	Payload     string `dynamodbav:"payload"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	it, err := toQuoteItem(q)
	if err != nil {
		return entities.Quote{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Quote{}, err
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
		// A retried insert of the same precomputed quote is a no-op: the
		// artifact is already there and must not be recomputed or duplicated.
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return q, nil
		}
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it)
}

func (r *QuoteDynamoRepository) List(ctx context.Context) ([]entities.Quote, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	quotes := make([]entities.Quote, 0, len(out.Items))
	for _, raw := range out.Items {
		var it quoteItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		q, err := fromQuoteItem(it)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, q)
	}
	return quotes, nil
}

func toQuoteItem(q entities.Quote) (quoteItem, error) {
	payload, err := json.Marshal(q)
	if err != nil {
		return quoteItem{}, err
	}
	return quoteItem{
		ID:          q.ID,
		CreatedAt:   q.CreatedAt.UTC().Format(time.RFC3339Nano),
		ClientName:  q.Client.ClientName,
		ProjectName: q.Client.ProjectName,
		Total:       q.Totals.Total.String(),
		Status:      string(q.Status),
		Payload:     string(payload),
	}, nil
}

func fromQuoteItem(it quoteItem) (entities.Quote, error) {
	var q entities.Quote
	if err := json.Unmarshal([]byte(it.Payload), &q); err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}
