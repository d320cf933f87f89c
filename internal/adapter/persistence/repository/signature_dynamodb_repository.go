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

const (
	defaultSignaturesTableName = "signature_requests"
	signaturesProjectIDIndex   = "project_id-index"
)

type signatureItem struct {
	ID              string `dynamodbav:"id"`
	CreatedAt       string `dynamodbav:"created_at"`
	ProjectID       string `dynamodbav:"project_id"`
	SignerName      string `dynamodbav:"signer_name"`
	SignerRole      string `dynamodbav:"signer_role"`
	Status          string `dynamodbav:"status"`
	SignedAt        string `dynamodbav:"signed_at,omitempty"`
	SignatureBase64 string `dynamodbav:"signature_base64,omitempty"`
	TokenHash       string `dynamodbav:"token_hash"`
}

// SignatureDynamoRepository persists SignatureRequest entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: project_id-index (PK: project_id)
//
// Writes that change the pending population of a project run as
// TransactWriteItems against this table plus the projects table, so the
// project's pending_signatures counter is never torn with respect to a
// concurrent close.

type SignatureDynamoRepository struct {
	ddb               *dynamodb.Client
	tableName         string
	projectsTableName string
}

var _ interfaces.ISignatureRepository = (*SignatureDynamoRepository)(nil)

func NewSignatureDynamoRepository(ddb *dynamodb.Client) *SignatureDynamoRepository {
	return &SignatureDynamoRepository{
		ddb:               ddb,
		tableName:         getenvDefault("SIGNATURES_TABLE", defaultSignaturesTableName),
		projectsTableName: getenvDefault("PROJECTS_TABLE", defaultProjectsTableName),
	}
}

// CreatePending inserts the request and increments the owning project's
// pending counter in one transaction, asserting the project is still ACTIVE.
// A cancelled transaction reports as a zero-value entity with nil error.
func (r *SignatureDynamoRepository) CreatePending(ctx context.Context, s entities.SignatureRequest) (entities.SignatureRequest, error) {
	av, err := attributevalue.MarshalMap(toSignatureItem(s))
	if err != nil {
		return entities.SignatureRequest{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(r.tableName),
					Item:                av,
					ConditionExpression: aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{
						"#id": "id",
					},
				},
			},
			{
				Update: &types.Update{
					TableName: aws.String(r.projectsTableName),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: s.ProjectID},
					},
					ConditionExpression: aws.String("attribute_exists(#id) AND #status = :active"),
					UpdateExpression:    aws.String("SET #pending = #pending + :one"),
					ExpressionAttributeNames: map[string]string{
						"#id":      "id",
						"#status":  "status",
						"#pending": "pending_signatures",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":active": &types.AttributeValueMemberS{Value: string(entities.ProjectStatusActive)},
						":one":    &types.AttributeValueMemberN{Value: "1"},
					},
				},
			},
		},
	})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			return entities.SignatureRequest{}, nil
		}
		return entities.SignatureRequest{}, err
	}
	return s, nil
}

func (r *SignatureDynamoRepository) GetByID(ctx context.Context, id string) (entities.SignatureRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.SignatureRequest{}, err
	}
	if len(out.Item) == 0 {
		return entities.SignatureRequest{}, nil
	}

	var it signatureItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.SignatureRequest{}, err
	}
	return fromSignatureItem(it), nil
}

func (r *SignatureDynamoRepository) ListByProjectID(ctx context.Context, projectID string) ([]entities.SignatureRequest, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(signaturesProjectIDIndex),
		KeyConditionExpression: aws.String("project_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: projectID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.SignatureRequest, 0, len(out.Items))
	for _, raw := range out.Items {
		var it signatureItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromSignatureItem(it))
	}
	return items, nil
}

// MarkSigned flips the request to SIGNED (condition: still PENDING) and
// decrements the project's pending counter in the same transaction, keeping
// the one-shot signing guarantee even under concurrent presentations of the
// same token. A cancelled transaction reports as a zero-value entity.
func (r *SignatureDynamoRepository) MarkSigned(ctx context.Context, s entities.SignatureRequest, signedAt time.Time, signatureBase64 string) (entities.SignatureRequest, error) {
	signedAtStr := signedAt.UTC().Format(time.RFC3339Nano)

	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Update: &types.Update{
					TableName: aws.String(r.tableName),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: s.ID},
					},
					ConditionExpression: aws.String("attribute_exists(#id) AND #status = :pending"),
					UpdateExpression:    aws.String("SET #status = :signed, #signed_at = :signed_at, #signature = :signature"),
					ExpressionAttributeNames: map[string]string{
						"#id":        "id",
						"#status":    "status",
						"#signed_at": "signed_at",
						"#signature": "signature_base64",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":pending":   &types.AttributeValueMemberS{Value: string(entities.SignatureStatusPending)},
						":signed":    &types.AttributeValueMemberS{Value: string(entities.SignatureStatusSigned)},
						":signed_at": &types.AttributeValueMemberS{Value: signedAtStr},
						":signature": &types.AttributeValueMemberS{Value: signatureBase64},
					},
				},
			},
			{
				Update: &types.Update{
					TableName: aws.String(r.projectsTableName),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: s.ProjectID},
					},
					ConditionExpression: aws.String("attribute_exists(#id) AND #pending >= :one"),
					UpdateExpression:    aws.String("SET #pending = #pending - :one"),
					ExpressionAttributeNames: map[string]string{
						"#id":      "id",
						"#pending": "pending_signatures",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":one": &types.AttributeValueMemberN{Value: "1"},
					},
				},
			},
		},
	})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			return entities.SignatureRequest{}, nil
		}
		return entities.SignatureRequest{}, err
	}

	signed := s
	signed.Status = entities.SignatureStatusSigned
	at := signedAt.UTC()
	signed.SignedAt = &at
	signed.SignatureBase64 = signatureBase64
	return signed, nil
}

func toSignatureItem(s entities.SignatureRequest) signatureItem {
	it := signatureItem{
		ID:              s.ID,
		CreatedAt:       s.CreatedAt.UTC().Format(time.RFC3339Nano),
		ProjectID:       s.ProjectID,
		SignerName:      s.SignerName,
		SignerRole:      s.SignerRole,
		Status:          string(s.Status),
		SignatureBase64: s.SignatureBase64,
		TokenHash:       s.TokenHash,
	}
	if s.SignedAt != nil {
		it.SignedAt = s.SignedAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromSignatureItem(it signatureItem) entities.SignatureRequest {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	s := entities.SignatureRequest{
		ID:              it.ID,
		CreatedAt:       createdAt,
		ProjectID:       it.ProjectID,
		SignerName:      it.SignerName,
		SignerRole:      it.SignerRole,
		Status:          entities.SignatureStatus(it.Status),
		SignatureBase64: it.SignatureBase64,
		TokenHash:       it.TokenHash,
	}
	if it.SignedAt != "" {
		signedAt, err := time.Parse(time.RFC3339Nano, it.SignedAt)
		if err == nil {
			s.SignedAt = &signedAt
		}
	}
	return s
}
