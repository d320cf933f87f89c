package repository

import (
	"context"

	"micsa_os/internal/domain/entities"
	"micsa_os/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultEppCatalogTableName = "epp_catalog"

type catalogItem struct {
	SKU              string `dynamodbav:"sku"`
	Name             string `dynamodbav:"name"`
	Unit             string `dynamodbav:"unit"`
	UnitPriceWithTax string `dynamodbav:"unit_price_with_tax"`
}

// CatalogDynamoRepository persists the EPP reference catalog in DynamoDB.
//
// Table requirements:
//   - PK: sku (string)
//
// Upsert overwrites by SKU; catalog rows are reference data and are never
// deleted by the quoting core.

type CatalogDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICatalogRepository = (*CatalogDynamoRepository)(nil)

func NewCatalogDynamoRepository(ddb *dynamodb.Client) *CatalogDynamoRepository {
	return &CatalogDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("EPP_CATALOG_TABLE", defaultEppCatalogTableName),
	}
}

func (r *CatalogDynamoRepository) Upsert(ctx context.Context, items []entities.EppCatalogItem) (int, error) {
	count := 0
	for _, item := range items {
		av, err := attributevalue.MarshalMap(toCatalogItem(item))
		if err != nil {
			return count, err
		}
		_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
			TableName: aws.String(r.tableName),
			Item:      av,
		})
		if err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

func (r *CatalogDynamoRepository) List(ctx context.Context) ([]entities.EppCatalogItem, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.EppCatalogItem, 0, len(out.Items))
	for _, raw := range out.Items {
		var it catalogItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromCatalogItem(it))
	}
	return items, nil
}

func toCatalogItem(e entities.EppCatalogItem) catalogItem {
	return catalogItem{
		SKU:              e.SKU,
		Name:             e.Name,
		Unit:             string(e.Unit),
		UnitPriceWithTax: e.UnitPriceWithTax.String(),
	}
}

func fromCatalogItem(it catalogItem) entities.EppCatalogItem {
	return entities.EppCatalogItem{
		SKU:              it.SKU,
		Name:             it.Name,
		Unit:             entities.EppUnit(it.Unit),
		UnitPriceWithTax: decimalFromString(it.UnitPriceWithTax),
	}
}
