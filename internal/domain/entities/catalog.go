package entities

import "github.com/shopspring/decimal"

// EppUnit is the sales unit for a catalog item.

type EppUnit string

const (
	EppUnitPiece EppUnit = "piece"
	EppUnitPair  EppUnit = "pair"
)

// EppCatalogItem is one row of the EPP (personal protective equipment)
// reference catalog consulted by the pricing engine.
//
// Storage model (DynamoDB):
//   - PK: sku
//
// The catalog is reference data: it is mutated only through the explicit
// upsert operation and never touched by quote computation.

type EppCatalogItem struct {
	SKU              string          `json:"sku"`
	Name             string          `json:"name"`
	Unit             EppUnit         `json:"unit"`
	UnitPriceWithTax decimal.Decimal `json:"unit_price_with_tax"`
}
