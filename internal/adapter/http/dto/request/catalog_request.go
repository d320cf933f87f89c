package request

import (
	"github.com/shopspring/decimal"

	"micsa_os/internal/domain/entities"
)

type CatalogItemRequest struct {
	SKU              string  `json:"sku" binding:"required"`
	Name             string  `json:"name" binding:"required"`
	Unit             string  `json:"unit" binding:"required,oneof=piece pair"`
	UnitPriceWithTax float64 `json:"unit_price_with_tax" binding:"gte=0"`
}

// CatalogUpsertRequest replaces or inserts catalog rows keyed by SKU.

type CatalogUpsertRequest struct {
	Items []CatalogItemRequest `json:"items" binding:"required,min=1,dive"`
}

func (r CatalogUpsertRequest) ToEntities() []entities.EppCatalogItem {
	items := make([]entities.EppCatalogItem, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, entities.EppCatalogItem{
			SKU:              item.SKU,
			Name:             item.Name,
			Unit:             entities.EppUnit(item.Unit),
			UnitPriceWithTax: decimal.NewFromFloat(item.UnitPriceWithTax),
		})
	}
	return items
}
