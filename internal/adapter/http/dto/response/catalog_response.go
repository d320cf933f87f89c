package response

import "micsa_os/internal/domain/entities"

type CatalogUpsertResponse struct {
	Count int `json:"count"`
}

type CatalogItemResponse struct {
	SKU              string `json:"sku"`
	Name             string `json:"name"`
	Unit             string `json:"unit"`
	UnitPriceWithTax string `json:"unit_price_with_tax"`
}

func FromCatalogItems(items []entities.EppCatalogItem) []CatalogItemResponse {
	out := make([]CatalogItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, CatalogItemResponse{
			SKU:              item.SKU,
			Name:             item.Name,
			Unit:             string(item.Unit),
			UnitPriceWithTax: item.UnitPriceWithTax.String(),
		})
	}
	return out
}
