package request

import (
	"testing"

	"github.com/shopspring/decimal"

	"micsa_os/internal/domain/entities"
)

func TestCatalogUpsertRequest_ToEntities(t *testing.T) {
	r := CatalogUpsertRequest{
		Items: []CatalogItemRequest{
			{SKU: "EPP-CASCO", Name: "Casco", Unit: "piece", UnitPriceWithTax: 180},
			{SKU: "EPP-BOTAS", Name: "Botas", Unit: "pair", UnitPriceWithTax: 650.75},
		},
	}

	items := r.ToEntities()
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].SKU != "EPP-CASCO" || items[0].Unit != entities.EppUnitPiece {
		t.Fatalf("unexpected first item: %+v", items[0])
	}
	if items[1].Unit != entities.EppUnitPair || !items[1].UnitPriceWithTax.Equal(decimal.NewFromFloat(650.75)) {
		t.Fatalf("unexpected second item: %+v", items[1])
	}
}
