package response

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"micsa_os/internal/domain/entities"
)

func TestFromQuote(t *testing.T) {
	now := time.Now().UTC()
	q := entities.Quote{
		ID:        "q-1",
		CreatedAt: now,
		Status:    entities.QuoteStatusDraft,
		Client:    entities.ClientQuote{ClientName: "Acme Industrial", Total: decimal.NewFromInt(150075)},
		Breakdown: entities.InternalBreakdown{GrossProfit: decimal.NewFromInt(20375)},
		Totals:    entities.Totals{Total: decimal.NewFromInt(150075)},
	}

	res := FromQuote(q)
	if res.ID != "q-1" || res.QuoteID != "q-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.Status != "DRAFT" || !res.CreatedAt.Equal(now) {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if !res.Breakdown.GrossProfit.Equal(decimal.NewFromInt(20375)) {
		t.Fatalf("breakdown not carried: %+v", res.Breakdown)
	}
}

func TestFromQuoteSummary(t *testing.T) {
	q := entities.Quote{
		ID:     "q-1",
		Status: entities.QuoteStatusDraft,
		Client: entities.ClientQuote{ClientName: "Acme Industrial", ProjectName: "Planta Norte"},
		Totals: entities.Totals{Total: decimal.NewFromInt(150075)},
	}

	res := FromQuoteSummary(q)
	if res.ID != "q-1" || res.ClientName != "Acme Industrial" || res.ProjectName != "Planta Norte" {
		t.Fatalf("unexpected summary: %+v", res)
	}
	if res.Total != "150075" || res.Status != "DRAFT" {
		t.Fatalf("unexpected summary fields: %+v", res)
	}
}
