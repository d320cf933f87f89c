package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestRatesFromEnv(t *testing.T) {
	t.Run("defaults without env", func(t *testing.T) {
		r := RatesFromEnv()
		if !r.TaxRate.Equal(decimal.NewFromFloat(0.16)) {
			t.Fatalf("expected default tax rate, got %s", r.TaxRate)
		}
	})

	t.Run("override", func(t *testing.T) {
		t.Setenv("TAX_RATE", "0.08")
		t.Setenv("MANAGEMENT_FEE_PCT", "0.10")

		r := RatesFromEnv()
		if !r.TaxRate.Equal(decimal.NewFromFloat(0.08)) {
			t.Fatalf("expected 0.08, got %s", r.TaxRate)
		}
		if !r.ManagementFeePct.Equal(decimal.NewFromFloat(0.10)) {
			t.Fatalf("expected 0.10, got %s", r.ManagementFeePct)
		}
	})

	t.Run("unparseable or negative values keep defaults", func(t *testing.T) {
		t.Setenv("TAX_RATE", "not-a-number")
		t.Setenv("EPP_MARKUP_PCT", "-0.5")

		r := RatesFromEnv()
		if !r.TaxRate.Equal(decimal.NewFromFloat(0.16)) {
			t.Fatalf("expected default tax rate, got %s", r.TaxRate)
		}
		if !r.EppMarkupPct.Equal(decimal.NewFromFloat(0.20)) {
			t.Fatalf("expected default epp markup, got %s", r.EppMarkupPct)
		}
	})
}

func TestRound2(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"1.005", "1.01"},
		{"1.004", "1"},
		{"-1.005", "-1.01"},
		{"100", "100"},
	}
	for _, tc := range cases {
		in, _ := decimal.NewFromString(tc.in)
		want, _ := decimal.NewFromString(tc.want)
		if got := round2(in); !got.Equal(want) {
			t.Fatalf("round2(%s): expected %s, got %s", tc.in, tc.want, got)
		}
	}
}
