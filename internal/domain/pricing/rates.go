package pricing

import (
	"os"

	"github.com/shopspring/decimal"
)

// Rates bundles every tariff and percentage the engine applies. Values are
// the MICSA commercial defaults; a handful of percentages can be tuned from
// the environment without a redeploy (see RatesFromEnv).

type Rates struct {
	LaborWeeklyRate decimal.Decimal
	WeeksPerMonth   decimal.Decimal

	// Welding crews are billed in units of up to 10 welders.
	WeldingUnitMonthlyCost           decimal.Decimal
	WeldingUnitMonthlyPrice          decimal.Decimal
	WeldingConsumablesPerWelderMonth decimal.Decimal

	DC3UnitCost      decimal.Decimal
	DC3UnitSellPrice decimal.Decimal
	DC3PackagePrice  decimal.Decimal

	MedicalExamCost      decimal.Decimal
	MedicalExamSellPrice decimal.Decimal

	EppMarkupPct        decimal.Decimal
	WorkingDaysPerMonth decimal.Decimal

	CommercializationDefaultMarginPct decimal.Decimal

	PlatformPMFeePerPersonMonth decimal.Decimal
	ISOFeePerProjectMonth       decimal.Decimal

	ManagementFeePct decimal.Decimal
	TaxRate          decimal.Decimal

	HeadcountRiskThreshold int
	LongDurationMonths     decimal.Decimal

	Currency          string
	QuoteValidityDays int
}

// DefaultRates returns the compiled-in MICSA tariff sheet (MXN).
func DefaultRates() Rates {
	return Rates{
		LaborWeeklyRate: decimal.NewFromInt(3500),
		WeeksPerMonth:   decimal.NewFromInt(4),

		WeldingUnitMonthlyCost:           decimal.NewFromInt(15000),
		WeldingUnitMonthlyPrice:          decimal.NewFromInt(18500),
		WeldingConsumablesPerWelderMonth: decimal.NewFromInt(2500),

		DC3UnitCost:      decimal.NewFromInt(650),
		DC3UnitSellPrice: decimal.NewFromInt(950),
		DC3PackagePrice:  decimal.NewFromInt(2600),

		MedicalExamCost:      decimal.NewFromInt(450),
		MedicalExamSellPrice: decimal.NewFromInt(620),

		EppMarkupPct:        decimal.NewFromFloat(0.20),
		WorkingDaysPerMonth: decimal.NewFromInt(24),

		CommercializationDefaultMarginPct: decimal.NewFromFloat(0.25),

		PlatformPMFeePerPersonMonth: decimal.NewFromInt(350),
		ISOFeePerProjectMonth:       decimal.NewFromInt(1200),

		ManagementFeePct: decimal.NewFromFloat(0.15),
		TaxRate:          decimal.NewFromFloat(0.16),

		HeadcountRiskThreshold: 50,
		LongDurationMonths:     decimal.NewFromInt(12),

		Currency:          "MXN",
		QuoteValidityDays: 15,
	}
}

// RatesFromEnv returns DefaultRates with percentage knobs overridden from
// the environment when set:
//
//   - MANAGEMENT_FEE_PCT
//   - TAX_RATE
//   - EPP_MARKUP_PCT
//   - COMMERCIALIZATION_DEFAULT_MARGIN_PCT
//
// Unparseable values are ignored and the default kept.
func RatesFromEnv() Rates {
	r := DefaultRates()
	r.ManagementFeePct = decimalFromEnv("MANAGEMENT_FEE_PCT", r.ManagementFeePct)
	r.TaxRate = decimalFromEnv("TAX_RATE", r.TaxRate)
	r.EppMarkupPct = decimalFromEnv("EPP_MARKUP_PCT", r.EppMarkupPct)
	r.CommercializationDefaultMarginPct = decimalFromEnv("COMMERCIALIZATION_DEFAULT_MARGIN_PCT", r.CommercializationDefaultMarginPct)
	return r
}

func decimalFromEnv(key string, def decimal.Decimal) decimal.Decimal {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := decimal.NewFromString(v)
	if err != nil || d.IsNegative() {
		return def
	}
	return d
}

// round2 rounds a monetary amount to cents, half away from zero. Applied at
// the point each subtotal is computed so rounding drift never compounds
// across divisions.
func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
