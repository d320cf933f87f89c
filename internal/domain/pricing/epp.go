package pricing

import (
	"github.com/shopspring/decimal"

	"micsa_os/internal/domain/entities"
)

// Canonical SKUs the EPP estimator issues against. The catalog is owned by
// the commercial team; the engine only consults it.
const (
	SKUHelmet        = "EPP-CASCO"
	SKUVest          = "EPP-CHALECO"
	SKUChinStrap     = "EPP-BARBIQUEJO"
	SKUFootwear      = "EPP-BOTAS"
	SKUSafetyGlasses = "EPP-LENTES"
	SKUNitrileGloves = "EPP-GUANTES-NITRILO"
	SKUEarplugs      = "EPP-TAPONES"
)

// eppIssueRule describes how one SKU is consumed: once per person, at a
// fixed multiple per person-month, or per person per working day.

type eppIssueRule struct {
	sku            string
	perPerson      int
	perPersonMonth int
	perWorkingDay  int
}

var eppIssueRules = []eppIssueRule{
	{sku: SKUHelmet, perPerson: 1},
	{sku: SKUVest, perPerson: 1},
	{sku: SKUChinStrap, perPerson: 1},
	{sku: SKUFootwear, perPerson: 1},
	{sku: SKUSafetyGlasses, perPersonMonth: 2},
	{sku: SKUNitrileGloves, perPersonMonth: 4},
	{sku: SKUEarplugs, perWorkingDay: 1},
}

// estimateEpp derives EPP quantities for the headcount and duration and
// prices them against the catalog. A SKU missing from the catalog keeps a
// placeholder name and prices as zero; estimation never fails.
func estimateEpp(people int, months decimal.Decimal, catalog map[string]entities.EppCatalogItem, r Rates) ([]entities.EppLine, decimal.Decimal) {
	lines := make([]entities.EppLine, 0, len(eppIssueRules))
	totalCost := decimal.Zero
	headcount := decimal.NewFromInt(int64(people))

	for _, rule := range eppIssueRules {
		var qty decimal.Decimal
		switch {
		case rule.perPerson > 0:
			qty = headcount.Mul(decimal.NewFromInt(int64(rule.perPerson)))
		case rule.perPersonMonth > 0:
			qty = headcount.Mul(decimal.NewFromInt(int64(rule.perPersonMonth))).Mul(months)
		case rule.perWorkingDay > 0:
			qty = headcount.Mul(decimal.NewFromInt(int64(rule.perWorkingDay))).Mul(r.WorkingDaysPerMonth).Mul(months)
		}
		quantity := int(qty.Ceil().IntPart())
		if quantity <= 0 {
			continue
		}

		line := entities.EppLine{SKU: rule.sku, Quantity: quantity}
		if item, ok := catalog[rule.sku]; ok {
			line.Name = item.Name
			line.UnitPrice = item.UnitPriceWithTax
			line.Subtotal = round2(item.UnitPriceWithTax.Mul(decimal.NewFromInt(int64(quantity))))
		} else {
			line.Name = "(not in catalog) " + rule.sku
			line.UnitPrice = decimal.Zero
			line.Subtotal = decimal.Zero
			line.Missing = true
		}
		totalCost = totalCost.Add(line.Subtotal)
		lines = append(lines, line)
	}

	return lines, round2(totalCost)
}
