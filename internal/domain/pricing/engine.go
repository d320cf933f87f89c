package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"micsa_os/internal/domain/entities"
)

// Division names used in the internal breakdown.
const (
	DivisionLabor              = "labor"
	DivisionWelding            = "welding"
	DivisionWeldingConsumables = "welding_consumables"
	DivisionDC3                = "dc3"
	DivisionMedical            = "medical"
	DivisionEpp                = "epp"
	DivisionCommercialization  = "commercialization"
	DivisionPlatformPM         = "platform_pm"
	DivisionISO                = "iso"
	DivisionLogistics          = "logistics"
)

// weldersPerUnit is the crew size a welding unit covers; partial crews bill
// as a full unit.
const weldersPerUnit = 10

var clientNotices = []string{
	"Prices quoted in MXN; VAT (IVA) shown separately.",
	"Quote validity is counted from the issue date.",
	"EPP is issued per MICSA safety standard; replacements beyond normal wear are billed separately.",
	"Schedule assumes site access is granted on the agreed start date.",
}

// ComputeQuote prices a project description against the EPP catalog and the
// tariff sheet. Pure and deterministic: identical inputs always produce
// identical totals. The request is validated before any arithmetic runs; on
// validation failure no partial totals are produced.
func ComputeQuote(req entities.QuoteRequest, catalog []entities.EppCatalogItem, r Rates) (entities.ClientQuote, entities.InternalBreakdown, entities.Totals, error) {
	if err := Validate(req); err != nil {
		return entities.ClientQuote{}, entities.InternalBreakdown{}, entities.Totals{}, err
	}

	bySKU := make(map[string]entities.EppCatalogItem, len(catalog))
	for _, item := range catalog {
		bySKU[item.SKU] = item
	}

	months := req.DurationMonths
	people := decimal.NewFromInt(int64(req.TotalPeople()))

	var divisions []entities.DivisionLine
	addDivision := func(name, detail string, cost, billed decimal.Decimal) {
		divisions = append(divisions, entities.DivisionLine{
			Division: name,
			Detail:   detail,
			Cost:     round2(cost),
			Billed:   round2(billed),
		})
	}

	// Labor is the one division that is always computed; it carries no markup.
	laborCost := r.LaborWeeklyRate.Mul(r.WeeksPerMonth).Mul(months).Mul(people)
	addDivision(DivisionLabor,
		fmt.Sprintf("%s people x %s weeks/month x %s months", people, r.WeeksPerMonth, months),
		laborCost, laborCost)

	if req.WeldersCount > 0 {
		units := int64((req.WeldersCount + weldersPerUnit - 1) / weldersPerUnit)
		unitCount := decimal.NewFromInt(units)
		addDivision(DivisionWelding,
			fmt.Sprintf("%d unit(s) for %d welders", units, req.WeldersCount),
			unitCount.Mul(r.WeldingUnitMonthlyCost).Mul(months),
			unitCount.Mul(r.WeldingUnitMonthlyPrice).Mul(months))

		welders := decimal.NewFromInt(int64(req.WeldersCount))
		consumables := welders.Mul(r.WeldingConsumablesPerWelderMonth).Mul(months)
		addDivision(DivisionWeldingConsumables, "pass-through per welder-month", consumables, consumables)
	}

	if req.DC3PeopleCount > 0 || req.DC3PackageCount > 0 {
		dc3People := decimal.NewFromInt(int64(req.DC3PeopleCount))
		dc3Packages := decimal.NewFromInt(int64(req.DC3PackageCount))
		three := decimal.NewFromInt(3)
		addDivision(DivisionDC3,
			fmt.Sprintf("%d individual, %d package(s) of 3", req.DC3PeopleCount, req.DC3PackageCount),
			dc3People.Mul(r.DC3UnitCost).Add(dc3Packages.Mul(r.DC3UnitCost).Mul(three)),
			dc3People.Mul(r.DC3UnitSellPrice).Add(dc3Packages.Mul(r.DC3PackagePrice)))
	}

	if req.Medical.Enabled {
		addDivision(DivisionMedical,
			fmt.Sprintf("exams for %s people", people),
			people.Mul(r.MedicalExamCost),
			people.Mul(r.MedicalExamSellPrice))
	}

	var eppLines []entities.EppLine
	if req.Epp.Enabled {
		var eppCost decimal.Decimal
		eppLines, eppCost = estimateEpp(req.TotalPeople(), months, bySKU, r)
		eppBilled := eppCost.Mul(decimal.NewFromInt(1).Add(r.EppMarkupPct))
		addDivision(DivisionEpp,
			fmt.Sprintf("catalog-driven estimate, %d line(s)", len(eppLines)),
			eppCost, eppBilled)
	}

	if req.Commercialization.Enabled && len(req.Commercialization.Items) > 0 {
		cost := decimal.Zero
		billed := decimal.Zero
		for _, item := range req.Commercialization.Items {
			qty := decimal.NewFromInt(int64(item.Qty))
			lineCost := round2(item.VendorCost.Mul(qty))

			margin := r.CommercializationDefaultMarginPct
			if item.MarginPct != nil {
				margin = *item.MarginPct
			}
			lineBilled := round2(lineCost.Mul(decimal.NewFromInt(1).Add(margin)))

			cost = cost.Add(lineCost)
			billed = billed.Add(lineBilled)
		}
		addDivision(DivisionCommercialization,
			fmt.Sprintf("%d resale line(s)", len(req.Commercialization.Items)),
			cost, billed)
	}

	if req.PlatformPM.Enabled {
		fee := r.PlatformPMFeePerPersonMonth.Mul(people).Mul(months)
		addDivision(DivisionPlatformPM, "platform PM fee per person-month", fee, fee)
	}

	if req.ISO.Enabled {
		fee := r.ISOFeePerProjectMonth.Mul(months)
		addDivision(DivisionISO, "ISO compliance fee per project-month", fee, fee)
	}

	if req.Logistics.Enabled {
		l := req.Logistics
		travelers := decimal.NewFromInt(int64(l.TravelPeopleCount))
		rooms := decimal.NewFromInt(int64((l.TravelPeopleCount + l.PeoplePerRoom - 1) / l.PeoplePerRoom))
		cost := rooms.Mul(l.HotelPerNight).Mul(decimal.NewFromInt(int64(l.HotelNights))).
			Add(travelers.Mul(l.PerDiemPerDay).Mul(decimal.NewFromInt(int64(l.PerDiemDays)))).
			Add(travelers.Mul(l.RoundTripTravelPerPerson))
		addDivision(DivisionLogistics,
			fmt.Sprintf("%d traveler(s), %s room(s)", l.TravelPeopleCount, rooms),
			cost, cost)
	}

	directRealCost := decimal.Zero
	pricingBase := decimal.Zero
	for _, d := range divisions {
		directRealCost = directRealCost.Add(d.Cost)
		pricingBase = pricingBase.Add(d.Billed)
	}
	directRealCost = round2(directRealCost)
	pricingBase = round2(pricingBase)

	managementFee := round2(pricingBase.Mul(r.ManagementFeePct))
	subtotal := round2(pricingBase.Add(managementFee))
	tax := round2(subtotal.Mul(r.TaxRate))
	total := round2(subtotal.Add(tax))

	grossProfit := round2(subtotal.Sub(directRealCost))
	marginPct := decimal.Zero
	if !subtotal.IsZero() {
		marginPct = round2(grossProfit.Div(subtotal).Mul(decimal.NewFromInt(100)))
	}

	breakdown := entities.InternalBreakdown{
		Divisions:      divisions,
		EppLines:       eppLines,
		DirectRealCost: directRealCost,
		PricingBase:    pricingBase,
		ManagementFee:  managementFee,
		GrossProfit:    grossProfit,
		MarginPct:      marginPct,
		RiskFlags:      riskFlags(req, r),
	}

	client := entities.ClientQuote{
		ClientName:     req.ClientName,
		ProjectName:    req.ProjectName,
		Location:       req.Location,
		DurationMonths: req.DurationMonths,
		PaymentTerms:   req.PaymentTerms,
		Subtotal:       subtotal,
		Tax:            tax,
		Total:          total,
		Currency:       r.Currency,
		ValidityDays:   r.QuoteValidityDays,
		Notes:          clientNotices,
		Assumptions:    req.Assumptions,
		Exclusions:     req.Exclusions,
	}

	totals := entities.Totals{Subtotal: subtotal, Tax: tax, Total: total}
	return client, breakdown, totals, nil
}
