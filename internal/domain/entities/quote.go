package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuoteStatus represents the lifecycle of a priced quote.
//
// Domain notes:
//   - Quotes are immutable artifacts: they are never edited or deleted,
//     only superseded by a new computation. DRAFT is terminal.

type QuoteStatus string

const (
	QuoteStatusDraft QuoteStatus = "DRAFT"
)

// ModuleToggle gates an optional pricing division on or off.

type ModuleToggle struct {
	Enabled bool `json:"enabled"`
}

// CommercializationItem is one resale line: a vendor part bought at cost and
// billed with a per-line margin. A nil MarginPct falls back to the configured
// default margin; the margin is capped at 5.0 (500%).

type CommercializationItem struct {
	Description string           `json:"description"`
	Qty         int              `json:"qty"`
	Unit        string           `json:"unit"`
	VendorCost  decimal.Decimal  `json:"vendor_cost"`
	MarginPct   *decimal.Decimal `json:"margin_pct,omitempty"`
}

// Commercialization groups the resale lines of a quote request.

type Commercialization struct {
	Enabled bool                    `json:"enabled"`
	Items   []CommercializationItem `json:"items,omitempty"`
}

// Logistics describes travel, lodging and per-diem inputs. Rooms are shared:
// rooms = ceil(travelers / peoplePerRoom).

type Logistics struct {
	Enabled                 bool            `json:"enabled"`
	TravelPeopleCount       int             `json:"travel_people_count"`
	HotelNights             int             `json:"hotel_nights"`
	PerDiemDays             int             `json:"per_diem_days"`
	RoundTripTravelPerPerson decimal.Decimal `json:"round_trip_travel_per_person"`
	HotelPerNight           decimal.Decimal `json:"hotel_per_night"`
	PeoplePerRoom           int             `json:"people_per_room"`
	PerDiemPerDay           decimal.Decimal `json:"per_diem_per_day"`
}

// QuoteRequest is the structured project description submitted for pricing.
// Immutable once submitted; the stored quote keeps the original request for
// traceability.
//
// Headcount convention: welders are counted separately from PeopleByRole, so
// total headcount = WeldersCount + sum(PeopleByRole).

type QuoteRequest struct {
	ClientName     string          `json:"client_name"`
	ProjectName    string          `json:"project_name"`
	Location       string          `json:"location"`
	DurationMonths decimal.Decimal `json:"duration_months"`
	PaymentTerms   string          `json:"payment_terms"`

	PeopleByRole    map[string]int `json:"people_by_role"`
	WeldersCount    int            `json:"welders_count"`
	DC3PeopleCount  int            `json:"dc3_people_count"`
	DC3PackageCount int            `json:"dc3_package_count"`

	Medical    ModuleToggle      `json:"medical"`
	Epp        ModuleToggle      `json:"epp"`
	PlatformPM ModuleToggle      `json:"platform_pm"`
	ISO        ModuleToggle      `json:"iso"`

	Commercialization Commercialization `json:"commercialization"`
	Logistics         Logistics         `json:"logistics"`

	Assumptions []string `json:"assumptions,omitempty"`
	Exclusions  []string `json:"exclusions,omitempty"`
}

// TotalPeople returns the full project headcount.
func (r QuoteRequest) TotalPeople() int {
	total := r.WeldersCount
	for _, n := range r.PeopleByRole {
		total += n
	}
	return total
}

// DivisionLine is one cost/billed pair of the internal breakdown.
// Cost is what the division really costs; Billed is what the customer is
// charged for it before the management fee.

type DivisionLine struct {
	Division string          `json:"division"`
	Detail   string          `json:"detail,omitempty"`
	Cost     decimal.Decimal `json:"cost"`
	Billed   decimal.Decimal `json:"billed"`
}

// EppLine is one estimated EPP issue line priced against the catalog.
// A SKU missing from the catalog keeps a placeholder name and prices as zero.

type EppLine struct {
	SKU       string          `json:"sku"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Missing   bool            `json:"missing,omitempty"`
}

// InternalBreakdown carries the full cost/profit detail of a quote. It is an
// internal artifact: none of these figures may reach the client-facing quote.

type InternalBreakdown struct {
	Divisions      []DivisionLine  `json:"divisions"`
	EppLines       []EppLine       `json:"epp_lines,omitempty"`
	DirectRealCost decimal.Decimal `json:"direct_real_cost"`
	PricingBase    decimal.Decimal `json:"pricing_base"`
	ManagementFee  decimal.Decimal `json:"management_fee"`
	GrossProfit    decimal.Decimal `json:"gross_profit"`
	MarginPct      decimal.Decimal `json:"margin_pct"`
	RiskFlags      []string        `json:"risk_flags,omitempty"`
}

// ClientQuote is the customer-facing artifact: header, commercial totals and
// boilerplate notices only. It never exposes cost, profit or margin.

type ClientQuote struct {
	ClientName     string          `json:"client_name"`
	ProjectName    string          `json:"project_name"`
	Location       string          `json:"location"`
	DurationMonths decimal.Decimal `json:"duration_months"`
	PaymentTerms   string          `json:"payment_terms"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	Tax            decimal.Decimal `json:"tax"`
	Total          decimal.Decimal `json:"total"`
	Currency       string          `json:"currency"`
	ValidityDays   int             `json:"validity_days"`
	Notes          []string        `json:"notes"`
	Assumptions    []string        `json:"assumptions,omitempty"`
	Exclusions     []string        `json:"exclusions,omitempty"`
}

// Totals is the commercial roll-up shared by both artifacts.
// Invariant: Total = Subtotal + Tax, all rounded to cents.

type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// Quote is the persisted priced artifact.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Quotes are write-once: the repository guards creation with
// attribute_not_exists and no update path exists.

type Quote struct {
	ID        string            `json:"id"`
	CreatedAt time.Time         `json:"created_at"`
	Status    QuoteStatus       `json:"status"`
	Request   QuoteRequest      `json:"request"`
	Client    ClientQuote       `json:"client_quote"`
	Breakdown InternalBreakdown `json:"internal_breakdown"`
	Totals    Totals            `json:"totals"`
}
