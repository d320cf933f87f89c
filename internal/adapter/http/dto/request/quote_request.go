package request

import (
	"github.com/shopspring/decimal"

	"micsa_os/internal/domain/entities"
)

type ModuleToggleRequest struct {
	Enabled bool `json:"enabled"`
}

type CommercializationItemRequest struct {
	Description string   `json:"description" binding:"required"`
	Qty         int      `json:"qty" binding:"required,gt=0"`
	Unit        string   `json:"unit"`
	VendorCost  float64  `json:"vendor_cost" binding:"gte=0"`
	MarginPct   *float64 `json:"margin_pct,omitempty"`
}

type CommercializationRequest struct {
	Enabled bool                           `json:"enabled"`
	Items   []CommercializationItemRequest `json:"items,omitempty"`
}

type LogisticsRequest struct {
	Enabled                  bool    `json:"enabled"`
	TravelPeopleCount        int     `json:"travel_people_count"`
	HotelNights              int     `json:"hotel_nights"`
	PerDiemDays              int     `json:"per_diem_days"`
	RoundTripTravelPerPerson float64 `json:"round_trip_travel_per_person"`
	HotelPerNight            float64 `json:"hotel_per_night"`
	PeoplePerRoom            int     `json:"people_per_room"`
	PerDiemPerDay            float64 `json:"per_diem_per_day"`
}

// QuoteComputeRequest is the full project description submitted for pricing.
// Binding tags catch the shape errors; the pricing engine re-validates the
// business ranges with field-level detail before computing anything.

type QuoteComputeRequest struct {
	ClientName     string  `json:"client_name" binding:"required"`
	ProjectName    string  `json:"project_name" binding:"required"`
	Location       string  `json:"location"`
	DurationMonths float64 `json:"duration_months" binding:"gt=0"`
	PaymentTerms   string  `json:"payment_terms"`

	PeopleByRole    map[string]int `json:"people_by_role"`
	WeldersCount    int            `json:"welders_count" binding:"gte=0"`
	DC3PeopleCount  int            `json:"dc3_people_count" binding:"gte=0"`
	DC3PackageCount int            `json:"dc3_package_count" binding:"gte=0"`

	Medical    ModuleToggleRequest `json:"medical"`
	Epp        ModuleToggleRequest `json:"epp"`
	PlatformPM ModuleToggleRequest `json:"platform_pm"`
	ISO        ModuleToggleRequest `json:"iso"`

	Commercialization CommercializationRequest `json:"commercialization"`
	Logistics         LogisticsRequest         `json:"logistics"`

	Assumptions []string `json:"assumptions,omitempty"`
	Exclusions  []string `json:"exclusions,omitempty"`
}

func (r QuoteComputeRequest) ToEntity() entities.QuoteRequest {
	req := entities.QuoteRequest{
		ClientName:     r.ClientName,
		ProjectName:    r.ProjectName,
		Location:       r.Location,
		DurationMonths: decimal.NewFromFloat(r.DurationMonths),
		PaymentTerms:   r.PaymentTerms,

		PeopleByRole:    r.PeopleByRole,
		WeldersCount:    r.WeldersCount,
		DC3PeopleCount:  r.DC3PeopleCount,
		DC3PackageCount: r.DC3PackageCount,

		Medical:    entities.ModuleToggle{Enabled: r.Medical.Enabled},
		Epp:        entities.ModuleToggle{Enabled: r.Epp.Enabled},
		PlatformPM: entities.ModuleToggle{Enabled: r.PlatformPM.Enabled},
		ISO:        entities.ModuleToggle{Enabled: r.ISO.Enabled},

		Commercialization: entities.Commercialization{
			Enabled: r.Commercialization.Enabled,
		},
		Logistics: entities.Logistics{
			Enabled:                  r.Logistics.Enabled,
			TravelPeopleCount:        r.Logistics.TravelPeopleCount,
			HotelNights:              r.Logistics.HotelNights,
			PerDiemDays:              r.Logistics.PerDiemDays,
			RoundTripTravelPerPerson: decimal.NewFromFloat(r.Logistics.RoundTripTravelPerPerson),
			HotelPerNight:            decimal.NewFromFloat(r.Logistics.HotelPerNight),
			PeoplePerRoom:            r.Logistics.PeoplePerRoom,
			PerDiemPerDay:            decimal.NewFromFloat(r.Logistics.PerDiemPerDay),
		},

		Assumptions: r.Assumptions,
		Exclusions:  r.Exclusions,
	}

	for _, item := range r.Commercialization.Items {
		entItem := entities.CommercializationItem{
			Description: item.Description,
			Qty:         item.Qty,
			Unit:        item.Unit,
			VendorCost:  decimal.NewFromFloat(item.VendorCost),
		}
		if item.MarginPct != nil {
			margin := decimal.NewFromFloat(*item.MarginPct)
			entItem.MarginPct = &margin
		}
		req.Commercialization.Items = append(req.Commercialization.Items, entItem)
	}

	return req
}
