package pricing

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"micsa_os/internal/domain/entities"
)

// MaxCommercializationMargin caps the per-line resale margin at 500%.
var MaxCommercializationMargin = decimal.NewFromInt(5)

// FieldError points at a single offending request field.

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates every field rejection found in a quote request.
// The engine refuses to compute anything when at least one field is invalid:
// no partial totals.

type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "invalid quote request"
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "invalid quote request: " + strings.Join(parts, "; ")
}

func (e *ValidationError) add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// Validate checks a quote request before any computation starts.
// Returns a *ValidationError listing every offending field, or nil.
func Validate(req entities.QuoteRequest) error {
	verr := &ValidationError{}

	if strings.TrimSpace(req.ClientName) == "" {
		verr.add("client_name", "required")
	}
	if strings.TrimSpace(req.ProjectName) == "" {
		verr.add("project_name", "required")
	}
	if !req.DurationMonths.IsPositive() {
		verr.add("duration_months", "must be greater than zero")
	}
	if req.WeldersCount < 0 {
		verr.add("welders_count", "must not be negative")
	}
	if req.DC3PeopleCount < 0 {
		verr.add("dc3_people_count", "must not be negative")
	}
	if req.DC3PackageCount < 0 {
		verr.add("dc3_package_count", "must not be negative")
	}
	for role, n := range req.PeopleByRole {
		if strings.TrimSpace(role) == "" {
			verr.add("people_by_role", "role name must not be empty")
		}
		if n < 0 {
			verr.add(fmt.Sprintf("people_by_role.%s", role), "must not be negative")
		}
	}

	if req.Commercialization.Enabled {
		for i, item := range req.Commercialization.Items {
			prefix := fmt.Sprintf("commercialization.items[%d]", i)
			if strings.TrimSpace(item.Description) == "" {
				verr.add(prefix+".description", "required")
			}
			if item.Qty <= 0 {
				verr.add(prefix+".qty", "must be greater than zero")
			}
			if item.VendorCost.IsNegative() {
				verr.add(prefix+".vendor_cost", "must not be negative")
			}
			if item.MarginPct != nil {
				if item.MarginPct.IsNegative() {
					verr.add(prefix+".margin_pct", "must not be negative")
				} else if item.MarginPct.GreaterThan(MaxCommercializationMargin) {
					verr.add(prefix+".margin_pct", "must not exceed 5.0 (500%)")
				}
			}
		}
	}

	if req.Logistics.Enabled {
		l := req.Logistics
		if l.TravelPeopleCount < 0 {
			verr.add("logistics.travel_people_count", "must not be negative")
		}
		if l.HotelNights < 0 {
			verr.add("logistics.hotel_nights", "must not be negative")
		}
		if l.PerDiemDays < 0 {
			verr.add("logistics.per_diem_days", "must not be negative")
		}
		if l.PeoplePerRoom <= 0 {
			verr.add("logistics.people_per_room", "must be greater than zero")
		}
		if l.RoundTripTravelPerPerson.IsNegative() {
			verr.add("logistics.round_trip_travel_per_person", "must not be negative")
		}
		if l.HotelPerNight.IsNegative() {
			verr.add("logistics.hotel_per_night", "must not be negative")
		}
		if l.PerDiemPerDay.IsNegative() {
			verr.add("logistics.per_diem_per_day", "must not be negative")
		}
	}

	if len(verr.Fields) > 0 {
		return verr
	}
	return nil
}
