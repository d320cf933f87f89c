package pricing

import (
	"fmt"
	"strings"

	"micsa_os/internal/domain/entities"
)

var creditTermHints = []string{
	"net 30", "net30", "net 45", "net 60",
	"30 dias", "30 días", "credito", "crédito",
}

// riskFlags derives the rule-based annotations appended to the internal
// breakdown. Flags never reach the client-facing quote.
func riskFlags(req entities.QuoteRequest, r Rates) []string {
	var flags []string

	terms := strings.ToLower(req.PaymentTerms)
	for _, hint := range creditTermHints {
		if strings.Contains(terms, hint) {
			flags = append(flags, "payment terms imply extended credit; confirm cash-flow coverage before award")
			break
		}
	}

	if people := req.TotalPeople(); people > r.HeadcountRiskThreshold {
		flags = append(flags, fmt.Sprintf("headcount %d exceeds %d; review recruiting and supervision capacity", people, r.HeadcountRiskThreshold))
	}

	if req.DurationMonths.GreaterThanOrEqual(r.LongDurationMonths) {
		flags = append(flags, "duration of 12 months or longer; consider a cost escalation clause")
	}

	return flags
}
