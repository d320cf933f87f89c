package response

import (
	"time"

	"micsa_os/internal/domain/entities"
)

// QuoteSummaryResponse is the list-view projection of a quote. It carries
// the client-facing total only; no internal figures.

type QuoteSummaryResponse struct {
	ID          string    `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	ClientName  string    `json:"client_name"`
	ProjectName string    `json:"project_name"`
	Total       string    `json:"total"`
	Status      string    `json:"status"`
}

// QuoteResponse is the full quote artifact for internal consumers: the
// client-facing quote plus the cost/profit breakdown. The client document
// alone is available through the printable rendering.

type QuoteResponse struct {
	QuoteID   string                     `json:"quote_id"`
	ID        string                     `json:"id"`
	CreatedAt time.Time                  `json:"created_at"`
	Status    string                     `json:"status"`
	Client    entities.ClientQuote       `json:"client_quote"`
	Breakdown entities.InternalBreakdown `json:"internal_breakdown"`
	Totals    entities.Totals            `json:"totals"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		QuoteID:   q.ID,
		ID:        q.ID,
		CreatedAt: q.CreatedAt,
		Status:    string(q.Status),
		Client:    q.Client,
		Breakdown: q.Breakdown,
		Totals:    q.Totals,
	}
}

func FromQuoteSummary(q entities.Quote) QuoteSummaryResponse {
	return QuoteSummaryResponse{
		ID:          q.ID,
		CreatedAt:   q.CreatedAt,
		ClientName:  q.Client.ClientName,
		ProjectName: q.Client.ProjectName,
		Total:       q.Totals.Total.String(),
		Status:      string(q.Status),
	}
}

func FromQuoteSummaries(quotes []entities.Quote) []QuoteSummaryResponse {
	out := make([]QuoteSummaryResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, FromQuoteSummary(q))
	}
	return out
}
