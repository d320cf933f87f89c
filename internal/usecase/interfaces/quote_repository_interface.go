package interfaces

import (
	"context"

	"micsa_os/internal/domain/entities"
)

// IQuoteRepository abstracts persistence for priced quotes.
//
// Quotes are write-once: Create must be conditional on the id not existing,
// and a retried insert of the same id must not duplicate or recompute the
// artifact. Lookups return a zero-value entity when the id is unknown.

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	List(ctx context.Context) ([]entities.Quote, error)
}
