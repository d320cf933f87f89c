package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"micsa_os/internal/domain/entities"
	"micsa_os/internal/domain/pricing"
	"micsa_os/internal/usecase/interfaces"
)

var (
	ErrQuoteNotFound  = errors.New("quote not found")
	ErrInvalidQuoteID = errors.New("invalid quote id")
)

// IQuoteUseCase exposes the quoting operations.
//
// A quote is computed once, persisted as an immutable artifact and only ever
// read afterwards. The printable rendering is built strictly from the
// client-facing fields so internal cost detail cannot leak through it.

type IQuoteUseCase interface {
	ComputeQuote(ctx context.Context, req entities.QuoteRequest) (entities.Quote, error)
	List(ctx context.Context) ([]entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	RenderPrintable(ctx context.Context, id string) (string, error)
}

type QuoteUseCase struct {
	repo        interfaces.IQuoteRepository
	catalogRepo interfaces.ICatalogRepository
	rates       pricing.Rates
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository, catalogRepo interfaces.ICatalogRepository, rates pricing.Rates) *QuoteUseCase {
	return &QuoteUseCase{repo: repo, catalogRepo: catalogRepo, rates: rates}
}

func (u *QuoteUseCase) ComputeQuote(ctx context.Context, req entities.QuoteRequest) (entities.Quote, error) {
	catalog, err := u.catalogRepo.List(ctx)
	if err != nil {
		return entities.Quote{}, err
	}

	client, breakdown, totals, err := pricing.ComputeQuote(req, catalog, u.rates)
	if err != nil {
		return entities.Quote{}, err
	}

	q := entities.Quote{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Status:    entities.QuoteStatusDraft,
		Request:   req,
		Client:    client,
		Breakdown: breakdown,
		Totals:    totals,
	}

	// The id is generated before the write and the repository insert is
	// conditional, so retrying a failed persist reuses this artifact instead
	// of recomputing and double-inserting.
	created, err := u.repo.Create(ctx, q)
	if err != nil {
		return entities.Quote{}, err
	}
	log.Printf("[quote][usecase] quote created id=%s client=%q total=%s", created.ID, req.ClientName, totals.Total)
	return created, nil
}

func (u *QuoteUseCase) List(ctx context.Context) ([]entities.Quote, error) {
	return u.repo.List(ctx)
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

// RenderPrintable builds the plain-text customer document for a quote.
func (u *QuoteUseCase) RenderPrintable(ctx context.Context, id string) (string, error) {
	q, err := u.GetByID(ctx, id)
	if err != nil {
		return "", err
	}

	c := q.Client
	var b strings.Builder
	fmt.Fprintf(&b, "MICSA - SERVICIOS INDUSTRIALES\n")
	fmt.Fprintf(&b, "QUOTE %s\n", q.ID)
	fmt.Fprintf(&b, "Issued: %s\n\n", q.CreatedAt.Format("2006-01-02"))
	fmt.Fprintf(&b, "Client:   %s\n", c.ClientName)
	fmt.Fprintf(&b, "Project:  %s\n", c.ProjectName)
	if c.Location != "" {
		fmt.Fprintf(&b, "Location: %s\n", c.Location)
	}
	fmt.Fprintf(&b, "Duration: %s month(s)\n", c.DurationMonths)
	fmt.Fprintf(&b, "Payment terms: %s\n\n", c.PaymentTerms)
	fmt.Fprintf(&b, "Subtotal: %s %s\n", c.Subtotal, c.Currency)
	fmt.Fprintf(&b, "IVA:      %s %s\n", c.Tax, c.Currency)
	fmt.Fprintf(&b, "TOTAL:    %s %s\n\n", c.Total, c.Currency)
	fmt.Fprintf(&b, "Valid for %d days.\n\n", c.ValidityDays)
	for _, note := range c.Notes {
		fmt.Fprintf(&b, "- %s\n", note)
	}
	if len(c.Assumptions) > 0 {
		fmt.Fprintf(&b, "\nAssumptions:\n")
		for _, a := range c.Assumptions {
			fmt.Fprintf(&b, "- %s\n", a)
		}
	}
	if len(c.Exclusions) > 0 {
		fmt.Fprintf(&b, "\nExclusions:\n")
		for _, e := range c.Exclusions {
			fmt.Fprintf(&b, "- %s\n", e)
		}
	}
	return b.String(), nil
}
