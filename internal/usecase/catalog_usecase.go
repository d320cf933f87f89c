package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"micsa_os/internal/domain/entities"
	"micsa_os/internal/usecase/interfaces"
)

var (
	ErrEmptyCatalogUpsert = errors.New("catalog upsert needs at least one item")
	ErrInvalidCatalogItem = errors.New("invalid catalog item")
)

// ICatalogUseCase maintains the EPP reference catalog consulted (never
// owned) by the pricing engine.

type ICatalogUseCase interface {
	Upsert(ctx context.Context, items []entities.EppCatalogItem) (int, error)
	List(ctx context.Context) ([]entities.EppCatalogItem, error)
}

type CatalogUseCase struct {
	repo interfaces.ICatalogRepository
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(repo interfaces.ICatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

// Upsert validates and writes the batch keyed by SKU. Rejected batches are
// never partially applied: validation happens before the first write.
func (u *CatalogUseCase) Upsert(ctx context.Context, items []entities.EppCatalogItem) (int, error) {
	if len(items) == 0 {
		return 0, ErrEmptyCatalogUpsert
	}
	for i := range items {
		items[i].SKU = strings.TrimSpace(items[i].SKU)
		items[i].Name = strings.TrimSpace(items[i].Name)
		if err := validateCatalogItem(i, items[i]); err != nil {
			return 0, err
		}
	}

	count, err := u.repo.Upsert(ctx, items)
	if err != nil {
		return 0, err
	}
	log.Printf("[catalog][usecase] upserted %d item(s)", count)
	return count, nil
}

func (u *CatalogUseCase) List(ctx context.Context) ([]entities.EppCatalogItem, error) {
	return u.repo.List(ctx)
}

func validateCatalogItem(i int, item entities.EppCatalogItem) error {
	switch {
	case item.SKU == "":
		return fmt.Errorf("%w: items[%d].sku is required", ErrInvalidCatalogItem, i)
	case item.Name == "":
		return fmt.Errorf("%w: items[%d].name is required", ErrInvalidCatalogItem, i)
	case item.Unit != entities.EppUnitPiece && item.Unit != entities.EppUnitPair:
		return fmt.Errorf("%w: items[%d].unit must be piece or pair", ErrInvalidCatalogItem, i)
	case item.UnitPriceWithTax.IsNegative():
		return fmt.Errorf("%w: items[%d].unit_price_with_tax must not be negative", ErrInvalidCatalogItem, i)
	}
	return nil
}
