package interfaces

import (
	"context"

	"micsa_os/internal/domain/entities"
)

// ICatalogRepository abstracts persistence for the EPP reference catalog.
// Upsert is keyed by SKU and returns the number of items written.

type ICatalogRepository interface {
	Upsert(ctx context.Context, items []entities.EppCatalogItem) (int, error)
	List(ctx context.Context) ([]entities.EppCatalogItem, error)
}
