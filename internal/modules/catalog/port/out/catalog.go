package out

import (
	"context"

	"grindlock/internal/modules/catalog/domain"
)

type CatalogStore interface {
	Load(ctx context.Context) (domain.Catalog, error)
}
