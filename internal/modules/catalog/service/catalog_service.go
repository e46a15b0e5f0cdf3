package service

import (
	"context"
	"fmt"

	"grindlock/internal/modules/catalog/domain"
	catalogout "grindlock/internal/modules/catalog/port/out"
	apperrors "grindlock/internal/platform/errors"
)

// CatalogService serves the reference list. The store is consulted on every
// call; the catalog is small and re-reading keeps edits visible without a
// restart.
type CatalogService struct {
	store catalogout.CatalogStore
}

func NewCatalogService(store catalogout.CatalogStore) *CatalogService {
	return &CatalogService{store: store}
}

func (s *CatalogService) List(ctx context.Context) (domain.Catalog, error) {
	return s.store.Load(ctx)
}

func (s *CatalogService) Get(ctx context.Context, slug string) (domain.TaskItem, error) {
	catalog, err := s.store.Load(ctx)
	if err != nil {
		return domain.TaskItem{}, err
	}
	task, ok := catalog.Get(slug)
	if !ok {
		return domain.TaskItem{}, fmt.Errorf("task %q: %w", slug, apperrors.ErrNotFound)
	}
	return task, nil
}

func (s *CatalogService) Summarize(ctx context.Context, done map[string]bool) (domain.Summary, error) {
	catalog, err := s.store.Load(ctx)
	if err != nil {
		return domain.Summary{}, err
	}
	return catalog.Summarize(done), nil
}
