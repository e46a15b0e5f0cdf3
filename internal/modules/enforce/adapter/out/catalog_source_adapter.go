package out

import (
	"context"

	catalogin "grindlock/internal/modules/catalog/port/in"
	"grindlock/internal/modules/enforce/domain"
	enforceout "grindlock/internal/modules/enforce/port/out"
)

type CatalogSourceAdapter struct {
	catalog catalogin.Usecase
}

func NewCatalogSourceAdapter(catalog catalogin.Usecase) enforceout.CatalogSource {
	return &CatalogSourceAdapter{catalog: catalog}
}

func (a *CatalogSourceAdapter) Tasks(ctx context.Context) ([]domain.Task, error) {
	items, err := a.catalog.List(ctx)
	if err != nil {
		return nil, err
	}
	tasks := make([]domain.Task, 0, len(items))
	for _, item := range items {
		tasks = append(tasks, domain.Task{
			Slug:        item.Slug,
			Title:       item.Title,
			LeetCodeURL: item.LeetCodeURL,
			NeetCodeURL: item.NeetCodeURL,
		})
	}
	return tasks, nil
}
