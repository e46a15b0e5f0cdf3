package usecase

import (
	"context"

	"grindlock/internal/modules/catalog/domain"
	"grindlock/internal/modules/catalog/dto"
	catalogin "grindlock/internal/modules/catalog/port/in"
	"grindlock/internal/modules/catalog/service"
)

type Interactor struct {
	svc          *service.CatalogService
	leetCodeBase string
	neetCodeBase string
}

func NewInteractor(svc *service.CatalogService, leetCodeBase, neetCodeBase string) catalogin.Usecase {
	return &Interactor{svc: svc, leetCodeBase: leetCodeBase, neetCodeBase: neetCodeBase}
}

func (i *Interactor) List(ctx context.Context) ([]dto.TaskOutput, error) {
	catalog, err := i.svc.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TaskOutput, 0, len(catalog))
	for idx, task := range catalog {
		out = append(out, i.toOutput(idx, task))
	}
	return out, nil
}

func (i *Interactor) Get(ctx context.Context, slug string) (dto.TaskOutput, error) {
	task, err := i.svc.Get(ctx, slug)
	if err != nil {
		return dto.TaskOutput{}, err
	}
	return i.toOutput(0, task), nil
}

func (i *Interactor) Summarize(ctx context.Context, done map[string]bool) (dto.SummaryOutput, error) {
	summary, err := i.svc.Summarize(ctx, done)
	if err != nil {
		return dto.SummaryOutput{}, err
	}
	out := dto.SummaryOutput{Total: summary.Total, Done: summary.Done}
	for _, category := range summary.Categories {
		out.Categories = append(out.Categories, dto.CategoryOutput{
			Category: category.Category,
			Total:    category.Total,
			Done:     category.Done,
		})
	}
	return out, nil
}

func (i *Interactor) toOutput(index int, task domain.TaskItem) dto.TaskOutput {
	return dto.TaskOutput{
		Index:       index,
		Slug:        task.Slug,
		Title:       task.Title,
		Difficulty:  string(task.Difficulty),
		Category:    task.Category,
		LeetCodeURL: task.LeetCodeURL(i.leetCodeBase),
		NeetCodeURL: task.NeetCodeURL(i.neetCodeBase),
	}
}
