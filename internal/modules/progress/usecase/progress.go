package usecase

import (
	"context"

	catalogin "grindlock/internal/modules/catalog/port/in"
	"grindlock/internal/modules/progress/dto"
	progressin "grindlock/internal/modules/progress/port/in"
	progressout "grindlock/internal/modules/progress/port/out"
	"grindlock/internal/modules/progress/service"
)

type Interactor struct {
	svc         *service.ProgressService
	catalog     catalogin.Usecase
	credentials progressout.CredentialStore
}

func NewInteractor(svc *service.ProgressService, catalog catalogin.Usecase, credentials progressout.CredentialStore) progressin.Usecase {
	return &Interactor{svc: svc, catalog: catalog, credentials: credentials}
}

func (i *Interactor) Snapshot(ctx context.Context) (dto.SnapshotOutput, error) {
	tasks, err := i.catalog.List(ctx)
	if err != nil {
		return dto.SnapshotOutput{}, err
	}
	slugs := make([]string, 0, len(tasks))
	for _, task := range tasks {
		slugs = append(slugs, task.Slug)
	}

	snap, err := i.svc.Snapshot(ctx, slugs)
	if err != nil {
		return dto.SnapshotOutput{}, err
	}
	return dto.SnapshotOutput{
		TakenAt:        snap.TakenAt,
		Today:          snap.Today,
		Yesterday:      snap.Yesterday,
		TotalCompleted: snap.TotalCompleted,
		CompletedSlugs: snap.CompletedSlugs,
		SolvedToday:    snap.SolvedToday,
	}, nil
}

func (i *Interactor) StoreSession(token string) error {
	return i.credentials.SetSessionToken(token)
}

func (i *Interactor) HasSession() bool {
	token, err := i.credentials.SessionToken()
	return err == nil && token != ""
}
