package out

import (
	"context"

	enforceout "grindlock/internal/modules/enforce/port/out"
	progressin "grindlock/internal/modules/progress/port/in"
)

type ProgressSourceAdapter struct {
	progress progressin.Usecase
}

func NewProgressSourceAdapter(progress progressin.Usecase) enforceout.ProgressSource {
	return &ProgressSourceAdapter{progress: progress}
}

func (a *ProgressSourceAdapter) Progress(ctx context.Context) (enforceout.Progress, error) {
	snapshot, err := a.progress.Snapshot(ctx)
	if err != nil {
		return enforceout.Progress{}, err
	}
	completed := make(map[string]bool, len(snapshot.CompletedSlugs))
	for _, slug := range snapshot.CompletedSlugs {
		completed[slug] = true
	}
	return enforceout.Progress{
		Today:     snapshot.Today,
		Yesterday: snapshot.Yesterday,
		Completed: completed,
	}, nil
}
