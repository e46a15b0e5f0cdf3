package out

import (
	"context"

	"grindlock/internal/modules/notify/domain"
)

// Sink is one notification delivery channel.
type Sink interface {
	Name() string
	Deliver(ctx context.Context, notification domain.Notification) error
}

// ManifestStore lists the declared notifier plugins.
type ManifestStore interface {
	Load(ctx context.Context) ([]domain.Manifest, error)
}
