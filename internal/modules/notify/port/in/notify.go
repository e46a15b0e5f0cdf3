package in

import (
	"context"

	"grindlock/internal/modules/notify/dto"
)

// Usecase fans a notification out to every configured sink.
type Usecase interface {
	Notify(ctx context.Context, input dto.NotificationInput) error
}
