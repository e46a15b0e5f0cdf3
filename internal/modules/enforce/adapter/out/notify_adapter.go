package out

import (
	"context"

	enforceout "grindlock/internal/modules/enforce/port/out"
	"grindlock/internal/modules/notify/dto"
	notifyin "grindlock/internal/modules/notify/port/in"
)

type NotifyAdapter struct {
	notify notifyin.Usecase
}

func NewNotifyAdapter(notify notifyin.Usecase) enforceout.Notifier {
	return &NotifyAdapter{notify: notify}
}

func (a *NotifyAdapter) Notify(ctx context.Context, event enforceout.Event) error {
	return a.notify.Notify(ctx, dto.NotificationInput{
		Kind:    string(event.Kind),
		Title:   event.Title,
		Message: event.Message,
	})
}
