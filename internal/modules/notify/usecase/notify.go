package usecase

import (
	"context"

	"grindlock/internal/modules/notify/domain"
	"grindlock/internal/modules/notify/dto"
	notifyin "grindlock/internal/modules/notify/port/in"
	"grindlock/internal/modules/notify/service"
)

type Interactor struct {
	svc *service.NotifyService
}

func NewInteractor(svc *service.NotifyService) notifyin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Notify(ctx context.Context, input dto.NotificationInput) error {
	return i.svc.Notify(ctx, domain.Notification{
		Kind:    input.Kind,
		Title:   input.Title,
		Message: input.Message,
	})
}
