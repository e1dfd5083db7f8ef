package usecase

import (
	"context"

	"focusforge/internal/modules/session/dto"
	sessionin "focusforge/internal/modules/session/port/in"
	"focusforge/internal/modules/session/service"
)

type Interactor struct {
	svc *service.SessionService
}

func NewInteractor(svc *service.SessionService) sessionin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Start(ctx context.Context, input dto.StartInput) (dto.StartOutput, error) {
	return i.svc.Start(ctx, input.DurationSeconds)
}

func (i *Interactor) Pause(ctx context.Context) error {
	return i.svc.Pause(ctx)
}

func (i *Interactor) Resume(ctx context.Context) error {
	return i.svc.Resume(ctx)
}

func (i *Interactor) Stop(ctx context.Context) (dto.OutcomeOutput, error) {
	return i.svc.Stop(ctx)
}

func (i *Interactor) ReportInput(ctx context.Context, input dto.InputEventInput) (bool, error) {
	return i.svc.ReportInput(ctx, input.Target)
}

func (i *Interactor) Reset(ctx context.Context) error {
	return i.svc.Reset(ctx)
}

func (i *Interactor) Status(ctx context.Context) (dto.TimerView, error) {
	return i.svc.Status(ctx)
}

func (i *Interactor) Subscribe(listener func(dto.Event)) func() {
	return i.svc.Subscribe(listener)
}

func (i *Interactor) SetSafePredicate(safe func(target string) bool) {
	i.svc.SetSafePredicate(safe)
}
