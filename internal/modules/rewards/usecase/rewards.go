package usecase

import (
	"context"

	"focusforge/internal/modules/rewards/dto"
	rewardsin "focusforge/internal/modules/rewards/port/in"
	"focusforge/internal/modules/rewards/service"
)

type Interactor struct {
	svc *service.LedgerService
}

func NewInteractor(svc *service.LedgerService) rewardsin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) RecordCompleted(ctx context.Context, durationSeconds int) (dto.SessionRecordedOutput, error) {
	return i.svc.RecordCompleted(ctx, durationSeconds)
}

func (i *Interactor) RecordFailed(ctx context.Context, elapsedSeconds int) (dto.SessionRecordedOutput, error) {
	return i.svc.RecordFailed(ctx, elapsedSeconds)
}

func (i *Interactor) SpendCoins(ctx context.Context, input dto.SpendInput) (bool, error) {
	return i.svc.SpendCoins(ctx, input.Amount)
}

func (i *Interactor) Snapshot(ctx context.Context) (dto.LedgerOutput, error) {
	return i.svc.Snapshot(ctx)
}

func (i *Interactor) History(ctx context.Context, limit int) ([]dto.HistoryEntryOutput, error) {
	return i.svc.History(ctx, limit)
}

func (i *Interactor) ResetAll(ctx context.Context) error {
	return i.svc.ResetAll(ctx)
}

func (i *Interactor) SubscribeChange(listener func()) func() {
	return i.svc.SubscribeChange(listener)
}
