package in

import (
	"context"

	"focusforge/internal/modules/rewards/dto"
	rewardsin "focusforge/internal/modules/rewards/port/in"
)

type CLIHandler struct {
	usecase rewardsin.Usecase
}

func NewCLIHandler(usecase rewardsin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Snapshot(ctx context.Context) (dto.LedgerOutput, error) {
	return h.usecase.Snapshot(ctx)
}

func (h CLIHandler) History(ctx context.Context, limit int) ([]dto.HistoryEntryOutput, error) {
	return h.usecase.History(ctx, limit)
}

func (h CLIHandler) ResetAll(ctx context.Context) error {
	return h.usecase.ResetAll(ctx)
}

func (h CLIHandler) SubscribeChange(listener func()) func() {
	return h.usecase.SubscribeChange(listener)
}
