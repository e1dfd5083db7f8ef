package in

import (
	"context"

	"focusforge/internal/modules/session/dto"
	sessionin "focusforge/internal/modules/session/port/in"
)

type CLIHandler struct {
	usecase sessionin.Usecase
}

func NewCLIHandler(usecase sessionin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Start(ctx context.Context, durationSeconds int) (dto.StartOutput, error) {
	return h.usecase.Start(ctx, dto.StartInput{DurationSeconds: durationSeconds})
}

func (h CLIHandler) Pause(ctx context.Context) error {
	return h.usecase.Pause(ctx)
}

func (h CLIHandler) Resume(ctx context.Context) error {
	return h.usecase.Resume(ctx)
}

func (h CLIHandler) Stop(ctx context.Context) (dto.OutcomeOutput, error) {
	return h.usecase.Stop(ctx)
}

func (h CLIHandler) ReportInput(ctx context.Context, target string) (bool, error) {
	return h.usecase.ReportInput(ctx, dto.InputEventInput{Target: target})
}

func (h CLIHandler) Reset(ctx context.Context) error {
	return h.usecase.Reset(ctx)
}

func (h CLIHandler) Status(ctx context.Context) (dto.TimerView, error) {
	return h.usecase.Status(ctx)
}

func (h CLIHandler) Subscribe(listener func(dto.Event)) func() {
	return h.usecase.Subscribe(listener)
}

func (h CLIHandler) SetSafePredicate(safe func(target string) bool) {
	h.usecase.SetSafePredicate(safe)
}
