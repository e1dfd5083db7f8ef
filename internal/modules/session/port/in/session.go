package in

import (
	"context"

	"focusforge/internal/modules/session/dto"
)

// Usecase drives the focus-session lifecycle. Subscribe registers a listener
// for timer events and returns an unsubscribe func; listeners are invoked
// outside the state lock and must not block for long.
type Usecase interface {
	Start(ctx context.Context, input dto.StartInput) (dto.StartOutput, error)
	Pause(ctx context.Context) error
	Resume(ctx context.Context) error
	Stop(ctx context.Context) (dto.OutcomeOutput, error)
	ReportInput(ctx context.Context, input dto.InputEventInput) (interrupted bool, err error)
	Reset(ctx context.Context) error
	Status(ctx context.Context) (dto.TimerView, error)
	Subscribe(listener func(dto.Event)) (unsubscribe func())
	SetSafePredicate(safe func(target string) bool)
}
