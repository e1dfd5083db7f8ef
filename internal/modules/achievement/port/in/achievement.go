package in

import (
	"context"

	"focusforge/internal/modules/achievement/dto"
)

// Usecase exposes the static catalog and the rule evaluation the progression
// ledger reruns after every mutation.
type Usecase interface {
	List(ctx context.Context) ([]dto.DefinitionOutput, error)
	Evaluate(ctx context.Context, input dto.EvaluateInput) (dto.EvaluateOutput, error)
}
