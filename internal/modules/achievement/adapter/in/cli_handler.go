package in

import (
	"context"

	"focusforge/internal/modules/achievement/dto"
	achievementin "focusforge/internal/modules/achievement/port/in"
)

type CLIHandler struct {
	usecase achievementin.Usecase
}

func NewCLIHandler(usecase achievementin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context) ([]dto.DefinitionOutput, error) {
	return h.usecase.List(ctx)
}
