package out

import (
	"context"

	"focusforge/internal/modules/achievement/domain"
)

// CatalogStore loads the static achievement definitions once at startup.
type CatalogStore interface {
	Definitions(ctx context.Context) ([]domain.Definition, error)
}
