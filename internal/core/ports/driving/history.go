package driving

import (
	"context"

	"github.com/custodia-labs/mocapprep/internal/core/domain"
)

// RunHistory exposes recorded pipeline runs.
type RunHistory interface {
	// Recent returns up to limit runs, newest first.
	Recent(ctx context.Context, limit int) ([]domain.Run, error)

	// Get retrieves a run by ID.
	Get(ctx context.Context, id string) (*domain.Run, error)
}
