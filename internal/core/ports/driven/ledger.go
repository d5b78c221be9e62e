package driven

import (
	"context"

	"github.com/custodia-labs/mocapprep/internal/core/domain"
)

// RunLedger persists the history of pipeline runs.
type RunLedger interface {
	// Record stores a finished run with its per-item records.
	Record(ctx context.Context, run domain.Run) error

	// List returns the most recent runs, newest first.
	// A limit <= 0 returns all runs.
	List(ctx context.Context, limit int) ([]domain.Run, error)

	// Get retrieves a run by ID.
	// Returns domain.ErrNotFound if the run does not exist.
	Get(ctx context.Context, id string) (*domain.Run, error)
}
