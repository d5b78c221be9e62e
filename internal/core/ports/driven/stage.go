package driven

import (
	"context"

	"github.com/custodia-labs/mocapprep/internal/core/domain"
)

// TrialStage transforms a trial as one step of the normalizer pipeline.
type TrialStage interface {
	// Name returns the stage identifier used in errors and logs.
	Name() string

	// Apply returns the transformed trial. Implementations must not
	// modify the input in place.
	Apply(ctx context.Context, trial *domain.Trial) (*domain.Trial, error)
}
