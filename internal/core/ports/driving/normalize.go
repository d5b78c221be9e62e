package driving

import (
	"context"

	"github.com/custodia-labs/mocapprep/internal/core/domain"
)

// TrialNormalizer re-centres, reorders and resamples trials.
type TrialNormalizer interface {
	// ProcessAll normalizes every matching file in inputDir. Per-file failures
	// are reported in the results; the error is non-nil only when the batch
	// cannot start.
	ProcessAll(ctx context.Context, inputDir, outputDir string) ([]domain.Result, error)

	// ProcessFile normalizes one file and returns the output path.
	ProcessFile(ctx context.Context, inputPath, outputDir string) (string, error)
}
