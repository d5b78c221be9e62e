package driving

import (
	"context"

	"github.com/custodia-labs/mocapprep/internal/core/domain"
)

// FrameExtractor extracts manifest-listed frame ranges from capture files.
type FrameExtractor interface {
	// ExtractAll processes every manifest row. Per-row failures are reported
	// in the results; the error is non-nil only when the batch cannot start.
	ExtractAll(ctx context.Context, manifestPath, inputDir, outputDir string) ([]domain.Result, error)

	// Extract processes a single manifest entry and returns the output path.
	Extract(ctx context.Context, entry domain.ManifestEntry, inputDir, outputDir string) (string, error)
}
