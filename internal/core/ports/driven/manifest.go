package driven

import (
	"context"

	"github.com/custodia-labs/mocapprep/internal/core/domain"
)

// ManifestReader reads extraction jobs.
type ManifestReader interface {
	// Read returns the manifest entries in file order.
	Read(ctx context.Context, path string) ([]domain.ManifestEntry, error)
}
