package stages

import "github.com/custodia-labs/mocapprep/internal/core/domain"

// NewNormalizePipeline builds the normalizer's fixed stage order:
// recenter, reorder, resample, reindex.
func NewNormalizePipeline(s domain.NormalizeSettings) *Pipeline {
	return NewPipeline(
		NewRecenter(s.Landmarks, s.ShiftAxes),
		NewReorder(),
		NewResample(s.TargetFrames),
		NewReindex(),
	)
}
