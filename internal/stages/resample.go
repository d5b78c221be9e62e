package stages

import (
	"context"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"

	"github.com/custodia-labs/mocapprep/internal/core/domain"
	"github.com/custodia-labs/mocapprep/internal/core/ports/driven"
)

var _ driven.TrialStage = (*Resample)(nil)

// Resample re-expresses every column at a fixed number of evenly spaced
// frames by linear interpolation against the original row index.
type Resample struct {
	frames int
}

// NewResample creates a resample stage producing frames rows.
func NewResample(frames int) *Resample {
	return &Resample{frames: frames}
}

// Name returns "resample".
func (r *Resample) Name() string {
	return "resample"
}

// Frames returns the target row count.
func (r *Resample) Frames() int {
	return r.frames
}

// Apply resamples all coordinate columns.
func (r *Resample) Apply(_ context.Context, trial *domain.Trial) (*domain.Trial, error) {
	return ResampleTrial(trial, r.frames)
}

// ResampleTrial interpolates each column of trial at n points spanning
// [0, len-1]. Identifier columns are dropped; Reindex regenerates them.
func ResampleTrial(trial *domain.Trial, n int) (*domain.Trial, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: target length %d", domain.ErrInterpolation, n)
	}
	length := trial.Len()
	if length < 2 {
		return nil, fmt.Errorf("%w: need at least 2 frames, got %d", domain.ErrInterpolation, length)
	}

	xs := make([]float64, length)
	for i := range xs {
		xs[i] = float64(i)
	}
	points := floats.Span(make([]float64, n), 0, float64(length-1))

	out := &domain.Trial{}
	var pl interp.PiecewiseLinear
	for _, col := range trial.Columns {
		if domain.IsIdentifierColumn(col.Name) {
			continue
		}
		if len(col.Values) != length {
			return nil, fmt.Errorf("%w: column %s has %d rows, want %d",
				domain.ErrInterpolation, col.Name, len(col.Values), length)
		}
		if err := pl.Fit(xs, col.Values); err != nil {
			return nil, fmt.Errorf("%w: column %s: %v", domain.ErrInterpolation, col.Name, err)
		}
		values := make([]float64, n)
		for i, x := range points {
			values[i] = pl.Predict(x)
		}
		out.Columns = append(out.Columns, domain.Column{Name: col.Name, Values: values})
	}
	return out, nil
}
