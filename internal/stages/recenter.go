package stages

import (
	"context"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/custodia-labs/mocapprep/internal/core/domain"
	"github.com/custodia-labs/mocapprep/internal/core/ports/driven"
	"github.com/custodia-labs/mocapprep/internal/logger"
)

var _ driven.TrialStage = (*Recenter)(nil)

// Recenter moves coordinates to a subject-relative origin: the midpoint of
// the landmark markers, each averaged over all frames. Only the configured
// axes are shifted.
type Recenter struct {
	landmarks []string
	axes      domain.AxisSet
}

// NewRecenter creates a recenter stage.
func NewRecenter(landmarks []string, axes domain.AxisSet) *Recenter {
	return &Recenter{
		landmarks: append([]string(nil), landmarks...),
		axes:      append(domain.AxisSet(nil), axes...),
	}
}

// Name returns "recenter".
func (r *Recenter) Name() string {
	return "recenter"
}

// Axes returns the shifted axes.
func (r *Recenter) Axes() domain.AxisSet {
	return r.axes
}

// Apply computes the origin from the unshifted trial and subtracts it.
func (r *Recenter) Apply(_ context.Context, trial *domain.Trial) (*domain.Trial, error) {
	origin, err := ComputeOrigin(trial, r.landmarks)
	if err != nil {
		return nil, err
	}
	logger.Debug("origin x=%.4f y=%.4f z=%.4f", origin[0], origin[1], origin[2])
	return Shift(trial, origin, r.axes), nil
}

// ComputeOrigin returns the elementwise average of the landmarks' per-axis
// means. NaN samples (gaps in the capture) are ignored.
func ComputeOrigin(trial *domain.Trial, landmarks []string) (domain.Origin, error) {
	var origin domain.Origin
	if len(landmarks) == 0 {
		return origin, fmt.Errorf("%w: no landmark markers", domain.ErrInvalidInput)
	}

	for _, marker := range landmarks {
		for _, axis := range domain.Axes() {
			name := domain.CoordinateColumn(axis, marker)
			col, ok := trial.Column(name)
			if !ok {
				return origin, &domain.MissingColumnError{Column: name}
			}
			m, err := nanMean(col.Values)
			if err != nil {
				return origin, fmt.Errorf("column %s: %w", name, err)
			}
			origin[axis.Index()] += m
		}
	}

	n := float64(len(landmarks))
	for i := range origin {
		origin[i] /= n
	}
	return origin, nil
}

func nanMean(values []float64) (float64, error) {
	samples := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			samples = append(samples, v)
		}
	}
	if len(samples) == 0 {
		return 0, fmt.Errorf("%w: no samples", domain.ErrInvalidInput)
	}
	return stat.Mean(samples, nil), nil
}

// Shift returns a copy of trial with origin subtracted from every column
// whose axis is in axes. Other columns are copied unchanged.
func Shift(trial *domain.Trial, origin domain.Origin, axes domain.AxisSet) *domain.Trial {
	out := trial.Clone()
	for i, col := range out.Columns {
		axis, ok := domain.AxisOf(col.Name)
		if !ok || !axes.Contains(axis) {
			continue
		}
		offset := origin.Component(axis)
		for j := range col.Values {
			out.Columns[i].Values[j] -= offset
		}
	}
	return out
}
