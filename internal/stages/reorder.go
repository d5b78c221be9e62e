package stages

import (
	"context"

	"github.com/custodia-labs/mocapprep/internal/core/domain"
	"github.com/custodia-labs/mocapprep/internal/core/ports/driven"
)

var _ driven.TrialStage = (*Reorder)(nil)

// Reorder keeps only coordinate columns, grouped X, then Y, then Z.
// Columns keep their original relative order within a group.
type Reorder struct{}

// NewReorder creates a reorder stage.
func NewReorder() *Reorder {
	return &Reorder{}
}

// Name returns "reorder".
func (r *Reorder) Name() string {
	return "reorder"
}

// Apply groups the columns by axis.
func (r *Reorder) Apply(_ context.Context, trial *domain.Trial) (*domain.Trial, error) {
	return GroupByAxis(trial), nil
}

// GroupByAxis returns the X, Y and Z columns of trial in grouped order.
// Identifier and other non-coordinate columns are dropped.
func GroupByAxis(trial *domain.Trial) *domain.Trial {
	out := &domain.Trial{}
	for _, axis := range domain.Axes() {
		for _, col := range trial.Columns {
			if a, ok := domain.AxisOf(col.Name); ok && a == axis {
				out.Columns = append(out.Columns, domain.Column{
					Name:   col.Name,
					Values: append([]float64(nil), col.Values...),
				})
			}
		}
	}
	return out
}
