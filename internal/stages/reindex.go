package stages

import (
	"context"

	"github.com/custodia-labs/mocapprep/internal/core/domain"
	"github.com/custodia-labs/mocapprep/internal/core/ports/driven"
)

var _ driven.TrialStage = (*Reindex)(nil)

// Reindex appends freshly numbered Frame (1..n) and Sub Frame (all zero)
// columns. Any identifier columns that survived earlier stages are replaced.
type Reindex struct{}

// NewReindex creates a reindex stage.
func NewReindex() *Reindex {
	return &Reindex{}
}

// Name returns "reindex".
func (r *Reindex) Name() string {
	return "reindex"
}

// Apply regenerates the identifier columns.
func (r *Reindex) Apply(_ context.Context, trial *domain.Trial) (*domain.Trial, error) {
	n := trial.Len()
	out := &domain.Trial{}
	for _, col := range trial.Columns {
		if domain.IsIdentifierColumn(col.Name) {
			continue
		}
		out.Columns = append(out.Columns, domain.Column{
			Name:   col.Name,
			Values: append([]float64(nil), col.Values...),
		})
	}

	frames := make([]float64, n)
	for i := range frames {
		frames[i] = float64(i + 1)
	}
	out.Columns = append(out.Columns,
		domain.Column{Name: domain.ColumnFrame, Values: frames},
		domain.Column{Name: domain.ColumnSubFrame, Values: make([]float64, n)},
	)
	return out, nil
}
