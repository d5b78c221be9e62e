package stages

import "github.com/custodia-labs/mocapprep/internal/core/domain"

// constant returns n copies of v.
func constant(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

// ramp returns 0, 1, ..., n-1.
func ramp(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i)
	}
	return out
}

// landmarkTrial builds a trial with heel markers whose per-axis means are
// left and right, plus one extra marker and the identifier columns.
func landmarkTrial(n int, left, right [3]float64) *domain.Trial {
	trial := &domain.Trial{}
	trial.Columns = append(trial.Columns,
		domain.Column{Name: domain.ColumnFrame, Values: ramp(n)},
		domain.Column{Name: domain.ColumnSubFrame, Values: constant(n, 0)},
	)
	for _, axis := range domain.Axes() {
		i := axis.Index()
		trial.Columns = append(trial.Columns,
			domain.Column{Name: domain.CoordinateColumn(axis, "Subj1:LHEE"), Values: constant(n, left[i])},
			domain.Column{Name: domain.CoordinateColumn(axis, "Subj1:RHEE"), Values: constant(n, right[i])},
			domain.Column{Name: domain.CoordinateColumn(axis, "Subj1:RTOE"), Values: constant(n, 10*float64(i+1))},
		)
	}
	return trial
}
