package stages

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/mocapprep/internal/core/domain"
)

var heels = []string{"Subj1:LHEE", "Subj1:RHEE"}

func TestComputeOrigin_MidpointOfMeans(t *testing.T) {
	trial := landmarkTrial(4, [3]float64{1, 2, 3}, [3]float64{3, 2, 1})

	origin, err := ComputeOrigin(trial, heels)

	require.NoError(t, err)
	assert.Equal(t, domain.Origin{2, 2, 2}, origin)
}

func TestComputeOrigin_AveragesOverFrames(t *testing.T) {
	trial := &domain.Trial{Columns: []domain.Column{
		{Name: "X.L", Values: []float64{0, 2, 4}},
		{Name: "Y.L", Values: []float64{1, 1, 1}},
		{Name: "Z.L", Values: []float64{3, 3, 3}},
		{Name: "X.R", Values: []float64{10, 10, 10}},
		{Name: "Y.R", Values: []float64{5, 7, 9}},
		{Name: "Z.R", Values: []float64{1, 1, 1}},
	}}

	origin, err := ComputeOrigin(trial, []string{"L", "R"})

	require.NoError(t, err)
	assert.InDelta(t, 6.0, origin[0], 1e-12)
	assert.InDelta(t, 4.0, origin[1], 1e-12)
	assert.InDelta(t, 2.0, origin[2], 1e-12)
}

func TestComputeOrigin_IgnoresGaps(t *testing.T) {
	trial := landmarkTrial(3, [3]float64{1, 1, 1}, [3]float64{3, 3, 3})
	for i, col := range trial.Columns {
		if col.Name == "X.Subj1:LHEE" {
			trial.Columns[i].Values = []float64{math.NaN(), 1, 1}
		}
	}

	origin, err := ComputeOrigin(trial, heels)

	require.NoError(t, err)
	assert.InDelta(t, 2.0, origin[0], 1e-12)
}

func TestComputeOrigin_MissingLandmark(t *testing.T) {
	trial := landmarkTrial(3, [3]float64{}, [3]float64{})
	kept := trial.Columns[:0]
	for _, col := range trial.Columns {
		if col.Name != "X.Subj1:RHEE" {
			kept = append(kept, col)
		}
	}
	trial.Columns = kept

	_, err := ComputeOrigin(trial, heels)

	require.Error(t, err)
	var mce *domain.MissingColumnError
	require.True(t, errors.As(err, &mce))
	assert.Equal(t, "X.Subj1:RHEE", mce.Column)
	assert.ErrorIs(t, err, domain.ErrMissingColumn)
}

func TestComputeOrigin_NoLandmarks(t *testing.T) {
	_, err := ComputeOrigin(&domain.Trial{}, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestShift_DefaultAxesLeaveZUntouched(t *testing.T) {
	trial := landmarkTrial(5, [3]float64{1, 2, 3}, [3]float64{3, 2, 1})
	origin, err := ComputeOrigin(trial, heels)
	require.NoError(t, err)

	shifted := Shift(trial, origin, domain.AxisSet{domain.AxisX, domain.AxisY})

	for i, col := range shifted.Columns {
		original := trial.Columns[i]
		axis, ok := domain.AxisOf(col.Name)
		switch {
		case !ok || axis == domain.AxisZ:
			assert.Equal(t, original.Values, col.Values, col.Name)
		default:
			for j := range col.Values {
				assert.Equal(t, original.Values[j]-origin.Component(axis), col.Values[j], col.Name)
			}
		}
	}
}

func TestShift_AllAxes(t *testing.T) {
	trial := landmarkTrial(2, [3]float64{0, 0, 4}, [3]float64{0, 0, 6})

	shifted := Shift(trial, domain.Origin{0, 0, 5}, domain.AxisSet{domain.AxisX, domain.AxisY, domain.AxisZ})

	col, ok := shifted.Column("Z.Subj1:RTOE")
	require.True(t, ok)
	assert.Equal(t, []float64{25, 25}, col.Values)
}

func TestShift_DoesNotModifyInput(t *testing.T) {
	trial := landmarkTrial(2, [3]float64{1, 1, 1}, [3]float64{1, 1, 1})

	_ = Shift(trial, domain.Origin{1, 1, 1}, domain.AxisSet{domain.AxisX})

	col, _ := trial.Column("X.Subj1:LHEE")
	assert.Equal(t, []float64{1, 1}, col.Values)
}

func TestRecenter_Apply(t *testing.T) {
	trial := landmarkTrial(3, [3]float64{1, 2, 3}, [3]float64{3, 2, 1})
	stage := NewRecenter(heels, domain.AxisSet{domain.AxisX, domain.AxisY})

	out, err := stage.Apply(context.Background(), trial)

	require.NoError(t, err)
	assert.Equal(t, "recenter", stage.Name())
	assert.Equal(t, domain.AxisSet{domain.AxisX, domain.AxisY}, stage.Axes())

	x, _ := out.Column("X.Subj1:RTOE")
	assert.Equal(t, []float64{8, 8, 8}, x.Values)
	y, _ := out.Column("Y.Subj1:RTOE")
	assert.Equal(t, []float64{18, 18, 18}, y.Values)
	z, _ := out.Column("Z.Subj1:RTOE")
	assert.Equal(t, []float64{30, 30, 30}, z.Values)
}
