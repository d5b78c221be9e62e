package stages

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/mocapprep/internal/core/domain"
)

func TestResampleTrial_AlwaysTargetLength(t *testing.T) {
	for _, n := range []int{2, 50, 500} {
		t.Run(fmt.Sprintf("len=%d", n), func(t *testing.T) {
			trial := &domain.Trial{Columns: []domain.Column{
				{Name: "X.A", Values: ramp(n)},
				{Name: "Y.A", Values: constant(n, 7)},
			}}

			out, err := ResampleTrial(trial, 101)

			require.NoError(t, err)
			assert.Equal(t, 101, out.Len())
			for _, col := range out.Columns {
				assert.Len(t, col.Values, 101)
			}
		})
	}
}

func TestResampleTrial_ConstantColumn(t *testing.T) {
	for _, n := range []int{2, 37, 500} {
		trial := &domain.Trial{Columns: []domain.Column{{Name: "Z.A", Values: constant(n, -3.25)}}}

		out, err := ResampleTrial(trial, 101)

		require.NoError(t, err)
		for _, v := range out.Columns[0].Values {
			assert.Equal(t, -3.25, v)
		}
	}
}

func TestResampleTrial_LinearRamp(t *testing.T) {
	trial := &domain.Trial{Columns: []domain.Column{{Name: "X.A", Values: ramp(51)}}}

	out, err := ResampleTrial(trial, 101)

	require.NoError(t, err)
	values := out.Columns[0].Values
	for i, v := range values {
		assert.InDelta(t, float64(i)*0.5, v, 1e-9, "point %d", i)
	}
	assert.InDelta(t, 0.0, values[0], 1e-12)
	assert.InDelta(t, 50.0, values[100], 1e-9)
}

func TestResampleTrial_Endpoints(t *testing.T) {
	trial := &domain.Trial{Columns: []domain.Column{{Name: "Y.A", Values: []float64{10, 4, 8, -2}}}}

	out, err := ResampleTrial(trial, 7)

	require.NoError(t, err)
	values := out.Columns[0].Values
	assert.InDelta(t, 10.0, values[0], 1e-9)
	assert.InDelta(t, 7.0, values[1], 1e-9)
	assert.InDelta(t, 4.0, values[2], 1e-9)
	assert.InDelta(t, 8.0, values[4], 1e-9)
	assert.InDelta(t, -2.0, values[6], 1e-9)
}

func TestResampleTrial_DropsIdentifierColumns(t *testing.T) {
	trial := &domain.Trial{Columns: []domain.Column{
		{Name: "X.A", Values: ramp(5)},
		{Name: "Frame", Values: ramp(5)},
		{Name: "Sub Frame", Values: constant(5, 0)},
	}}

	out, err := ResampleTrial(trial, 11)

	require.NoError(t, err)
	assert.Equal(t, []string{"X.A"}, out.Names())
}

func TestResampleTrial_TooShort(t *testing.T) {
	trial := &domain.Trial{Columns: []domain.Column{{Name: "X.A", Values: []float64{1}}}}

	_, err := ResampleTrial(trial, 101)

	assert.ErrorIs(t, err, domain.ErrInterpolation)
}

func TestResampleTrial_InvalidTarget(t *testing.T) {
	trial := &domain.Trial{Columns: []domain.Column{{Name: "X.A", Values: ramp(4)}}}

	_, err := ResampleTrial(trial, 1)

	assert.ErrorIs(t, err, domain.ErrInterpolation)
}

func TestResample_Apply(t *testing.T) {
	stage := NewResample(21)
	out, err := stage.Apply(context.Background(), &domain.Trial{Columns: []domain.Column{{Name: "X.A", Values: ramp(3)}}})

	require.NoError(t, err)
	assert.Equal(t, "resample", stage.Name())
	assert.Equal(t, 21, stage.Frames())
	assert.Equal(t, 21, out.Len())
}
