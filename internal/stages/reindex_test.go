package stages

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/mocapprep/internal/core/domain"
)

func TestReindex_AppendsIdentifiers(t *testing.T) {
	trial := &domain.Trial{Columns: []domain.Column{
		{Name: "X.A", Values: constant(4, 1)},
		{Name: "Z.A", Values: constant(4, 2)},
	}}

	out, err := NewReindex().Apply(context.Background(), trial)

	require.NoError(t, err)
	assert.Equal(t, []string{"X.A", "Z.A", "Frame", "Sub Frame"}, out.Names())
	frame, _ := out.Column("Frame")
	assert.Equal(t, []float64{1, 2, 3, 4}, frame.Values)
	sub, _ := out.Column("Sub Frame")
	assert.Equal(t, []float64{0, 0, 0, 0}, sub.Values)
}

func TestReindex_ReplacesSurvivingIdentifiers(t *testing.T) {
	trial := &domain.Trial{Columns: []domain.Column{
		{Name: "Frame", Values: []float64{40, 41}},
		{Name: "X.A", Values: []float64{1, 2}},
		{Name: "Sub Frame", Values: []float64{3, 3}},
	}}

	out, err := NewReindex().Apply(context.Background(), trial)

	require.NoError(t, err)
	assert.Equal(t, []string{"X.A", "Frame", "Sub Frame"}, out.Names())
	frame, _ := out.Column("Frame")
	assert.Equal(t, []float64{1, 2}, frame.Values)
	sub, _ := out.Column("Sub Frame")
	assert.Equal(t, []float64{0, 0}, sub.Values)
}

func TestNormalizePipeline_EndToEnd(t *testing.T) {
	trial := landmarkTrial(50, [3]float64{1, 2, 3}, [3]float64{3, 2, 1})
	p := NewNormalizePipeline(domain.DefaultSettings().Normalize)

	out, err := p.Process(context.Background(), trial)

	require.NoError(t, err)
	assert.Equal(t, 101, out.Len())
	assert.Equal(t, []string{
		"X.Subj1:LHEE", "X.Subj1:RHEE", "X.Subj1:RTOE",
		"Y.Subj1:LHEE", "Y.Subj1:RHEE", "Y.Subj1:RTOE",
		"Z.Subj1:LHEE", "Z.Subj1:RHEE", "Z.Subj1:RTOE",
		"Frame", "Sub Frame",
	}, out.Names())

	x, _ := out.Column("X.Subj1:RTOE")
	assert.InDelta(t, 8.0, x.Values[50], 1e-9)
	z, _ := out.Column("Z.Subj1:RTOE")
	assert.InDelta(t, 30.0, z.Values[50], 1e-9)
	frame, _ := out.Column("Frame")
	assert.Equal(t, 101.0, frame.Values[100])
}
