package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/mocapprep/internal/core/domain"
)

func TestNormalizeCmd_Use(t *testing.T) {
	assert.Equal(t, "normalize [input-dir]", normalizeCmd.Use)
}

func TestNormalizeCmd_UsesSettingsDefaults(t *testing.T) {
	ts := setupServices(t)
	ts.normalizer.results = []domain.Result{
		{Source: "extracted_frames/a.csv", Output: "processed/processed_a.csv"},
	}

	out, err := execute(t, "normalize")

	require.NoError(t, err)
	assert.Equal(t, []string{domain.DefaultNormalizeInputDir, domain.DefaultNormalizeOutputDir}, ts.normalizer.args)
	assert.Equal(t, domain.DefaultSettings().Normalize, ts.normalizer.settings)
	assert.Contains(t, out, "processed/processed_a.csv")
	assert.Contains(t, out, "Processed 1 of 1")
}

func TestNormalizeCmd_FlagsOverrideSettings(t *testing.T) {
	ts := setupServices(t)
	require.NoError(t, ts.settings.Set("normalize.target_frames", "51"))

	_, err := execute(t, "normalize", "in",
		"--output", "out",
		"--frames", "201",
		"--shift-axes", "X,Y,Z",
		"--skip-lines", "3",
		"--pattern", "trial*.csv")

	require.NoError(t, err)
	assert.Equal(t, []string{"in", "out"}, ts.normalizer.args)
	ns := ts.normalizer.settings
	assert.Equal(t, 201, ns.TargetFrames)
	assert.Equal(t, domain.AxisSet{domain.AxisX, domain.AxisY, domain.AxisZ}, ns.ShiftAxes)
	assert.Equal(t, 3, ns.SkipLines)
	assert.Equal(t, "trial*.csv", ns.Pattern)
}

func TestNormalizeCmd_StoredSettingsApply(t *testing.T) {
	ts := setupServices(t)
	require.NoError(t, ts.settings.Set("normalize.target_frames", "51"))

	_, err := execute(t, "normalize")

	require.NoError(t, err)
	assert.Equal(t, 51, ts.normalizer.settings.TargetFrames)
}

func TestNormalizeCmd_InvalidFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"bad axis", []string{"normalize", "--shift-axes", "W"}},
		{"too few frames", []string{"normalize", "--frames", "1"}},
		{"negative skip", []string{"normalize", "--skip-lines", "-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := setupServices(t)

			_, err := execute(t, tt.args...)

			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Nil(t, ts.normalizer.args)
		})
	}
}
