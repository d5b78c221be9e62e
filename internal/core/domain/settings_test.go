package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	assert.Equal(t, "extracted_frames", s.Extract.OutputDir)
	assert.Equal(t, 3, s.Extract.PreambleLines)
	assert.Equal(t, "extracted_frames", s.Normalize.InputDir)
	assert.Equal(t, "processed", s.Normalize.OutputDir)
	assert.Equal(t, "*.csv", s.Normalize.Pattern)
	assert.Equal(t, "processed_", s.Normalize.OutputPrefix)
	assert.Equal(t, 101, s.Normalize.TargetFrames)
	assert.Equal(t, AxisSet{AxisX, AxisY}, s.Normalize.ShiftAxes)
	assert.Equal(t, []string{"Subj1:LHEE", "Subj1:RHEE"}, s.Normalize.Landmarks)
	assert.Equal(t, 0, s.Normalize.SkipLines)
	assert.True(t, s.Ledger.Enabled)
}

func TestDefaultSettings_Valid(t *testing.T) {
	s := DefaultSettings()

	assert.NoError(t, s.Extract.Validate())
	assert.NoError(t, s.Normalize.Validate())
}

func TestNormalizeSettings_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*NormalizeSettings)
	}{
		{"one target frame", func(s *NormalizeSettings) { s.TargetFrames = 1 }},
		{"no landmarks", func(s *NormalizeSettings) { s.Landmarks = nil }},
		{"negative skip", func(s *NormalizeSettings) { s.SkipLines = -1 }},
		{"empty pattern", func(s *NormalizeSettings) { s.Pattern = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings().Normalize
			tt.modify(&s)
			assert.ErrorIs(t, s.Validate(), ErrInvalidInput)
		})
	}
}

func TestExtractSettings_Validate(t *testing.T) {
	s := ExtractSettings{PreambleLines: -1}
	assert.ErrorIs(t, s.Validate(), ErrInvalidInput)
}
