package domain

import "fmt"

// Default pipeline parameters.
const (
	DefaultExtractOutputDir   = "extracted_frames"
	DefaultPreambleLines      = 3
	DefaultNormalizeInputDir  = "extracted_frames"
	DefaultNormalizeOutputDir = "processed"
	DefaultPattern            = "*.csv"
	DefaultOutputPrefix       = "processed_"
	DefaultTargetFrames       = 101
	DefaultLeftLandmark       = "Subj1:LHEE"
	DefaultRightLandmark      = "Subj1:RHEE"
)

// Settings contains all pipeline settings.
type Settings struct {
	Extract   ExtractSettings
	Normalize NormalizeSettings
	Ledger    LedgerSettings
}

// ExtractSettings configures the frame extractor.
type ExtractSettings struct {
	// OutputDir receives the extracted segments.
	OutputDir string

	// PreambleLines is the number of metadata lines copied verbatim
	// before the column header.
	PreambleLines int
}

// NormalizeSettings configures the trial normalizer.
type NormalizeSettings struct {
	InputDir  string
	OutputDir string

	// Pattern selects input files by base name (glob syntax).
	Pattern string

	// OutputPrefix is prepended to the input base name.
	OutputPrefix string

	// TargetFrames is the resampled trial length.
	TargetFrames int

	// ShiftAxes are the axes re-centred on the origin. Z is excluded by
	// default so vertical positions stay lab-relative.
	ShiftAxes AxisSet

	// Landmarks are the markers whose mean midpoint defines the origin.
	Landmarks []string

	// SkipLines is the number of leading lines ignored before the column
	// header. Set it to the extractor's preamble length to read extracted
	// segments directly.
	SkipLines int
}

// LedgerSettings configures the run ledger.
type LedgerSettings struct {
	Enabled bool
}

// DefaultSettings returns the default settings.
func DefaultSettings() Settings {
	return Settings{
		Extract: ExtractSettings{
			OutputDir:     DefaultExtractOutputDir,
			PreambleLines: DefaultPreambleLines,
		},
		Normalize: NormalizeSettings{
			InputDir:     DefaultNormalizeInputDir,
			OutputDir:    DefaultNormalizeOutputDir,
			Pattern:      DefaultPattern,
			OutputPrefix: DefaultOutputPrefix,
			TargetFrames: DefaultTargetFrames,
			ShiftAxes:    AxisSet{AxisX, AxisY},
			Landmarks:    []string{DefaultLeftLandmark, DefaultRightLandmark},
			SkipLines:    0,
		},
		Ledger: LedgerSettings{
			Enabled: true,
		},
	}
}

// Validate checks the normalizer settings.
func (s NormalizeSettings) Validate() error {
	if s.TargetFrames < 2 {
		return fmt.Errorf("%w: target frames %d must be >= 2", ErrInvalidInput, s.TargetFrames)
	}
	if len(s.Landmarks) == 0 {
		return fmt.Errorf("%w: at least one landmark marker is required", ErrInvalidInput)
	}
	if s.SkipLines < 0 {
		return fmt.Errorf("%w: skip lines %d must be >= 0", ErrInvalidInput, s.SkipLines)
	}
	if s.Pattern == "" {
		return fmt.Errorf("%w: empty file pattern", ErrInvalidInput)
	}
	return nil
}

// Validate checks the extractor settings.
func (s ExtractSettings) Validate() error {
	if s.PreambleLines < 0 {
		return fmt.Errorf("%w: preamble lines %d must be >= 0", ErrInvalidInput, s.PreambleLines)
	}
	return nil
}
