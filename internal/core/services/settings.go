package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/mocapprep/internal/core/domain"
	"github.com/custodia-labs/mocapprep/internal/core/ports/driven"
	"github.com/custodia-labs/mocapprep/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyExtractOutputDir      = "extract.output_dir"
	KeyExtractPreambleLines  = "extract.preamble_lines"
	KeyNormalizeInputDir     = "normalize.input_dir"
	KeyNormalizeOutputDir    = "normalize.output_dir"
	KeyNormalizePattern      = "normalize.pattern"
	KeyNormalizeOutputPrefix = "normalize.output_prefix"
	KeyNormalizeTargetFrames = "normalize.target_frames"
	KeyNormalizeShiftAxes    = "normalize.shift_axes"
	KeyNormalizeLandmarks    = "normalize.landmarks"
	KeyNormalizeSkipLines    = "normalize.skip_lines"
	KeyLedgerEnabled         = "ledger.enabled"
)

// SettingsService manages pipeline settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current settings. Missing or invalid values fall back to
// the defaults.
func (s *SettingsService) Get() (*domain.Settings, error) {
	defaults := domain.DefaultSettings()

	settings := &domain.Settings{
		Extract: domain.ExtractSettings{
			OutputDir:     s.getString(KeyExtractOutputDir, defaults.Extract.OutputDir),
			PreambleLines: s.getInt(KeyExtractPreambleLines, defaults.Extract.PreambleLines, 0),
		},
		Normalize: domain.NormalizeSettings{
			InputDir:     s.getString(KeyNormalizeInputDir, defaults.Normalize.InputDir),
			OutputDir:    s.getString(KeyNormalizeOutputDir, defaults.Normalize.OutputDir),
			Pattern:      s.getString(KeyNormalizePattern, defaults.Normalize.Pattern),
			OutputPrefix: s.getPrefix(defaults.Normalize.OutputPrefix),
			TargetFrames: s.getInt(KeyNormalizeTargetFrames, defaults.Normalize.TargetFrames, 2),
			ShiftAxes:    s.getAxes(defaults.Normalize.ShiftAxes),
			Landmarks:    s.getStrings(KeyNormalizeLandmarks, defaults.Normalize.Landmarks),
			SkipLines:    s.getInt(KeyNormalizeSkipLines, defaults.Normalize.SkipLines, 0),
		},
		Ledger: domain.LedgerSettings{
			Enabled: s.getBool(KeyLedgerEnabled, defaults.Ledger.Enabled),
		},
	}

	return settings, nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.Settings {
	return domain.DefaultSettings()
}

// Keys returns all recognised setting keys in display order.
func (s *SettingsService) Keys() []string {
	return []string{
		KeyExtractOutputDir,
		KeyExtractPreambleLines,
		KeyNormalizeInputDir,
		KeyNormalizeOutputDir,
		KeyNormalizePattern,
		KeyNormalizeOutputPrefix,
		KeyNormalizeTargetFrames,
		KeyNormalizeShiftAxes,
		KeyNormalizeLandmarks,
		KeyNormalizeSkipLines,
		KeyLedgerEnabled,
	}
}

// Set parses value according to the key's type and persists it.
// List values are comma separated.
func (s *SettingsService) Set(key, value string) error {
	parsed, err := parseSetting(key, strings.TrimSpace(value))
	if err != nil {
		return err
	}
	if err := s.configStore.Set(key, parsed); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

func parseSetting(key, value string) (any, error) {
	switch key {
	case KeyExtractOutputDir, KeyNormalizeInputDir, KeyNormalizeOutputDir, KeyNormalizePattern:
		if value == "" {
			return nil, fmt.Errorf("%w: %s cannot be empty", domain.ErrInvalidInput, key)
		}
		return value, nil

	case KeyNormalizeOutputPrefix:
		return value, nil

	case KeyExtractPreambleLines, KeyNormalizeSkipLines:
		return parseInt(key, value, 0)

	case KeyNormalizeTargetFrames:
		return parseInt(key, value, 2)

	case KeyNormalizeShiftAxes:
		axes, err := domain.ParseAxisSet(splitList(value))
		if err != nil {
			return nil, err
		}
		return axes.Strings(), nil

	case KeyNormalizeLandmarks:
		markers := splitList(value)
		if len(markers) == 0 {
			return nil, fmt.Errorf("%w: at least one landmark marker is required", domain.ErrInvalidInput)
		}
		return markers, nil

	case KeyLedgerEnabled:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("%w: %s expects true or false, got %q", domain.ErrInvalidInput, key, value)
		}
		return b, nil

	default:
		return nil, fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}
}

func parseInt(key, value string, lowest int) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s expects an integer, got %q", domain.ErrInvalidInput, key, value)
	}
	if n < lowest {
		return 0, fmt.Errorf("%w: %s must be >= %d", domain.ErrInvalidInput, key, lowest)
	}
	return n, nil
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

// getPrefix allows an explicitly stored empty prefix.
func (s *SettingsService) getPrefix(defaultVal string) string {
	val, exists := s.configStore.Get(KeyNormalizeOutputPrefix)
	if !exists {
		return defaultVal
	}
	str, ok := val.(string)
	if !ok {
		return defaultVal
	}
	return str
}

func (s *SettingsService) getInt(key string, defaultVal, lowest int) int {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	val := s.configStore.GetInt(key)
	if val < lowest {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	val, exists := s.configStore.Get(key)
	if !exists {
		return defaultVal
	}
	b, ok := val.(bool)
	if !ok {
		return defaultVal
	}
	return b
}

func (s *SettingsService) getStrings(key string, defaultVal []string) []string {
	val := s.configStore.GetStringSlice(key)
	if len(val) == 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getAxes(defaultVal domain.AxisSet) domain.AxisSet {
	names := s.configStore.GetStringSlice(KeyNormalizeShiftAxes)
	if names == nil {
		return defaultVal
	}
	axes, err := domain.ParseAxisSet(names)
	if err != nil {
		return defaultVal
	}
	return axes
}
