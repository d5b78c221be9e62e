package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/mocapprep/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/mocapprep/internal/core/domain"
	"github.com/custodia-labs/mocapprep/internal/core/ports/driving"
	"github.com/custodia-labs/mocapprep/internal/core/services"
)

// mockExtractor records its inputs and returns fixed results.
type mockExtractor struct {
	settings domain.ExtractSettings
	args     []string
	results  []domain.Result
	err      error
}

func (m *mockExtractor) ExtractAll(_ context.Context, manifestPath, inputDir, outputDir string) ([]domain.Result, error) {
	m.args = []string{manifestPath, inputDir, outputDir}
	return m.results, m.err
}

func (m *mockExtractor) Extract(context.Context, domain.ManifestEntry, string, string) (string, error) {
	return "", errors.New("not implemented")
}

// mockNormalizer records its inputs and returns fixed results.
type mockNormalizer struct {
	settings domain.NormalizeSettings
	args     []string
	results  []domain.Result
	err      error
}

func (m *mockNormalizer) ProcessAll(_ context.Context, inputDir, outputDir string) ([]domain.Result, error) {
	m.args = []string{inputDir, outputDir}
	return m.results, m.err
}

func (m *mockNormalizer) ProcessFile(context.Context, string, string) (string, error) {
	return "", errors.New("not implemented")
}

type testServices struct {
	settings   *services.SettingsService
	extractor  *mockExtractor
	normalizer *mockNormalizer
	ledger     *memory.RunLedger
}

// setupServices installs test services and restores globals afterwards.
func setupServices(t *testing.T) *testServices {
	t.Helper()

	ts := &testServices{
		settings:   services.NewSettingsService(memory.NewConfigStore()),
		extractor:  &mockExtractor{},
		normalizer: &mockNormalizer{},
		ledger:     memory.NewRunLedger(),
	}

	old := app
	app = &Services{
		Settings: ts.settings,
		History:  services.NewHistoryService(ts.ledger),
		NewExtractor: func(s domain.ExtractSettings) driving.FrameExtractor {
			ts.extractor.settings = s
			return ts.extractor
		},
		NewNormalizer: func(s domain.NormalizeSettings) driving.TrialNormalizer {
			ts.normalizer.settings = s
			return ts.normalizer
		},
	}
	t.Cleanup(func() {
		app = old
		resetFlags(rootCmd)
	})
	return ts
}

// execute runs the root command with args and returns combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}

// resetFlags restores every flag to its default so tests stay independent.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}
