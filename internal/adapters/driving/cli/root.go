package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/mocapprep/internal/core/domain"
	"github.com/custodia-labs/mocapprep/internal/core/ports/driving"
	"github.com/custodia-labs/mocapprep/internal/logger"
)

// version is overridden at build time via -ldflags.
var version = "dev"

// Services holds the driving ports the commands call. The pipeline
// services are built per invocation so command-line flags can override
// stored settings.
type Services struct {
	Settings      driving.SettingsService
	History       driving.RunHistory
	NewExtractor  func(domain.ExtractSettings) driving.FrameExtractor
	NewNormalizer func(domain.NormalizeSettings) driving.TrialNormalizer

	// Close releases resources held by the services. May be nil.
	Close func() error
}

// Bootstrap builds the services once global flags are parsed.
type Bootstrap func(configDir string) (*Services, error)

var (
	verbose   bool
	configDir string

	bootstrap Bootstrap
	app       *Services
)

var rootCmd = &cobra.Command{
	Use:   "mocapprep",
	Short: "Prepare motion capture trials for analysis",
	Long: `mocapprep cuts manifest-listed frame ranges out of motion capture
exports and normalizes trials: re-centred on the subject, grouped by
axis and resampled to a fixed number of frames.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug output")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.mocapprep)")
}

// setup applies global flags and builds the services on first use.
func setup(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)
	if app != nil || bootstrap == nil {
		return nil
	}
	svc, err := bootstrap(configDir)
	if err != nil {
		return err
	}
	app = svc
	return nil
}

// Execute runs the root command.
func Execute(ctx context.Context, v string, boot Bootstrap) error {
	if v != "" {
		version = v
	}
	bootstrap = boot
	defer func() {
		if app != nil && app.Close != nil {
			if err := app.Close(); err != nil {
				logger.Warn("closing services: %v", err)
			}
		}
	}()
	return rootCmd.ExecuteContext(ctx)
}

func settingsService() (driving.SettingsService, error) {
	if app == nil || app.Settings == nil {
		return nil, errors.New("settings service not configured")
	}
	return app.Settings, nil
}

func historyService() (driving.RunHistory, error) {
	if app == nil || app.History == nil {
		return nil, errors.New("history service not configured")
	}
	return app.History, nil
}

// commandContext returns the command's context, falling back to Background
// when the command was executed without one.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
