// Command mocapprep prepares motion capture trials for analysis.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/custodia-labs/mocapprep/internal/adapters/driven/config/file"
	"github.com/custodia-labs/mocapprep/internal/adapters/driven/manifest"
	"github.com/custodia-labs/mocapprep/internal/adapters/driven/storage/csvfs"
	"github.com/custodia-labs/mocapprep/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/mocapprep/internal/adapters/driving/cli"
	"github.com/custodia-labs/mocapprep/internal/core/domain"
	"github.com/custodia-labs/mocapprep/internal/core/ports/driven"
	"github.com/custodia-labs/mocapprep/internal/core/ports/driving"
	"github.com/custodia-labs/mocapprep/internal/core/services"
	"github.com/custodia-labs/mocapprep/internal/logger"
	"github.com/custodia-labs/mocapprep/internal/stages"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cli.Execute(ctx, version, bootstrap); err != nil {
		stop()
		os.Exit(1)
	}
}

// bootstrap wires adapters into services.
func bootstrap(configDir string) (*cli.Services, error) {
	configStore, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	settingsService := services.NewSettingsService(configStore)

	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("reading settings: %w", err)
	}

	var ledger driven.RunLedger
	var closeLedger func() error
	if settings.Ledger.Enabled {
		dataDir := ""
		if configDir != "" {
			dataDir = filepath.Join(configDir, "data")
		}
		store, err := sqlite.NewStore(dataDir)
		if err != nil {
			// History is optional; keep the pipelines usable.
			logger.Warn("run ledger disabled: %v", err)
		} else {
			logger.Debug("run ledger at %s", store.Path())
			ledger = store
			closeLedger = store.Close
		}
	}

	trials := csvfs.NewStore(nil)
	manifests := manifest.NewReader(nil)

	return &cli.Services{
		Settings: settingsService,
		History:  services.NewHistoryService(ledger),
		NewExtractor: func(s domain.ExtractSettings) driving.FrameExtractor {
			return services.NewExtractor(trials, manifests, s, ledger)
		},
		NewNormalizer: func(s domain.NormalizeSettings) driving.TrialNormalizer {
			return services.NewNormalizer(trials, stages.NewNormalizePipeline(s), s, ledger)
		},
		Close: closeLedger,
	}, nil
}
