package services

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/custodia-labs/mocapprep/internal/core/domain"
	"github.com/custodia-labs/mocapprep/internal/core/ports/driven"
	"github.com/custodia-labs/mocapprep/internal/core/ports/driving"
	"github.com/custodia-labs/mocapprep/internal/logger"
)

// Ensure Normalizer implements the interface.
var _ driving.TrialNormalizer = (*Normalizer)(nil)

// Normalizer runs each trial through a stage pipeline and writes the result.
type Normalizer struct {
	store    driven.TrialStore
	pipeline driven.TrialStage
	settings domain.NormalizeSettings
	ledger   driven.RunLedger
}

// NewNormalizer creates a new normalizer. pipeline is usually
// stages.NewNormalizePipeline(settings). ledger may be nil.
func NewNormalizer(
	store driven.TrialStore,
	pipeline driven.TrialStage,
	settings domain.NormalizeSettings,
	ledger driven.RunLedger,
) *Normalizer {
	return &Normalizer{
		store:    store,
		pipeline: pipeline,
		settings: settings,
		ledger:   ledger,
	}
}

// ProcessAll normalizes every file in inputDir matching the configured
// pattern, in name order. A failing file is logged and reported in its
// Result; the remaining files still run.
func (n *Normalizer) ProcessAll(ctx context.Context, inputDir, outputDir string) ([]domain.Result, error) {
	if err := n.settings.Validate(); err != nil {
		return nil, err
	}
	if err := n.store.MkdirAll(outputDir); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	files, err := n.store.List(inputDir, n.settings.Pattern)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", inputDir, err)
	}

	logger.Section("Normalize")
	logger.Debug("%s: %d files match %q", inputDir, len(files), n.settings.Pattern)

	started := time.Now().UTC()
	results := make([]domain.Result, 0, len(files))
	var batchErr error

	for _, path := range files {
		if err := ctx.Err(); err != nil {
			batchErr = err
			break
		}

		result := domain.Result{Source: path}
		result.Output, result.Err = n.ProcessFile(ctx, path, outputDir)
		if result.Err != nil {
			logger.Warn("%s: %v", filepath.Base(path), result.Err)
		} else {
			logger.Info("processed %s to %s", filepath.Base(path), result.Output)
		}
		results = append(results, result)
	}

	logger.Info("processed %d of %d files", countOK(results), len(files))
	recordRun(ctx, n.ledger, domain.PipelineNormalize, started, results)

	return results, batchErr
}

// ProcessFile normalizes one trial and writes it to outputDir under the
// configured prefix. Returns the written path.
func (n *Normalizer) ProcessFile(ctx context.Context, inputPath, outputDir string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	trial, err := n.store.ReadTrial(inputPath, n.settings.SkipLines)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", inputPath, err)
	}

	out, err := n.pipeline.Apply(ctx, trial)
	if err != nil {
		return "", err
	}

	outputPath := filepath.Join(outputDir, n.settings.OutputPrefix+filepath.Base(inputPath))
	if err := n.store.WriteTrial(outputPath, out); err != nil {
		return "", fmt.Errorf("write %s: %w", outputPath, err)
	}

	logger.Debug("%s: %d rows, %d columns", outputPath, out.Len(), len(out.Columns))
	return outputPath, nil
}
