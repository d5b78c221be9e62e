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

// Ensure Extractor implements the interface.
var _ driving.FrameExtractor = (*Extractor)(nil)

// Extractor cuts manifest-listed frame ranges out of capture files.
type Extractor struct {
	store     driven.TrialStore
	manifests driven.ManifestReader
	settings  domain.ExtractSettings
	ledger    driven.RunLedger
}

// NewExtractor creates a new extractor. ledger may be nil.
func NewExtractor(
	store driven.TrialStore,
	manifests driven.ManifestReader,
	settings domain.ExtractSettings,
	ledger driven.RunLedger,
) *Extractor {
	return &Extractor{
		store:     store,
		manifests: manifests,
		settings:  settings,
		ledger:    ledger,
	}
}

// ExtractAll processes every manifest row in order. A failing row is
// logged and reported in its Result; the remaining rows still run.
// The returned error is non-nil only when the batch cannot start or the
// context is cancelled between rows.
func (e *Extractor) ExtractAll(
	ctx context.Context,
	manifestPath, inputDir, outputDir string,
) ([]domain.Result, error) {
	if err := e.settings.Validate(); err != nil {
		return nil, err
	}
	if err := e.store.MkdirAll(outputDir); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	entries, err := e.manifests.Read(ctx, manifestPath)
	if err != nil {
		return nil, fmt.Errorf("read manifest %s: %w", manifestPath, err)
	}

	logger.Section("Extract")
	logger.Debug("manifest %s: %d entries", manifestPath, len(entries))

	started := time.Now().UTC()
	results := make([]domain.Result, 0, len(entries))
	var batchErr error

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			batchErr = err
			break
		}

		result := domain.Result{Source: filepath.Join(inputDir, entry.InputName())}
		result.Output, result.Err = e.Extract(ctx, entry, inputDir, outputDir)
		if result.Err != nil {
			logger.Warn("%s: %v", entry.FileName, result.Err)
		} else {
			logger.Info("extracted frames %d-%d from %s to %s",
				entry.StartFrame, entry.StopFrame, entry.InputName(), result.Output)
		}
		results = append(results, result)
	}

	logger.Info("extracted %d of %d manifest entries", countOK(results), len(entries))
	recordRun(ctx, e.ledger, domain.PipelineExtract, started, results)

	return results, batchErr
}

// Extract writes the entry's frame range, preceded by the preamble and the
// column header, to outputDir and returns the written path.
func (e *Extractor) Extract(
	ctx context.Context,
	entry domain.ManifestEntry,
	inputDir, outputDir string,
) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := entry.Validate(); err != nil {
		return "", err
	}

	inputPath := filepath.Join(inputDir, entry.InputName())
	raw, err := e.store.ReadRaw(inputPath, e.settings.PreambleLines)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", inputPath, err)
	}

	rows, err := raw.Frames(entry.StartFrame, entry.StopFrame)
	if err != nil {
		return "", err
	}

	segment := &domain.RawTrial{
		Preamble: raw.Preamble,
		Header:   raw.Header,
		Rows:     rows,
	}

	outputPath := filepath.Join(outputDir, entry.OutputName())
	if err := e.store.WriteRaw(outputPath, segment); err != nil {
		return "", fmt.Errorf("write %s: %w", outputPath, err)
	}

	logger.Debug("%s: %d rows, %d columns", outputPath, len(rows), len(raw.Header))
	return outputPath, nil
}
