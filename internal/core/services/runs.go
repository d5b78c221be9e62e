package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/mocapprep/internal/core/domain"
	"github.com/custodia-labs/mocapprep/internal/core/ports/driven"
	"github.com/custodia-labs/mocapprep/internal/logger"
)

// recordRun stores a finished batch in the ledger. A nil ledger disables
// recording. Ledger failures are logged and never fail the batch.
func recordRun(
	ctx context.Context,
	ledger driven.RunLedger,
	pipeline domain.Pipeline,
	started time.Time,
	results []domain.Result,
) string {
	if ledger == nil {
		return ""
	}

	run := domain.Run{
		ID:         uuid.New().String(),
		Pipeline:   pipeline,
		StartedAt:  started,
		FinishedAt: time.Now().UTC(),
		Records:    domain.NewRunRecords(results),
	}

	// The batch may have been cancelled; the record should still land.
	if err := ledger.Record(context.WithoutCancel(ctx), run); err != nil {
		logger.Warn("recording %s run: %v", pipeline, err)
		return ""
	}
	logger.Debug("recorded %s run %s", pipeline, run.ID)
	return run.ID
}

// countOK returns the number of successful results.
func countOK(results []domain.Result) int {
	return len(domain.Outputs(results))
}
