package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/mocapprep/internal/core/domain"
	"github.com/custodia-labs/mocapprep/internal/core/ports/driven"
)

// Ensure RunLedger implements the interface.
var _ driven.RunLedger = (*RunLedger)(nil)

// RunLedger is an in-memory implementation of driven.RunLedger.
type RunLedger struct {
	mu   sync.RWMutex
	runs map[string]domain.Run
}

// NewRunLedger creates a new in-memory run ledger.
func NewRunLedger() *RunLedger {
	return &RunLedger{
		runs: make(map[string]domain.Run),
	}
}

// Record stores or replaces a run.
func (l *RunLedger) Record(_ context.Context, run domain.Run) error {
	if run.ID == "" {
		return domain.ErrInvalidInput
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	run.Records = append([]domain.RunRecord(nil), run.Records...)
	l.runs[run.ID] = run
	return nil
}

// List returns the most recent runs, newest first.
func (l *RunLedger) List(_ context.Context, limit int) ([]domain.Run, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	runs := make([]domain.Run, 0, len(l.runs))
	for _, run := range l.runs {
		runs = append(runs, run)
	}
	sort.Slice(runs, func(i, j int) bool {
		return runs[i].StartedAt.After(runs[j].StartedAt)
	})
	if limit > 0 && len(runs) > limit {
		runs = runs[:limit]
	}
	return runs, nil
}

// Get retrieves a run by ID.
func (l *RunLedger) Get(_ context.Context, id string) (*domain.Run, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	run, ok := l.runs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &run, nil
}
