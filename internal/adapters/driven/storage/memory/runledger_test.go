package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/mocapprep/internal/core/domain"
)

func TestRunLedger_RecordAndGet(t *testing.T) {
	ledger := NewRunLedger()
	ctx := context.Background()
	run := domain.Run{
		ID:       "run-1",
		Pipeline: domain.PipelineExtract,
		Records:  []domain.RunRecord{{Source: "a.csv", Output: "out/a.csv", Success: true}},
	}

	require.NoError(t, ledger.Record(ctx, run))

	got, err := ledger.Get(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, run, *got)
}

func TestRunLedger_RecordRequiresID(t *testing.T) {
	err := NewRunLedger().Record(context.Background(), domain.Run{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRunLedger_GetNotFound(t *testing.T) {
	_, err := NewRunLedger().Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRunLedger_ListNewestFirst(t *testing.T) {
	ledger := NewRunLedger()
	ctx := context.Background()
	base := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	for i, id := range []string{"old", "mid", "new"} {
		require.NoError(t, ledger.Record(ctx, domain.Run{ID: id, StartedAt: base.Add(time.Duration(i) * time.Hour)}))
	}

	runs, err := ledger.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "new", runs[0].ID)
	assert.Equal(t, "mid", runs[1].ID)

	all, err := ledger.List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
