package services

import (
	"context"

	"github.com/custodia-labs/mocapprep/internal/core/domain"
	"github.com/custodia-labs/mocapprep/internal/core/ports/driven"
	"github.com/custodia-labs/mocapprep/internal/core/ports/driving"
)

// Ensure HistoryService implements the interface.
var _ driving.RunHistory = (*HistoryService)(nil)

// HistoryService reads recorded runs from the ledger.
type HistoryService struct {
	ledger driven.RunLedger
}

// NewHistoryService creates a new history service. A nil ledger yields an
// empty history.
func NewHistoryService(ledger driven.RunLedger) *HistoryService {
	return &HistoryService{ledger: ledger}
}

// Recent returns up to limit runs, newest first.
func (s *HistoryService) Recent(ctx context.Context, limit int) ([]domain.Run, error) {
	if s.ledger == nil {
		return nil, nil
	}
	return s.ledger.List(ctx, limit)
}

// Get retrieves a run by ID.
func (s *HistoryService) Get(ctx context.Context, id string) (*domain.Run, error) {
	if s.ledger == nil {
		return nil, domain.ErrNotFound
	}
	return s.ledger.Get(ctx, id)
}
