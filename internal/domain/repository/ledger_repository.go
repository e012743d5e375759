package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/vessel-monitor/internal/domain"
)

// LedgerRepository persists the append-only violation ledger.
type LedgerRepository interface {
	// Append stores a new violation record. Existing records are never
	// overwritten.
	Append(ctx context.Context, record *domain.ViolationRecord) error

	// GetByID returns a single record.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ViolationRecord, error)

	// Acknowledge marks a record as acknowledged by an operator.
	Acknowledge(ctx context.Context, id uuid.UUID) (*domain.ViolationRecord, error)

	// Resolve stamps a record with a resolution time.
	Resolve(ctx context.Context, id uuid.UUID) (*domain.ViolationRecord, error)

	// Query returns records matching the filter, newest first.
	Query(ctx context.Context, filter domain.ViolationFilter) ([]*domain.ViolationRecord, error)

	// CountOpen returns the number of unresolved records for a vessel.
	CountOpen(ctx context.Context, boatID string) (int, error)
}
