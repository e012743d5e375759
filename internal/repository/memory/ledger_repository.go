// Package memory provides in-process repository implementations used when
// the service runs without PostgreSQL (demo mode, single-device deployments).
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vessel-monitor/internal/domain"
	"github.com/vessel-monitor/internal/domain/repository"
	"github.com/vessel-monitor/internal/pkg/errors"
)

type ledgerRepository struct {
	mu      sync.RWMutex
	records []*domain.ViolationRecord
	byID    map[uuid.UUID]*domain.ViolationRecord
}

// NewLedgerRepository creates an empty in-memory violation ledger.
func NewLedgerRepository() repository.LedgerRepository {
	return &ledgerRepository{
		byID: make(map[uuid.UUID]*domain.ViolationRecord),
	}
}

func (r *ledgerRepository) Append(ctx context.Context, record *domain.ViolationRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Copy so later caller mutations cannot reach stored state.
	stored := *record
	r.records = append(r.records, &stored)
	r.byID[stored.ID] = &stored
	return nil
}

func (r *ledgerRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ViolationRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.byID[id]
	if !ok {
		return nil, errors.ErrViolationNotFound
	}
	copied := *record
	return &copied, nil
}

func (r *ledgerRepository) Acknowledge(ctx context.Context, id uuid.UUID) (*domain.ViolationRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.byID[id]
	if !ok {
		return nil, errors.ErrViolationNotFound
	}
	record.Acknowledged = true
	copied := *record
	return &copied, nil
}

func (r *ledgerRepository) Resolve(ctx context.Context, id uuid.UUID) (*domain.ViolationRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.byID[id]
	if !ok {
		return nil, errors.ErrViolationNotFound
	}
	if record.ResolvedAt == nil {
		now := time.Now().UTC()
		record.ResolvedAt = &now
	}
	copied := *record
	return &copied, nil
}

func (r *ledgerRepository) Query(ctx context.Context, filter domain.ViolationFilter) ([]*domain.ViolationRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []*domain.ViolationRecord
	for _, record := range r.records {
		if filter.Matches(record) {
			copied := *record
			matched = append(matched, &copied)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].OccurredAt.After(matched[j].OccurredAt)
	})

	if filter.Limit > 0 && len(matched) > filter.Limit {
		matched = matched[:filter.Limit]
	}
	return matched, nil
}

func (r *ledgerRepository) CountOpen(ctx context.Context, boatID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, record := range r.records {
		if record.Vessel.BoatID == boatID && record.ResolvedAt == nil {
			count++
		}
	}
	return count, nil
}
