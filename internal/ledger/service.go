// Package ledger fronts the violation store with a bounded in-memory
// retry queue, so a persistence hiccup delays records instead of
// silently dropping them.
package ledger

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vessel-monitor/internal/domain"
	"github.com/vessel-monitor/internal/domain/repository"
	"github.com/vessel-monitor/internal/pkg/metrics"
)

const (
	DefaultMaxPending  = 100
	DefaultMaxAttempts = 5
)

type pendingWrite struct {
	record   *domain.ViolationRecord
	attempts int
}

type Service struct {
	repo        repository.LedgerRepository
	logger      *zap.Logger
	metrics     *metrics.Metrics
	maxPending  int
	maxAttempts int

	mu      sync.Mutex
	pending []pendingWrite
}

type Options struct {
	// MaxPending caps the retry queue; beyond it the oldest write is
	// dropped and the loss is logged.
	MaxPending int

	// MaxAttempts caps how often one record is retried before giving up.
	MaxAttempts int
}

func NewService(repo repository.LedgerRepository, logger *zap.Logger, m *metrics.Metrics, opts Options) *Service {
	if opts.MaxPending <= 0 {
		opts.MaxPending = DefaultMaxPending
	}
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = DefaultMaxAttempts
	}
	return &Service{
		repo:        repo,
		logger:      logger,
		metrics:     m,
		maxPending:  opts.MaxPending,
		maxAttempts: opts.MaxAttempts,
	}
}

// Append persists a record. A failed write is queued for retry and never
// propagates an error upstream; the alert pipeline must not stall on
// storage.
func (s *Service) Append(ctx context.Context, record *domain.ViolationRecord) error {
	if err := s.repo.Append(ctx, record); err != nil {
		s.logger.Error("ledger write failed, queueing for retry",
			zap.String("violation_id", record.ID.String()),
			zap.String("zone_id", record.ZoneID),
			zap.Error(err))
		s.enqueue(record)
	}
	return nil
}

func (s *Service) enqueue(record *domain.ViolationRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.pending) >= s.maxPending {
		dropped := s.pending[0]
		s.pending = s.pending[1:]
		s.logger.Error("ledger retry queue full, dropping oldest record",
			zap.String("violation_id", dropped.record.ID.String()))
	}
	s.pending = append(s.pending, pendingWrite{record: record})
	s.metrics.SetLedgerPending(len(s.pending))
}

// Flush retries every queued write once. Records that exhaust their
// attempt budget are dropped with a log entry; losing data on a dead
// store is an accepted risk, hiding it is not. Returns how many writes
// were persisted.
func (s *Service) Flush(ctx context.Context) int {
	s.mu.Lock()
	queued := s.pending
	s.pending = nil
	s.mu.Unlock()

	flushed := 0
	var remaining []pendingWrite
	for _, w := range queued {
		if err := s.repo.Append(ctx, w.record); err != nil {
			w.attempts++
			if w.attempts >= s.maxAttempts {
				s.logger.Error("ledger record dropped after retry budget",
					zap.String("violation_id", w.record.ID.String()),
					zap.Int("attempts", w.attempts),
					zap.Error(err))
				continue
			}
			remaining = append(remaining, w)
			continue
		}
		flushed++
		s.metrics.IncLedgerRetry()
	}

	s.mu.Lock()
	s.pending = append(remaining, s.pending...)
	s.metrics.SetLedgerPending(len(s.pending))
	s.mu.Unlock()
	return flushed
}

// PendingCount returns the retry queue depth.
func (s *Service) PendingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// GetByID returns a single record.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*domain.ViolationRecord, error) {
	return s.repo.GetByID(ctx, id)
}

// Acknowledge marks a record as acknowledged.
func (s *Service) Acknowledge(ctx context.Context, id uuid.UUID) (*domain.ViolationRecord, error) {
	return s.repo.Acknowledge(ctx, id)
}

// Resolve stamps a record with a resolution time.
func (s *Service) Resolve(ctx context.Context, id uuid.UUID) (*domain.ViolationRecord, error) {
	return s.repo.Resolve(ctx, id)
}

// Query returns records matching the filter, newest first. Queued writes
// are not visible until flushed.
func (s *Service) Query(ctx context.Context, filter domain.ViolationFilter) ([]*domain.ViolationRecord, error) {
	return s.repo.Query(ctx, filter)
}

// CountOpen returns the number of unresolved records for a vessel.
func (s *Service) CountOpen(ctx context.Context, boatID string) (int, error) {
	return s.repo.CountOpen(ctx, boatID)
}
