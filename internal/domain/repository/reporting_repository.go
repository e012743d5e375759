package repository

import (
	"context"

	"github.com/vessel-monitor/internal/domain"
)

// RegulatoryReporter forwards critical violations to the coast guard
// reporting endpoint.
type RegulatoryReporter interface {
	// Report submits one violation. A non-nil error means the report was
	// not accepted and may be retried.
	Report(ctx context.Context, record *domain.ViolationRecord) error
}
