package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/vessel-monitor/internal/domain"
	"github.com/vessel-monitor/internal/domain/repository"
	"github.com/vessel-monitor/internal/pkg/errors"
)

type ledgerRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

// NewLedgerRepository creates the PostgreSQL-backed violation ledger.
func NewLedgerRepository(db *DB) repository.LedgerRepository {
	return &ledgerRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

const violationColumns = `
	id, boat_id, license_number, contact_number,
	zone_id, zone_name, type, severity,
	distance_m, eta_minutes, lat, lon,
	occurred_at, acknowledged, resolved_at, auto_reported, created_at
`

// Append stores a new violation record. Append only: the id is fresh per
// record, so conflicts indicate a caller bug and surface as errors.
func (r *ledgerRepository) Append(ctx context.Context, record *domain.ViolationRecord) error {
	query := `
		INSERT INTO violations (
			id, boat_id, license_number, contact_number,
			zone_id, zone_name, type, severity,
			distance_m, eta_minutes, lat, lon,
			occurred_at, acknowledged, resolved_at, auto_reported, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`

	var eta sql.NullFloat64
	if record.EstimatedMinutesToViolation != nil {
		eta = sql.NullFloat64{Float64: *record.EstimatedMinutesToViolation, Valid: true}
	}
	var resolvedAt sql.NullTime
	if record.ResolvedAt != nil {
		resolvedAt = sql.NullTime{Time: *record.ResolvedAt, Valid: true}
	}

	_, err := r.db.ExecContext(ctx, query,
		record.ID, record.Vessel.BoatID, record.Vessel.LicenseNumber, record.Vessel.ContactNumber,
		record.ZoneID, record.ZoneName, record.Type, record.Severity,
		record.DistanceM, eta, record.Location.Lat, record.Location.Lon,
		record.OccurredAt, record.Acknowledged, resolvedAt, record.AutoReported, record.CreatedAt,
	)
	if err != nil {
		r.logger.Error("Failed to append violation",
			zap.String("id", record.ID.String()),
			zap.String("zone_id", record.ZoneID),
			zap.Error(err))
		return fmt.Errorf("append violation: %w", err)
	}

	return nil
}

// GetByID returns a single record.
func (r *ledgerRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ViolationRecord, error) {
	query := `SELECT ` + violationColumns + ` FROM violations WHERE id = $1`

	record, err := r.scanRecord(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, errors.ErrViolationNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get violation", zap.String("id", id.String()), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return record, nil
}

// Acknowledge marks a record as acknowledged. Idempotent.
func (r *ledgerRepository) Acknowledge(ctx context.Context, id uuid.UUID) (*domain.ViolationRecord, error) {
	query := `
		UPDATE violations SET acknowledged = TRUE
		WHERE id = $1
		RETURNING ` + violationColumns

	record, err := r.scanRecord(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, errors.ErrViolationNotFound
	}
	if err != nil {
		r.logger.Error("Failed to acknowledge violation", zap.String("id", id.String()), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return record, nil
}

// Resolve stamps a record with a resolution time. The first resolution
// time wins; resolving again is a no-op.
func (r *ledgerRepository) Resolve(ctx context.Context, id uuid.UUID) (*domain.ViolationRecord, error) {
	query := `
		UPDATE violations SET resolved_at = COALESCE(resolved_at, NOW())
		WHERE id = $1
		RETURNING ` + violationColumns

	record, err := r.scanRecord(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, errors.ErrViolationNotFound
	}
	if err != nil {
		r.logger.Error("Failed to resolve violation", zap.String("id", id.String()), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return record, nil
}

// Query returns records matching the filter, newest first.
func (r *ledgerRepository) Query(ctx context.Context, filter domain.ViolationFilter) ([]*domain.ViolationRecord, error) {
	query := `SELECT ` + violationColumns + ` FROM violations WHERE 1=1`

	args := []interface{}{}
	argIndex := 1

	if filter.BoatID != "" {
		query += fmt.Sprintf(" AND boat_id = $%d", argIndex)
		args = append(args, filter.BoatID)
		argIndex++
	}
	if filter.ZoneID != "" {
		query += fmt.Sprintf(" AND zone_id = $%d", argIndex)
		args = append(args, filter.ZoneID)
		argIndex++
	}
	if filter.Severity != "" {
		query += fmt.Sprintf(" AND severity = $%d", argIndex)
		args = append(args, filter.Severity)
		argIndex++
	}
	if filter.Type != "" {
		query += fmt.Sprintf(" AND type = $%d", argIndex)
		args = append(args, filter.Type)
		argIndex++
	}
	if filter.From != nil {
		query += fmt.Sprintf(" AND occurred_at >= $%d", argIndex)
		args = append(args, *filter.From)
		argIndex++
	}
	if filter.To != nil {
		query += fmt.Sprintf(" AND occurred_at <= $%d", argIndex)
		args = append(args, *filter.To)
		argIndex++
	}
	if filter.Acknowledged != nil {
		query += fmt.Sprintf(" AND acknowledged = $%d", argIndex)
		args = append(args, *filter.Acknowledged)
		argIndex++
	}
	if filter.Resolved != nil {
		if *filter.Resolved {
			query += " AND resolved_at IS NOT NULL"
		} else {
			query += " AND resolved_at IS NULL"
		}
	}

	query += " ORDER BY occurred_at DESC"

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIndex)
		args = append(args, filter.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to query violations", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	var records []*domain.ViolationRecord
	for rows.Next() {
		record, err := r.scanRecord(rows)
		if err != nil {
			r.logger.Error("Failed to scan violation row", zap.Error(err))
			return nil, errors.ErrDatabaseError
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Violation rows iteration failed", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return records, nil
}

// CountOpen returns the number of unresolved records for a vessel.
func (r *ledgerRepository) CountOpen(ctx context.Context, boatID string) (int, error) {
	query := `SELECT COUNT(*) FROM violations WHERE boat_id = $1 AND resolved_at IS NULL`

	var count int
	if err := r.db.QueryRowContext(ctx, query, boatID).Scan(&count); err != nil {
		r.logger.Error("Failed to count open violations",
			zap.String("boat_id", boatID), zap.Error(err))
		return 0, errors.ErrDatabaseError
	}
	return count, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *ledgerRepository) scanRecord(row rowScanner) (*domain.ViolationRecord, error) {
	var record domain.ViolationRecord
	var eta sql.NullFloat64
	var resolvedAt sql.NullTime

	err := row.Scan(
		&record.ID, &record.Vessel.BoatID, &record.Vessel.LicenseNumber, &record.Vessel.ContactNumber,
		&record.ZoneID, &record.ZoneName, &record.Type, &record.Severity,
		&record.DistanceM, &eta, &record.Location.Lat, &record.Location.Lon,
		&record.OccurredAt, &record.Acknowledged, &resolvedAt, &record.AutoReported, &record.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if eta.Valid {
		record.EstimatedMinutesToViolation = &eta.Float64
	}
	if resolvedAt.Valid {
		record.ResolvedAt = &resolvedAt.Time
	}
	return &record, nil
}
