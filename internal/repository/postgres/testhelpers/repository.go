package testhelpers

import (
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/vessel-monitor/internal/domain/repository"
	"github.com/vessel-monitor/internal/repository/postgres"
)

// NewDBForTest creates a postgres.DB with test database and logger
func NewDBForTest(db *sqlx.DB, logger *zap.Logger) *postgres.DB {
	return postgres.NewDBForTest(db, logger)
}

// NewLedgerRepositoryForTest creates a ledger repository with test database and logger
func NewLedgerRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.LedgerRepository {
	pgDB := NewDBForTest(db, logger)
	return postgres.NewLedgerRepository(pgDB)
}
