package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/vessel-monitor/internal/domain"
	"github.com/vessel-monitor/internal/domain/repository"
	"github.com/vessel-monitor/internal/pkg/errors"
	"github.com/vessel-monitor/internal/repository/postgres/testhelpers"
)

// LedgerRepositoryTestSuite tests all methods of LedgerRepository
type LedgerRepositoryTestSuite struct {
	suite.Suite
	testDB *testhelpers.TestDB
	repo   repository.LedgerRepository
	ctx    context.Context
}

// SetupSuite runs once before all tests in the suite
func (s *LedgerRepositoryTestSuite) SetupSuite() {
	// Initialize test database connection
	s.testDB = testhelpers.SetupTestDB(s.T())

	// Apply migrations (skip if tables already exist)
	err := s.testDB.ApplyMigrations("../../../migrations")
	s.NoError(err, "Failed to apply migrations")

	// Create repository using test helper that wraps DB with logger
	s.repo = testhelpers.NewLedgerRepositoryForTest(s.testDB.DB, s.testDB.Logger)
}

// TearDownSuite runs once after all tests in the suite
func (s *LedgerRepositoryTestSuite) TearDownSuite() {
	if s.testDB != nil {
		s.testDB.Close()
	}
}

// SetupTest runs before each test
func (s *LedgerRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	err := s.testDB.Cleanup(s.ctx)
	s.NoError(err, "Failed to cleanup test database")
}

// newRecord builds a violation record with sane defaults for the tests.
func (s *LedgerRepositoryTestSuite) newRecord(boatID, zoneID string, occurredAt time.Time) *domain.ViolationRecord {
	return &domain.ViolationRecord{
		ID: uuid.New(),
		Vessel: domain.VesselMeta{
			BoatID:        boatID,
			LicenseNumber: "MH-FSH-2214",
			ContactNumber: "+91-9820012345",
		},
		ZoneID:     zoneID,
		ZoneName:   "Mumbai Naval Exercise Area",
		Type:       domain.EventViolation,
		Severity:   domain.SeverityEmergency,
		DistanceM:  -320.5,
		Location:   domain.GeoPoint{Lat: 18.930, Lon: 72.820},
		OccurredAt: occurredAt,
		CreatedAt:  occurredAt,
	}
}

// ============================================================================
// Append / GetByID Tests
// ============================================================================

func (s *LedgerRepositoryTestSuite) TestAppend_AndGetByID() {
	// Arrange
	occurredAt := time.Now().UTC().Truncate(time.Millisecond)
	record := s.newRecord("MH-1234", "mumbai_naval_zone", occurredAt)
	eta := 4.2
	record.Type = domain.EventApproaching
	record.Severity = domain.SeverityWarning
	record.DistanceM = 4100
	record.EstimatedMinutesToViolation = &eta

	// Act
	err := s.repo.Append(s.ctx, record)
	s.NoError(err)

	got, err := s.repo.GetByID(s.ctx, record.ID)

	// Assert
	s.NoError(err)
	s.NotNil(got)
	s.Equal(record.ID, got.ID)
	s.Equal("MH-1234", got.Vessel.BoatID)
	s.Equal("MH-FSH-2214", got.Vessel.LicenseNumber)
	s.Equal("+91-9820012345", got.Vessel.ContactNumber)
	s.Equal("mumbai_naval_zone", got.ZoneID)
	s.Equal("Mumbai Naval Exercise Area", got.ZoneName)
	s.Equal(domain.EventApproaching, got.Type)
	s.Equal(domain.SeverityWarning, got.Severity)
	s.InDelta(4100, got.DistanceM, 0.001)
	s.NotNil(got.EstimatedMinutesToViolation)
	s.InDelta(4.2, *got.EstimatedMinutesToViolation, 0.001)
	s.InDelta(18.930, got.Location.Lat, 0.000001)
	s.InDelta(72.820, got.Location.Lon, 0.000001)
	s.WithinDuration(occurredAt, got.OccurredAt, time.Millisecond)
	s.False(got.Acknowledged)
	s.Nil(got.ResolvedAt)
	s.False(got.AutoReported)
}

func (s *LedgerRepositoryTestSuite) TestAppend_NilETAStoredAsNull() {
	// Arrange - a violation inside the zone has no ETA
	record := s.newRecord("MH-1234", "mumbai_naval_zone", time.Now().UTC())
	record.AutoReported = true

	// Act
	err := s.repo.Append(s.ctx, record)
	s.NoError(err)

	got, err := s.repo.GetByID(s.ctx, record.ID)

	// Assert
	s.NoError(err)
	s.Nil(got.EstimatedMinutesToViolation)
	s.True(got.AutoReported)
	s.Less(got.DistanceM, 0.0, "violation distance is signed negative inside the zone")
}

func (s *LedgerRepositoryTestSuite) TestGetByID_NotFound() {
	// Act
	got, err := s.repo.GetByID(s.ctx, uuid.New())

	// Assert
	s.ErrorIs(err, errors.ErrViolationNotFound)
	s.Nil(got)
}

// ============================================================================
// Acknowledge / Resolve Tests
// ============================================================================

func (s *LedgerRepositoryTestSuite) TestAcknowledge() {
	// Arrange
	record := s.newRecord("MH-1234", "mumbai_naval_zone", time.Now().UTC())
	s.NoError(s.repo.Append(s.ctx, record))

	// Act
	got, err := s.repo.Acknowledge(s.ctx, record.ID)

	// Assert
	s.NoError(err)
	s.True(got.Acknowledged)
	s.Nil(got.ResolvedAt, "acknowledging must not resolve the record")

	// Acknowledging again is harmless
	again, err := s.repo.Acknowledge(s.ctx, record.ID)
	s.NoError(err)
	s.True(again.Acknowledged)
}

func (s *LedgerRepositoryTestSuite) TestAcknowledge_NotFound() {
	got, err := s.repo.Acknowledge(s.ctx, uuid.New())

	s.ErrorIs(err, errors.ErrViolationNotFound)
	s.Nil(got)
}

func (s *LedgerRepositoryTestSuite) TestResolve_FirstTimestampWins() {
	// Arrange
	record := s.newRecord("MH-1234", "mumbai_naval_zone", time.Now().UTC())
	s.NoError(s.repo.Append(s.ctx, record))

	// Act
	first, err := s.repo.Resolve(s.ctx, record.ID)
	s.NoError(err)
	s.NotNil(first.ResolvedAt)

	second, err := s.repo.Resolve(s.ctx, record.ID)

	// Assert - resolving again keeps the original timestamp
	s.NoError(err)
	s.NotNil(second.ResolvedAt)
	s.Equal(first.ResolvedAt.UTC(), second.ResolvedAt.UTC())
}

// ============================================================================
// Query Tests
// ============================================================================

func (s *LedgerRepositoryTestSuite) seedQueryRecords() (older, newer, otherBoat *domain.ViolationRecord) {
	base := time.Now().UTC().Truncate(time.Millisecond)

	older = s.newRecord("MH-1234", "mumbai_naval_zone", base.Add(-2*time.Hour))
	newer = s.newRecord("MH-1234", "palk_strait_imbl", base.Add(-10*time.Minute))
	newer.Type = domain.EventEnteredBuffer
	newer.Severity = domain.SeverityCritical
	newer.DistanceM = 1800

	otherBoat = s.newRecord("TN-0042", "palk_strait_imbl", base.Add(-1*time.Hour))

	for _, r := range []*domain.ViolationRecord{older, newer, otherBoat} {
		s.NoError(s.repo.Append(s.ctx, r))
	}
	return older, newer, otherBoat
}

func (s *LedgerRepositoryTestSuite) TestQuery_ByBoatNewestFirst() {
	older, newer, _ := s.seedQueryRecords()

	records, err := s.repo.Query(s.ctx, domain.ViolationFilter{BoatID: "MH-1234"})

	s.NoError(err)
	s.Len(records, 2)
	s.Equal(newer.ID, records[0].ID, "newest record first")
	s.Equal(older.ID, records[1].ID)
}

func (s *LedgerRepositoryTestSuite) TestQuery_BySeverityAndType() {
	_, newer, _ := s.seedQueryRecords()

	records, err := s.repo.Query(s.ctx, domain.ViolationFilter{
		Severity: domain.SeverityCritical,
		Type:     domain.EventEnteredBuffer,
	})

	s.NoError(err)
	s.Len(records, 1)
	s.Equal(newer.ID, records[0].ID)
}

func (s *LedgerRepositoryTestSuite) TestQuery_TimeRange() {
	_, newer, otherBoat := s.seedQueryRecords()

	from := time.Now().UTC().Add(-90 * time.Minute)
	records, err := s.repo.Query(s.ctx, domain.ViolationFilter{From: &from})

	s.NoError(err)
	s.Len(records, 2)
	s.Equal(newer.ID, records[0].ID)
	s.Equal(otherBoat.ID, records[1].ID)
}

func (s *LedgerRepositoryTestSuite) TestQuery_UnresolvedOnlyAndLimit() {
	older, newer, _ := s.seedQueryRecords()
	_, err := s.repo.Resolve(s.ctx, older.ID)
	s.NoError(err)

	resolved := false
	records, err := s.repo.Query(s.ctx, domain.ViolationFilter{Resolved: &resolved})
	s.NoError(err)
	s.Len(records, 2)

	records, err = s.repo.Query(s.ctx, domain.ViolationFilter{Resolved: &resolved, Limit: 1})
	s.NoError(err)
	s.Len(records, 1)
	s.Equal(newer.ID, records[0].ID)
}

func (s *LedgerRepositoryTestSuite) TestQuery_NoMatches() {
	s.seedQueryRecords()

	records, err := s.repo.Query(s.ctx, domain.ViolationFilter{BoatID: "GJ-9999"})

	s.NoError(err)
	s.Empty(records)
}

// ============================================================================
// CountOpen Tests
// ============================================================================

func (s *LedgerRepositoryTestSuite) TestCountOpen() {
	older, _, _ := s.seedQueryRecords()

	count, err := s.repo.CountOpen(s.ctx, "MH-1234")
	s.NoError(err)
	s.Equal(2, count)

	_, err = s.repo.Resolve(s.ctx, older.ID)
	s.NoError(err)

	count, err = s.repo.CountOpen(s.ctx, "MH-1234")
	s.NoError(err)
	s.Equal(1, count)
}

func TestLedgerRepositorySuite(t *testing.T) {
	suite.Run(t, new(LedgerRepositoryTestSuite))
}
