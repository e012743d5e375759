package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vessel-monitor/internal/domain"
	"github.com/vessel-monitor/internal/pkg/errors"
	"github.com/vessel-monitor/internal/repository/memory"
)

func testRecord(boatID, zoneID string, occurredAt time.Time) *domain.ViolationRecord {
	return &domain.ViolationRecord{
		ID:         uuid.New(),
		Vessel:     domain.VesselMeta{BoatID: boatID},
		ZoneID:     zoneID,
		ZoneName:   "Test Zone",
		Type:       domain.EventViolation,
		Severity:   domain.SeverityCritical,
		DistanceM:  -100,
		Location:   domain.GeoPoint{Lat: 18.93, Lon: 72.82},
		OccurredAt: occurredAt,
		CreatedAt:  occurredAt,
	}
}

func TestLedgerRepository_AppendAndGet(t *testing.T) {
	repo := memory.NewLedgerRepository()
	ctx := context.Background()

	record := testRecord("MH-1234", "zone_a", time.Now().UTC())
	require.NoError(t, repo.Append(ctx, record))

	got, err := repo.GetByID(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, record.ID, got.ID)
	assert.Equal(t, "MH-1234", got.Vessel.BoatID)

	// Mutating the returned copy must not touch stored state
	got.Acknowledged = true
	again, err := repo.GetByID(ctx, record.ID)
	require.NoError(t, err)
	assert.False(t, again.Acknowledged)
}

func TestLedgerRepository_GetByID_NotFound(t *testing.T) {
	repo := memory.NewLedgerRepository()

	got, err := repo.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, errors.ErrViolationNotFound)
	assert.Nil(t, got)
}

func TestLedgerRepository_AcknowledgeAndResolve(t *testing.T) {
	repo := memory.NewLedgerRepository()
	ctx := context.Background()

	record := testRecord("MH-1234", "zone_a", time.Now().UTC())
	require.NoError(t, repo.Append(ctx, record))

	acked, err := repo.Acknowledge(ctx, record.ID)
	require.NoError(t, err)
	assert.True(t, acked.Acknowledged)

	first, err := repo.Resolve(ctx, record.ID)
	require.NoError(t, err)
	require.NotNil(t, first.ResolvedAt)

	// Second resolve keeps the original timestamp
	time.Sleep(5 * time.Millisecond)
	second, err := repo.Resolve(ctx, record.ID)
	require.NoError(t, err)
	assert.True(t, first.ResolvedAt.Equal(*second.ResolvedAt))
}

func TestLedgerRepository_QueryFiltersAndOrder(t *testing.T) {
	repo := memory.NewLedgerRepository()
	ctx := context.Background()

	base := time.Now().UTC()
	older := testRecord("MH-1234", "zone_a", base.Add(-time.Hour))
	newer := testRecord("MH-1234", "zone_b", base)
	other := testRecord("TN-0042", "zone_a", base.Add(-30*time.Minute))

	for _, r := range []*domain.ViolationRecord{older, newer, other} {
		require.NoError(t, repo.Append(ctx, r))
	}

	records, err := repo.Query(ctx, domain.ViolationFilter{BoatID: "MH-1234"})
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, newer.ID, records[0].ID, "newest first")
	assert.Equal(t, older.ID, records[1].ID)

	records, err = repo.Query(ctx, domain.ViolationFilter{ZoneID: "zone_a", Limit: 1})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, other.ID, records[0].ID)
}

func TestLedgerRepository_CountOpen(t *testing.T) {
	repo := memory.NewLedgerRepository()
	ctx := context.Background()

	first := testRecord("MH-1234", "zone_a", time.Now().UTC())
	second := testRecord("MH-1234", "zone_b", time.Now().UTC())
	require.NoError(t, repo.Append(ctx, first))
	require.NoError(t, repo.Append(ctx, second))

	count, err := repo.CountOpen(ctx, "MH-1234")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	_, err = repo.Resolve(ctx, first.ID)
	require.NoError(t, err)

	count, err = repo.CountOpen(ctx, "MH-1234")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
