package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vessel-monitor/internal/domain"
	"github.com/vessel-monitor/internal/ledger"
	"github.com/vessel-monitor/internal/pkg/errors"
	"github.com/vessel-monitor/internal/repository/memory"
	"github.com/vessel-monitor/internal/usecase"
	"github.com/vessel-monitor/internal/usecase/dto"
)

func newLedgerService(t *testing.T) *ledger.Service {
	t.Helper()
	return ledger.NewService(memory.NewLedgerRepository(), zap.NewNop(), nil, ledger.Options{})
}

func seedViolation(t *testing.T, svc *ledger.Service, boatID string, occurredAt time.Time) *domain.ViolationRecord {
	t.Helper()
	record := &domain.ViolationRecord{
		ID: uuid.New(),
		Vessel: domain.VesselMeta{
			BoatID:        boatID,
			LicenseNumber: "MH-FSH-2214",
			ContactNumber: "+91-9820012345",
		},
		ZoneID:     "mumbai_naval_zone",
		ZoneName:   "Mumbai Naval Restricted Zone",
		Type:       domain.EventViolation,
		Severity:   domain.SeverityEmergency,
		DistanceM:  -320.5,
		Location:   domain.GeoPoint{Lat: 18.930, Lon: 72.820},
		OccurredAt: occurredAt,
		CreatedAt:  occurredAt,
	}
	require.NoError(t, svc.Append(context.Background(), record))
	return record
}

// ============================================================================
// Query / GetByID Tests
// ============================================================================

func TestViolationUseCase_Query(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()
	svc := newLedgerService(t)
	uc := usecase.NewViolationUseCase(svc, nil, nil, logger)

	now := time.Now().UTC()
	older := seedViolation(t, svc, "MH-1234", now.Add(-2*time.Hour))
	newer := seedViolation(t, svc, "MH-1234", now.Add(-10*time.Minute))
	seedViolation(t, svc, "TN-0042", now.Add(-1*time.Hour))

	t.Run("filter by boat, newest first", func(t *testing.T) {
		resp, err := uc.Query(ctx, dto.ViolationQueryRequest{BoatID: "MH-1234"})
		require.NoError(t, err)
		require.Equal(t, 2, resp.Total)
		assert.Equal(t, newer.ID.String(), resp.Violations[0].ID)
		assert.Equal(t, older.ID.String(), resp.Violations[1].ID)
	})

	t.Run("limit caps the page", func(t *testing.T) {
		resp, err := uc.Query(ctx, dto.ViolationQueryRequest{Limit: 1})
		require.NoError(t, err)
		assert.Equal(t, 1, resp.Total)
		assert.Equal(t, newer.ID.String(), resp.Violations[0].ID)
	})

	t.Run("time window excludes outside records", func(t *testing.T) {
		from := now.Add(-30 * time.Minute)
		resp, err := uc.Query(ctx, dto.ViolationQueryRequest{From: &from})
		require.NoError(t, err)
		assert.Equal(t, 1, resp.Total)
	})

	t.Run("inverted time window rejected", func(t *testing.T) {
		from := now
		to := now.Add(-time.Hour)
		resp, err := uc.Query(ctx, dto.ViolationQueryRequest{From: &from, To: &to})
		assert.Nil(t, resp)
		assertAppCode(t, err, "INVALID_REQUEST")
	})

	t.Run("no matches yields empty list", func(t *testing.T) {
		resp, err := uc.Query(ctx, dto.ViolationQueryRequest{BoatID: "GJ-0000"})
		require.NoError(t, err)
		assert.Equal(t, 0, resp.Total)
		assert.Empty(t, resp.Violations)
	})
}

func TestViolationUseCase_GetByID(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()
	svc := newLedgerService(t)
	uc := usecase.NewViolationUseCase(svc, nil, nil, logger)

	record := seedViolation(t, svc, "MH-1234", time.Now().UTC())

	t.Run("existing record", func(t *testing.T) {
		resp, err := uc.GetByID(ctx, record.ID.String())
		require.NoError(t, err)
		assert.Equal(t, "MH-1234", resp.BoatID)
		assert.Equal(t, "emergency", resp.Severity)
		assert.InDelta(t, -320.5, resp.DistanceM, 1e-9)
	})

	t.Run("malformed id", func(t *testing.T) {
		resp, err := uc.GetByID(ctx, "not-a-uuid")
		assert.Nil(t, resp)
		assertAppCode(t, err, "INVALID_REQUEST")
	})

	t.Run("unknown id", func(t *testing.T) {
		resp, err := uc.GetByID(ctx, uuid.NewString())
		assert.Nil(t, resp)
		assert.ErrorIs(t, err, errors.ErrViolationNotFound)
	})
}

// ============================================================================
// Acknowledge / Resolve Tests
// ============================================================================

func TestViolationUseCase_Acknowledge(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("local session alarms silenced, no control event", func(t *testing.T) {
		svc := newLedgerService(t)
		manager := newTestManager(t, harborZones(t))
		streams := &MockStreamRepository{}
		uc := usecase.NewViolationUseCase(svc, manager, streams, logger)

		record := seedViolation(t, svc, "MH-1234", time.Now().UTC())
		_, err := manager.StartSession(ctx, record.Vessel, false)
		require.NoError(t, err)

		resp, err := uc.Acknowledge(ctx, record.ID.String())
		require.NoError(t, err)
		assert.True(t, resp.Acknowledged)

		streams.AssertNotCalled(t, "PublishToStream", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown local session forwards to control stream", func(t *testing.T) {
		svc := newLedgerService(t)
		manager := newTestManager(t, harborZones(t))
		streams := &MockStreamRepository{}

		var published *domain.ControlEvent
		streams.On("PublishToStream", mock.Anything, domain.StreamMonitorControl, mock.Anything).
			Run(func(args mock.Arguments) {
				published = args.Get(2).(*domain.ControlEvent)
			}).
			Return(nil)

		uc := usecase.NewViolationUseCase(svc, manager, streams, logger)
		record := seedViolation(t, svc, "MH-1234", time.Now().UTC())

		resp, err := uc.Acknowledge(ctx, record.ID.String())
		require.NoError(t, err)
		assert.True(t, resp.Acknowledged)

		require.NotNil(t, published)
		assert.Equal(t, domain.ControlAcknowledge, published.Action)
		assert.Equal(t, "MH-1234", published.BoatID)
		assert.Equal(t, record.ID.String(), published.RecordID)
		streams.AssertExpectations(t)
	})

	t.Run("unknown record", func(t *testing.T) {
		svc := newLedgerService(t)
		uc := usecase.NewViolationUseCase(svc, nil, nil, logger)

		resp, err := uc.Acknowledge(ctx, uuid.NewString())
		assert.Nil(t, resp)
		assert.ErrorIs(t, err, errors.ErrViolationNotFound)
	})
}

func TestViolationUseCase_Resolve(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()
	svc := newLedgerService(t)
	uc := usecase.NewViolationUseCase(svc, nil, nil, logger)

	record := seedViolation(t, svc, "MH-1234", time.Now().UTC())

	first, err := uc.Resolve(ctx, record.ID.String())
	require.NoError(t, err)
	require.NotNil(t, first.ResolvedAt)

	// Repeated resolution keeps the original timestamp.
	time.Sleep(5 * time.Millisecond)
	second, err := uc.Resolve(ctx, record.ID.String())
	require.NoError(t, err)
	require.NotNil(t, second.ResolvedAt)
	assert.True(t, first.ResolvedAt.Equal(*second.ResolvedAt))
}
