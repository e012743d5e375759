package monitor

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vessel-monitor/internal/detector"
	"github.com/vessel-monitor/internal/dispatcher"
	"github.com/vessel-monitor/internal/domain"
	"github.com/vessel-monitor/internal/ledger"
	"github.com/vessel-monitor/internal/pkg/errors"
	"github.com/vessel-monitor/internal/registry"
)

func testDetector() *detector.Detector {
	return detector.New(zap.NewNop(), nil)
}

// ============================================================================
// Mocks
// ============================================================================

// MockLedgerRepository mocks repository.LedgerRepository
type MockLedgerRepository struct {
	mock.Mock
	appends atomic.Int32
}

func (m *MockLedgerRepository) Append(ctx context.Context, record *domain.ViolationRecord) error {
	m.appends.Add(1)
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockLedgerRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ViolationRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ViolationRecord), args.Error(1)
}

func (m *MockLedgerRepository) Acknowledge(ctx context.Context, id uuid.UUID) (*domain.ViolationRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ViolationRecord), args.Error(1)
}

func (m *MockLedgerRepository) Resolve(ctx context.Context, id uuid.UUID) (*domain.ViolationRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ViolationRecord), args.Error(1)
}

func (m *MockLedgerRepository) Query(ctx context.Context, filter domain.ViolationFilter) ([]*domain.ViolationRecord, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ViolationRecord), args.Error(1)
}

func (m *MockLedgerRepository) CountOpen(ctx context.Context, boatID string) (int, error) {
	args := m.Called(ctx, boatID)
	return args.Int(0), args.Error(1)
}

// MockNotifier mocks repository.NotificationSink
type MockNotifier struct {
	mock.Mock
	sends atomic.Int32
}

func (m *MockNotifier) Send(ctx context.Context, alert domain.AlertEvent) error {
	m.sends.Add(1)
	args := m.Called(ctx, alert)
	return args.Error(0)
}

// MockAudio mocks repository.AudioAlarmSink
type MockAudio struct {
	mock.Mock
	plays atomic.Int32
	stops atomic.Int32
}

func (m *MockAudio) Play(ctx context.Context, alert domain.AlertEvent) error {
	m.plays.Add(1)
	args := m.Called(ctx, alert)
	return args.Error(0)
}

func (m *MockAudio) StopAll(ctx context.Context, boatID string) error {
	m.stops.Add(1)
	args := m.Called(ctx, boatID)
	return args.Error(0)
}

// MockLocation mocks repository.LocationProvider
type MockLocation struct {
	mock.Mock
	polls atomic.Int32
}

func (m *MockLocation) RequestPermission(ctx context.Context, boatID string) (bool, error) {
	args := m.Called(ctx, boatID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLocation) CurrentPosition(ctx context.Context, boatID string) (*domain.PositionFix, error) {
	m.polls.Add(1)
	args := m.Called(ctx, boatID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PositionFix), args.Error(1)
}

// MockKV mocks repository.KVRepository
type MockKV struct {
	mock.Mock
	sets atomic.Int32
}

func (m *MockKV) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockKV) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.sets.Add(1)
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockKV) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockKV) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

// ============================================================================
// Fixtures
// ============================================================================

// Square exclusion area east of Mumbai harbour.
func harborHandle(t *testing.T, kind string) *registry.Handle {
	t.Helper()
	configs := []registry.ZoneConfig{
		{
			ID:   "harbor_exclusion",
			Name: "Harbor Exclusion Area",
			Kind: kind,
			Polygon: []registry.PointConfig{
				{Lat: 18.92, Lon: 72.80},
				{Lat: 18.92, Lon: 72.85},
				{Lat: 18.95, Lon: 72.85},
				{Lat: 18.95, Lon: 72.80},
			},
			WarningDistanceM:  5000,
			CriticalDistanceM: 2000,
			FishingAllowed:    false,
			Severity:          "critical",
		},
	}
	reg, err := registry.Load(configs, time.UTC)
	require.NoError(t, err)
	return registry.NewHandle(reg)
}

func insideFix() domain.PositionFix {
	return domain.PositionFix{
		Location:  domain.GeoPoint{Lat: 18.930, Lon: 72.820},
		AccuracyM: 10,
		Timestamp: time.Now().UTC(),
	}
}

func openSeaFix() domain.PositionFix {
	return domain.PositionFix{
		Location:  domain.GeoPoint{Lat: 16.0, Lon: 70.0},
		AccuracyM: 10,
		Timestamp: time.Now().UTC(),
	}
}

type sessionFixture struct {
	ledgerRepo *MockLedgerRepository
	notifier   *MockNotifier
	audio      *MockAudio
	location   *MockLocation
	kv         *MockKV
	handle     *registry.Handle
	service    *ledger.Service
	vessel     domain.VesselMeta
}

func newSessionFixture(t *testing.T, kind string) *sessionFixture {
	t.Helper()
	f := &sessionFixture{
		ledgerRepo: new(MockLedgerRepository),
		notifier:   new(MockNotifier),
		audio:      new(MockAudio),
		location:   new(MockLocation),
		kv:         new(MockKV),
		handle:     harborHandle(t, kind),
		vessel:     domain.VesselMeta{BoatID: "MH-1234", LicenseNumber: "MH-FSH-2214"},
	}
	f.service = ledger.NewService(f.ledgerRepo, zap.NewNop(), nil, ledger.Options{})

	f.ledgerRepo.On("Append", mock.Anything, mock.Anything).Return(nil).Maybe()
	f.notifier.On("Send", mock.Anything, mock.Anything).Return(nil).Maybe()
	f.audio.On("Play", mock.Anything, mock.Anything).Return(nil).Maybe()
	f.audio.On("StopAll", mock.Anything, mock.Anything).Return(nil).Maybe()
	f.kv.On("Get", mock.Anything, mock.Anything).Return(nil, nil).Maybe()
	f.kv.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	return f
}

func (f *sessionFixture) newDispatcher() *dispatcher.Dispatcher {
	return dispatcher.New(dispatcher.Options{
		Vessel:   f.vessel,
		Zones:    &handleLookup{handle: f.handle},
		Ledger:   f.service,
		Notifier: f.notifier,
		Audio:    f.audio,
		Logger:   zap.NewNop(),
	})
}

func (f *sessionFixture) newSession(polling bool, interval time.Duration) *Session {
	opts := SessionOptions{
		Vessel:       f.vessel,
		PollInterval: interval,
		HistoryLimit: 32,
		Zones:        f.handle,
		Detector:     testDetector(),
		Dispatcher:   f.newDispatcher(),
		Ledger:       f.service,
		KV:           f.kv,
		Logger:       zap.NewNop(),
	}
	if polling {
		opts.Location = f.location
	}
	return NewSession(opts)
}

// ============================================================================
// Session tests
// ============================================================================

func TestSession_PushedFixInsideZoneAppendsViolation(t *testing.T) {
	f := newSessionFixture(t, "marine_protected")
	session := f.newSession(false, 50*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, session.Start(ctx))
	defer session.Stop(context.Background())

	session.Push(insideFix())

	assert.Eventually(t, func() bool {
		return f.ledgerRepo.appends.Load() == 1 && f.notifier.sends.Load() == 1
	}, 2*time.Second, 10*time.Millisecond, "violation should be appended and notified")

	latest, ok := session.Latest()
	require.True(t, ok)
	assert.InDelta(18.930, latest.Location.Lat, 0.000001)
}

func TestSession_OpenSeaFixProducesNothing(t *testing.T) {
	f := newSessionFixture(t, "marine_protected")
	session := f.newSession(false, 50*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, session.Start(ctx))
	defer session.Stop(context.Background())

	session.Push(openSeaFix())

	assert.Eventually(t, func() bool {
		return session.sampler.Len() == 1
	}, 2*time.Second, 10*time.Millisecond)

	time.Sleep(50 * time.Millisecond)
	assert.Zero(t, f.ledgerRepo.appends.Load())
	assert.Zero(t, f.notifier.sends.Load())
}

func TestSession_RestoredCheckpointSuppressesRepeatAlert(t *testing.T) {
	f := newSessionFixture(t, "marine_protected")

	// Checkpoint written moments ago by a previous process.
	checkpoint := fmt.Sprintf(`[{"zone_id":"harbor_exclusion","type":"violation","at":%q}]`,
		time.Now().UTC().Format(time.RFC3339Nano))
	f.kv.ExpectedCalls = nil
	f.kv.On("Get", mock.Anything, dispatcher.CheckpointKey("MH-1234")).
		Return([]byte(checkpoint), nil)
	f.kv.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()

	session := f.newSession(false, 50*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, session.Start(ctx))
	defer session.Stop(context.Background())

	session.Push(insideFix())

	assert.Eventually(t, func() bool {
		return session.sampler.Len() == 1
	}, 2*time.Second, 10*time.Millisecond)

	time.Sleep(50 * time.Millisecond)
	assert.Zero(t, f.ledgerRepo.appends.Load(), "restored debounce state must suppress the repeat alert")
}

func TestSession_StopSilencesAlarmsAndCheckpoints(t *testing.T) {
	f := newSessionFixture(t, "restricted_military")
	session := f.newSession(false, 50*time.Millisecond)

	require.NoError(t, session.Start(context.Background()))

	session.Push(insideFix())
	assert.Eventually(t, func() bool {
		return f.audio.plays.Load() == 1
	}, 2*time.Second, 10*time.Millisecond, "emergency violation should start the alarm")

	session.Stop(context.Background())

	assert.GreaterOrEqual(t, f.audio.stops.Load(), int32(1), "stop must silence alarms")
	assert.GreaterOrEqual(t, f.kv.sets.Load(), int32(1), "stop must persist the checkpoint")

	// Stop is idempotent.
	session.Stop(context.Background())
}

func TestSession_PollingFeedsDetector(t *testing.T) {
	f := newSessionFixture(t, "marine_protected")
	fix := insideFix()
	f.location.On("RequestPermission", mock.Anything, "MH-1234").Return(true, nil)
	f.location.On("CurrentPosition", mock.Anything, "MH-1234").Return(&fix, nil)

	session := f.newSession(true, 20*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, session.Start(ctx))
	defer session.Stop(context.Background())

	assert.Eventually(t, func() bool {
		return f.location.polls.Load() >= 2 && f.ledgerRepo.appends.Load() >= 1
	}, 2*time.Second, 10*time.Millisecond)

	// Repeated polls of the same position stay debounced.
	assert.Equal(t, int32(1), f.ledgerRepo.appends.Load())
}

func TestSession_PollingPermissionDenied(t *testing.T) {
	f := newSessionFixture(t, "marine_protected")
	f.location.On("RequestPermission", mock.Anything, "MH-1234").Return(false, nil)

	session := f.newSession(true, 20*time.Millisecond)

	err := session.Start(context.Background())
	assert.ErrorIs(t, err, errors.ErrTrackingDenied)
	assert.Zero(t, f.location.polls.Load())
}

func TestSession_PollPositionUnavailableIsQuiet(t *testing.T) {
	f := newSessionFixture(t, "marine_protected")
	f.location.On("RequestPermission", mock.Anything, "MH-1234").Return(true, nil)
	f.location.On("CurrentPosition", mock.Anything, "MH-1234").
		Return(nil, errors.ErrPositionUnavailable)

	session := f.newSession(true, 20*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, session.Start(ctx))
	defer session.Stop(context.Background())

	assert.Eventually(t, func() bool {
		return f.location.polls.Load() >= 2
	}, 2*time.Second, 10*time.Millisecond)

	assert.Zero(t, session.sampler.Len())
	assert.Zero(t, f.ledgerRepo.appends.Load())
}

func TestSession_PushNeverBlocks(t *testing.T) {
	f := newSessionFixture(t, "marine_protected")
	session := f.newSession(false, time.Hour)

	// No loop running: the channel fills and Push must still return,
	// dropping the oldest pending fix.
	done := make(chan struct{})
	go func() {
		for i := 0; i < fixChannelSize*3; i++ {
			session.Push(openSeaFix())
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Push blocked on a full channel")
	}
	assert.Len(t, session.fixes, fixChannelSize)
}
