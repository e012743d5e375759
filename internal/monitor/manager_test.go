package monitor

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vessel-monitor/internal/domain"
	"github.com/vessel-monitor/internal/domain/repository"
	"github.com/vessel-monitor/internal/pkg/errors"
)

// sinkFactory wires the mock sinks into repository.SinkFactory.
type sinkFactory struct {
	notifier *MockNotifier
	audio    *MockAudio
}

func (s *sinkFactory) Sinks(boatID string) (repository.NotificationSink, repository.AudioAlarmSink) {
	return s.notifier, s.audio
}

type managerFixture struct {
	*sessionFixture
	manager *Manager
	cancel  context.CancelFunc
}

func newManagerFixture(t *testing.T, maxSessions int, idleTimeout time.Duration) *managerFixture {
	t.Helper()
	f := newSessionFixture(t, "restricted_military")

	manager := NewManager(ManagerOptions{
		PollInterval: 20 * time.Millisecond,
		HistoryLimit: 32,
		MaxSessions:  maxSessions,
		IdleTimeout:  idleTimeout,
		Zones:        f.handle,
		Ledger:       f.service,
		Sinks:        &sinkFactory{notifier: f.notifier, audio: f.audio},
		Location:     f.location,
		KV:           f.kv,
		Logger:       zap.NewNop(),
		Metrics:      nil,
	})

	ctx, cancel := context.WithCancel(context.Background())
	manager.Start(ctx)
	t.Cleanup(func() {
		manager.Shutdown(context.Background())
		cancel()
	})

	return &managerFixture{sessionFixture: f, manager: manager, cancel: cancel}
}

func vessel(boatID string) domain.VesselMeta {
	return domain.VesselMeta{BoatID: boatID}
}

func TestManager_StartStopSession(t *testing.T) {
	f := newManagerFixture(t, 10, 0)
	ctx := context.Background()

	session, err := f.manager.StartSession(ctx, vessel("MH-1234"), false)
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, 1, f.manager.Len())

	got, ok := f.manager.Session("MH-1234")
	require.True(t, ok)
	assert.Same(t, session, got)

	require.NoError(t, f.manager.StopSession(ctx, "MH-1234"))
	assert.Equal(t, 0, f.manager.Len())

	err = f.manager.StopSession(ctx, "MH-1234")
	assert.ErrorIs(t, err, errors.ErrSessionNotFound)
}

func TestManager_DuplicateSessionRejected(t *testing.T) {
	f := newManagerFixture(t, 10, 0)
	ctx := context.Background()

	_, err := f.manager.StartSession(ctx, vessel("MH-1234"), false)
	require.NoError(t, err)

	_, err = f.manager.StartSession(ctx, vessel("MH-1234"), false)
	assert.ErrorIs(t, err, errors.ErrSessionExists)
	assert.Equal(t, 1, f.manager.Len())
}

func TestManager_SessionCap(t *testing.T) {
	f := newManagerFixture(t, 2, 0)
	ctx := context.Background()

	_, err := f.manager.StartSession(ctx, vessel("MH-0001"), false)
	require.NoError(t, err)
	_, err = f.manager.StartSession(ctx, vessel("MH-0002"), false)
	require.NoError(t, err)

	_, err = f.manager.StartSession(ctx, vessel("MH-0003"), false)
	assert.ErrorIs(t, err, errors.ErrTooManySessions)

	// Stopping one frees a slot.
	require.NoError(t, f.manager.StopSession(ctx, "MH-0001"))
	_, err = f.manager.StartSession(ctx, vessel("MH-0003"), false)
	assert.NoError(t, err)
}

func TestManager_EnsureSessionAdoptsUnknownVessel(t *testing.T) {
	f := newManagerFixture(t, 10, 0)
	ctx := context.Background()

	session, err := f.manager.EnsureSession(ctx, vessel("MH-1234"))
	require.NoError(t, err)
	require.NotNil(t, session)

	again, err := f.manager.EnsureSession(ctx, vessel("MH-1234"))
	require.NoError(t, err)
	assert.Same(t, session, again)
	assert.Equal(t, 1, f.manager.Len())
}

func TestManager_AcknowledgeSilencesAlarms(t *testing.T) {
	f := newManagerFixture(t, 10, 0)
	ctx := context.Background()

	session, err := f.manager.StartSession(ctx, vessel("MH-1234"), false)
	require.NoError(t, err)

	session.Push(insideFix())
	assert.Eventually(t, func() bool {
		return f.audio.plays.Load() >= 1
	}, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, f.manager.Acknowledge(ctx, "MH-1234"))
	assert.GreaterOrEqual(t, f.audio.stops.Load(), int32(1))

	err = f.manager.Acknowledge(ctx, "GJ-0000")
	assert.ErrorIs(t, err, errors.ErrSessionNotFound)
}

func TestManager_SweepStopsIdleSessions(t *testing.T) {
	f := newManagerFixture(t, 10, 30*time.Millisecond)
	ctx := context.Background()

	_, err := f.manager.StartSession(ctx, vessel("MH-1234"), false)
	require.NoError(t, err)

	time.Sleep(60 * time.Millisecond)
	f.manager.sweepIdle(ctx)

	assert.Equal(t, 0, f.manager.Len())
	assert.GreaterOrEqual(t, f.audio.stops.Load(), int32(1), "sweep stops sessions cleanly")
}

func TestManager_ActiveSessionsSnapshot(t *testing.T) {
	f := newManagerFixture(t, 10, 0)
	ctx := context.Background()

	session, err := f.manager.StartSession(ctx, vessel("MH-1234"), false)
	require.NoError(t, err)
	session.Push(openSeaFix())

	assert.Eventually(t, func() bool {
		return session.sampler.Len() == 1
	}, 2*time.Second, 10*time.Millisecond)

	infos := f.manager.ActiveSessions()
	require.Len(t, infos, 1)
	assert.Equal(t, "MH-1234", infos[0].Vessel.BoatID)
	assert.Equal(t, 1, infos[0].Samples)
	assert.False(t, infos[0].Polling)
	assert.False(t, infos[0].StartedAt.IsZero())
}

func TestManager_ShutdownStopsEverything(t *testing.T) {
	f := newManagerFixture(t, 10, 0)
	ctx := context.Background()

	_, err := f.manager.StartSession(ctx, vessel("MH-0001"), false)
	require.NoError(t, err)
	_, err = f.manager.StartSession(ctx, vessel("MH-0002"), false)
	require.NoError(t, err)

	f.manager.Shutdown(ctx)
	assert.Equal(t, 0, f.manager.Len())
}
