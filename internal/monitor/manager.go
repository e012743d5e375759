package monitor

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/vessel-monitor/internal/detector"
	"github.com/vessel-monitor/internal/dispatcher"
	"github.com/vessel-monitor/internal/domain"
	"github.com/vessel-monitor/internal/domain/repository"
	"github.com/vessel-monitor/internal/ledger"
	"github.com/vessel-monitor/internal/pkg/errors"
	"github.com/vessel-monitor/internal/pkg/metrics"
	"github.com/vessel-monitor/internal/registry"
)

const sweepInterval = time.Minute

// ManagerOptions collects the shared dependencies handed to every session.
type ManagerOptions struct {
	PollInterval   time.Duration
	HistoryLimit   int
	DebounceWindow time.Duration
	MaxSessions    int
	IdleTimeout    time.Duration // zero disables the idle sweep
	AccuracyM      float64

	Zones    *registry.Handle
	Ledger   *ledger.Service
	Sinks    repository.SinkFactory
	Reporter repository.RegulatoryReporter // nil disables auto-reporting
	Location repository.LocationProvider   // nil forces push-only sessions
	KV       repository.KVRepository
	Logger   *zap.Logger
	Metrics  *metrics.Metrics
}

// Manager owns the per-vessel sessions: creation under a session cap,
// lookup, acknowledgement routing and the idle sweep.
type Manager struct {
	opts     ManagerOptions
	detector *detector.Detector
	logger   *zap.Logger

	mu       sync.RWMutex
	sessions map[string]*Session

	baseCtx  context.Context
	stopChan chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

// NewManager creates a session manager. Call Start before creating sessions.
func NewManager(opts ManagerOptions) *Manager {
	return &Manager{
		opts:     opts,
		detector: detector.New(opts.Logger, opts.Metrics),
		logger:   opts.Logger,
		sessions: make(map[string]*Session),
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start launches the idle sweep. ctx bounds the lifetime of every session
// the manager creates.
func (m *Manager) Start(ctx context.Context) {
	m.baseCtx = ctx
	go m.sweep(ctx)
}

// StartSession creates and starts a session for the vessel. Polling mode
// requires a location provider; push-only vessels get fixes via their
// session's Push.
func (m *Manager) StartSession(ctx context.Context, vessel domain.VesselMeta, polling bool) (*Session, error) {
	m.mu.Lock()
	if _, exists := m.sessions[vessel.BoatID]; exists {
		m.mu.Unlock()
		return nil, errors.ErrSessionExists
	}
	if m.opts.MaxSessions > 0 && len(m.sessions) >= m.opts.MaxSessions {
		m.mu.Unlock()
		m.logger.Warn("Session cap reached",
			zap.Int("max_sessions", m.opts.MaxSessions),
			zap.String("boat_id", vessel.BoatID))
		return nil, errors.ErrTooManySessions
	}
	// Reserve the slot before the (blocking) start so concurrent starts
	// for the same vessel cannot race past the cap.
	m.sessions[vessel.BoatID] = nil
	m.mu.Unlock()

	session, err := m.buildAndStart(vessel, polling)
	if err != nil {
		m.mu.Lock()
		delete(m.sessions, vessel.BoatID)
		m.mu.Unlock()
		return nil, err
	}

	m.mu.Lock()
	m.sessions[vessel.BoatID] = session
	m.mu.Unlock()

	m.opts.Metrics.SessionStarted()
	return session, nil
}

// EnsureSession returns the vessel's session, starting a push-only one if
// none is active. Stream workers use this to adopt vessels they have never
// seen.
func (m *Manager) EnsureSession(ctx context.Context, vessel domain.VesselMeta) (*Session, error) {
	if session, ok := m.Session(vessel.BoatID); ok {
		return session, nil
	}
	session, err := m.StartSession(ctx, vessel, false)
	if err == errors.ErrSessionExists {
		if existing, ok := m.Session(vessel.BoatID); ok {
			return existing, nil
		}
	}
	return session, err
}

func (m *Manager) buildAndStart(vessel domain.VesselMeta, polling bool) (*Session, error) {
	notifier, audio := m.opts.Sinks.Sinks(vessel.BoatID)

	disp := dispatcher.New(dispatcher.Options{
		Vessel:         vessel,
		DebounceWindow: m.opts.DebounceWindow,
		Zones:          &handleLookup{handle: m.opts.Zones},
		Ledger:         m.opts.Ledger,
		Notifier:       notifier,
		Audio:          audio,
		Reporter:       m.opts.Reporter,
		Logger:         m.logger.With(zap.String("boat_id", vessel.BoatID)),
		Metrics:        m.opts.Metrics,
	})

	var location repository.LocationProvider
	if polling {
		location = m.opts.Location
	}

	session := NewSession(SessionOptions{
		Vessel:       vessel,
		PollInterval: m.opts.PollInterval,
		HistoryLimit: m.opts.HistoryLimit,
		AccuracyM:    m.opts.AccuracyM,
		Zones:        m.opts.Zones,
		Detector:     m.detector,
		Dispatcher:   disp,
		Ledger:       m.opts.Ledger,
		Location:     location,
		KV:           m.opts.KV,
		Logger:       m.logger,
		Metrics:      m.opts.Metrics,
	})

	// The session loop outlives the request, so it runs on the manager's
	// context rather than the caller's.
	runCtx := m.baseCtx
	if runCtx == nil {
		runCtx = context.Background()
	}
	if err := session.Start(runCtx); err != nil {
		return nil, err
	}
	return session, nil
}

// StopSession stops and removes the vessel's session.
func (m *Manager) StopSession(ctx context.Context, boatID string) error {
	m.mu.Lock()
	session, ok := m.sessions[boatID]
	if ok {
		delete(m.sessions, boatID)
	}
	m.mu.Unlock()

	if !ok || session == nil {
		return errors.ErrSessionNotFound
	}

	session.Stop(ctx)
	m.opts.Metrics.SessionStopped()
	return nil
}

// Session returns the active session for a vessel.
func (m *Manager) Session(boatID string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	session, ok := m.sessions[boatID]
	if !ok || session == nil {
		return nil, false
	}
	return session, true
}

// Acknowledge silences active alarms for the vessel's session.
func (m *Manager) Acknowledge(ctx context.Context, boatID string) error {
	session, ok := m.Session(boatID)
	if !ok {
		return errors.ErrSessionNotFound
	}
	return session.Acknowledge(ctx)
}

// SessionInfo is the API-facing snapshot of one session.
type SessionInfo struct {
	Vessel       domain.VesselMeta `json:"vessel"`
	StartedAt    time.Time         `json:"started_at"`
	LastActivity time.Time         `json:"last_activity"`
	Samples      int               `json:"samples"`
	Polling      bool              `json:"polling"`
}

// ActiveSessions returns a snapshot of every running session.
func (m *Manager) ActiveSessions() []SessionInfo {
	m.mu.RLock()
	defer m.mu.RUnlock()

	infos := make([]SessionInfo, 0, len(m.sessions))
	for _, session := range m.sessions {
		if session == nil {
			continue
		}
		infos = append(infos, SessionInfo{
			Vessel:       session.Vessel(),
			StartedAt:    session.StartedAt(),
			LastActivity: session.LastActivity(),
			Samples:      session.sampler.Len(),
			Polling:      session.Polling(),
		})
	}
	return infos
}

// Len returns the number of active sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

func (m *Manager) sweep(ctx context.Context) {
	defer close(m.done)

	if m.opts.IdleTimeout <= 0 {
		<-m.stopChan
		return
	}

	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-m.stopChan:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.sweepIdle(ctx)
		}
	}
}

func (m *Manager) sweepIdle(ctx context.Context) {
	cutoff := time.Now().UTC().Add(-m.opts.IdleTimeout)

	m.mu.RLock()
	var idle []string
	for boatID, session := range m.sessions {
		if session != nil && session.LastActivity().Before(cutoff) {
			idle = append(idle, boatID)
		}
	}
	m.mu.RUnlock()

	for _, boatID := range idle {
		m.logger.Info("Stopping idle session",
			zap.String("boat_id", boatID),
			zap.Duration("idle_timeout", m.opts.IdleTimeout))
		if err := m.StopSession(ctx, boatID); err != nil && err != errors.ErrSessionNotFound {
			m.logger.Error("Failed to stop idle session",
				zap.String("boat_id", boatID), zap.Error(err))
		}
	}
}

// Shutdown stops the sweep and every session.
func (m *Manager) Shutdown(ctx context.Context) {
	m.stopOnce.Do(func() {
		close(m.stopChan)
	})
	<-m.done

	m.mu.Lock()
	sessions := make([]*Session, 0, len(m.sessions))
	for _, session := range m.sessions {
		if session != nil {
			sessions = append(sessions, session)
		}
	}
	m.sessions = make(map[string]*Session)
	m.mu.Unlock()

	for _, session := range sessions {
		session.Stop(ctx)
		m.opts.Metrics.SessionStopped()
	}

	m.logger.Info("Session manager shut down", zap.Int("sessions_stopped", len(sessions)))
}

// handleLookup adapts the registry handle to the dispatcher's ZoneLookup,
// always resolving against the current snapshot.
type handleLookup struct {
	handle *registry.Handle
}

func (h *handleLookup) Zone(id string) (*domain.BoundaryZone, bool) {
	return h.handle.Current().Zone(id)
}
