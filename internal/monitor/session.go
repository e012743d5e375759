// Package monitor owns the per-vessel monitoring sessions: the tick loop
// that feeds position fixes through the detector and dispatcher, and the
// manager that bounds and sweeps sessions across vessels.
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
	"github.com/vessel-monitor/internal/sampler"
)

const (
	// DefaultPollInterval is the tick period when none is configured.
	DefaultPollInterval = 5 * time.Second

	// fixChannelSize bounds pending pushed fixes per session. When full,
	// the oldest pending fix is dropped in favour of the newest.
	fixChannelSize = 16

	// checkpointTTL expires debounce checkpoints of vessels that stop
	// reporting. Restored entries older than the debounce window are
	// harmless either way.
	checkpointTTL = time.Hour
)

// Session monitors one vessel. Fixes arrive either pushed through Push
// (API/stream ingest) or polled from a LocationProvider each tick. All
// evaluation runs on the session's own goroutine; Push never blocks.
type Session struct {
	vessel       domain.VesselMeta
	pollInterval time.Duration

	zones      *registry.Handle
	sampler    *sampler.Sampler
	detector   *detector.Detector
	dispatcher *dispatcher.Dispatcher
	ledger     *ledger.Service
	location   repository.LocationProvider // nil for push-only sessions
	kv         repository.KVRepository     // nil disables checkpointing
	logger     *zap.Logger
	metrics    *metrics.Metrics

	fixes    chan domain.PositionFix
	stopChan chan struct{}
	done     chan struct{}
	stopOnce sync.Once

	mu           sync.Mutex
	startedAt    time.Time
	lastActivity time.Time
}

// SessionOptions collects the session dependencies.
type SessionOptions struct {
	Vessel       domain.VesselMeta
	PollInterval time.Duration
	HistoryLimit int
	AccuracyM    float64 // accuracy ceiling for low-accuracy tagging

	Zones      *registry.Handle
	Detector   *detector.Detector
	Dispatcher *dispatcher.Dispatcher
	Ledger     *ledger.Service
	Location   repository.LocationProvider
	KV         repository.KVRepository
	Logger     *zap.Logger
	Metrics    *metrics.Metrics
}

// NewSession creates a session. Call Start to begin monitoring.
func NewSession(opts SessionOptions) *Session {
	interval := opts.PollInterval
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Session{
		vessel:       opts.Vessel,
		pollInterval: interval,
		zones:        opts.Zones,
		sampler:      sampler.New(opts.HistoryLimit, opts.AccuracyM),
		detector:     opts.Detector,
		dispatcher:   opts.Dispatcher,
		ledger:       opts.Ledger,
		location:     opts.Location,
		kv:           opts.KV,
		logger:       opts.Logger.With(zap.String("boat_id", opts.Vessel.BoatID)),
		metrics:      opts.Metrics,
		fixes:        make(chan domain.PositionFix, fixChannelSize),
		stopChan:     make(chan struct{}),
		done:         make(chan struct{}),
	}
}

// Start checks tracking permission, restores the debounce checkpoint and
// launches the monitoring loop. The context bounds the whole session
// lifetime, not just the call.
func (s *Session) Start(ctx context.Context) error {
	if s.location != nil {
		granted, err := s.location.RequestPermission(ctx, s.vessel.BoatID)
		if err != nil {
			s.logger.Error("Permission check failed", zap.Error(err))
			return err
		}
		if !granted {
			return errors.ErrTrackingDenied
		}
	}

	s.restoreCheckpoint(ctx)

	now := time.Now().UTC()
	s.mu.Lock()
	s.startedAt = now
	s.lastActivity = now
	s.mu.Unlock()

	go s.run(ctx)

	s.logger.Info("Monitoring session started",
		zap.Duration("poll_interval", s.pollInterval),
		zap.Bool("polling", s.location != nil))
	return nil
}

func (s *Session) run(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			return
		case <-ctx.Done():
			return
		case fix := <-s.fixes:
			s.handleFix(ctx, fix)
		case <-ticker.C:
			s.poll(ctx)
			s.flushLedger(ctx)
		}
	}
}

// Push hands a fix to the session without blocking. When the channel is
// full the oldest pending fix is dropped: monitoring always wants the
// freshest position, never backpressure.
func (s *Session) Push(fix domain.PositionFix) {
	select {
	case s.fixes <- fix:
		return
	default:
	}

	select {
	case <-s.fixes:
	default:
	}
	select {
	case s.fixes <- fix:
	default:
	}
}

func (s *Session) poll(ctx context.Context) {
	if s.location == nil {
		return
	}

	fix, err := s.location.CurrentPosition(ctx, s.vessel.BoatID)
	if err != nil {
		if err == errors.ErrPositionUnavailable {
			s.logger.Debug("No position fix yet")
		} else {
			s.logger.Warn("Position poll failed", zap.Error(err))
		}
		return
	}
	s.handleFix(ctx, *fix)
}

func (s *Session) handleFix(ctx context.Context, fix domain.PositionFix) {
	s.touch()

	sample := s.sampler.Ingest(fix)
	reg := s.zones.Current()

	// Zone legality is judged at fix time so replayed backlogs classify
	// correctly; the debounce clock is wall time.
	events := s.detector.Evaluate(reg, sample, sample.Timestamp)
	records := s.dispatcher.Dispatch(ctx, events, time.Now().UTC())

	s.saveCheckpoint(ctx)

	if len(records) > 0 {
		s.logger.Info("Violation records appended",
			zap.Int("count", len(records)))
	}
}

func (s *Session) flushLedger(ctx context.Context) {
	if s.ledger.PendingCount() == 0 {
		return
	}
	if flushed := s.ledger.Flush(ctx); flushed > 0 {
		s.logger.Info("Flushed queued ledger writes", zap.Int("count", flushed))
	}
}

func (s *Session) restoreCheckpoint(ctx context.Context) {
	if s.kv == nil {
		return
	}
	data, err := s.kv.Get(ctx, dispatcher.CheckpointKey(s.vessel.BoatID))
	if err != nil {
		s.logger.Warn("Debounce checkpoint read failed", zap.Error(err))
		return
	}
	if data == nil {
		return
	}
	if err := s.dispatcher.Restore(data); err != nil {
		s.logger.Warn("Debounce checkpoint corrupt, starting clean", zap.Error(err))
	}
}

func (s *Session) saveCheckpoint(ctx context.Context) {
	if s.kv == nil {
		return
	}
	data, err := s.dispatcher.Snapshot()
	if err != nil {
		s.logger.Warn("Debounce checkpoint encode failed", zap.Error(err))
		return
	}
	if err := s.kv.Set(ctx, dispatcher.CheckpointKey(s.vessel.BoatID), data, checkpointTTL); err != nil {
		s.logger.Warn("Debounce checkpoint write failed", zap.Error(err))
	}
}

// Stop shuts the session down: the loop exits, continuous alarms are
// silenced, in-flight side effects drain and queued ledger writes get a
// final flush.
func (s *Session) Stop(ctx context.Context) {
	s.stopOnce.Do(func() {
		close(s.stopChan)
	})
	<-s.done

	if err := s.dispatcher.StopAlarms(ctx); err != nil {
		s.logger.Warn("Failed to stop alarms", zap.Error(err))
	}
	s.saveCheckpoint(ctx)
	s.dispatcher.Wait()
	s.flushLedger(ctx)

	s.logger.Info("Monitoring session stopped")
}

// Acknowledge silences the session's active alarms. Ledger record state is
// updated separately through the violation use case.
func (s *Session) Acknowledge(ctx context.Context) error {
	return s.dispatcher.Acknowledge(ctx)
}

// Vessel returns the vessel this session monitors.
func (s *Session) Vessel() domain.VesselMeta {
	return s.vessel
}

// Latest returns the most recent tracking sample.
func (s *Session) Latest() (domain.TrackingSample, bool) {
	return s.sampler.Latest()
}

// History returns the buffered samples, oldest first.
func (s *Session) History() []domain.TrackingSample {
	return s.sampler.History()
}

// Polling reports whether the session acquires fixes by polling.
func (s *Session) Polling() bool {
	return s.location != nil
}

// StartedAt returns the session start time.
func (s *Session) StartedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.startedAt
}

// LastActivity returns the time of the last processed fix.
func (s *Session) LastActivity() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActivity
}

func (s *Session) touch() {
	s.mu.Lock()
	s.lastActivity = time.Now().UTC()
	s.mu.Unlock()
}
