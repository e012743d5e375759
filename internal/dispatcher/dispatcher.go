// Package dispatcher owns the alerting memory of one monitoring session:
// per (zone, type) debounce, audio escalation, exit guidance, ledger
// writes and regulatory reporting.
package dispatcher

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vessel-monitor/internal/domain"
	"github.com/vessel-monitor/internal/domain/repository"
	"github.com/vessel-monitor/internal/pkg/geo"
	"github.com/vessel-monitor/internal/pkg/metrics"
)

const DefaultDebounceWindow = 30 * time.Second

// Ledger is the subset of the violation ledger the dispatcher writes to.
type Ledger interface {
	Append(ctx context.Context, record *domain.ViolationRecord) error
}

// ZoneLookup resolves zone IDs back to their definitions for exit
// guidance and penalty text. registry.Registry satisfies it.
type ZoneLookup interface {
	Zone(id string) (*domain.BoundaryZone, bool)
}

type alertKey struct {
	ZoneID string
	Type   domain.EventType
}

type Dispatcher struct {
	vessel   domain.VesselMeta
	window   time.Duration
	zones    ZoneLookup
	ledger   Ledger
	notifier repository.NotificationSink
	audio    repository.AudioAlarmSink
	reporter repository.RegulatoryReporter
	logger   *zap.Logger
	metrics  *metrics.Metrics

	mu        sync.Mutex
	lastAlert map[alertKey]time.Time
	alarmed   map[string]bool // zoneID -> continuous alarm running

	wg sync.WaitGroup
}

type Options struct {
	Vessel         domain.VesselMeta
	DebounceWindow time.Duration
	Zones          ZoneLookup
	Ledger         Ledger
	Notifier       repository.NotificationSink
	Audio          repository.AudioAlarmSink
	Reporter       repository.RegulatoryReporter // nil disables auto-reporting
	Logger         *zap.Logger
	Metrics        *metrics.Metrics
}

func New(opts Options) *Dispatcher {
	window := opts.DebounceWindow
	if window <= 0 {
		window = DefaultDebounceWindow
	}
	return &Dispatcher{
		vessel:    opts.Vessel,
		window:    window,
		zones:     opts.Zones,
		ledger:    opts.Ledger,
		notifier:  opts.Notifier,
		audio:     opts.Audio,
		reporter:  opts.Reporter,
		logger:    opts.Logger,
		metrics:   opts.Metrics,
		lastAlert: make(map[alertKey]time.Time),
		alarmed:   make(map[string]bool),
	}
}

// Dispatch processes the full event set of one sample. Debounced events
// produce no side effects and no ledger write. Zones absent from the set
// have their debounce state cleared so a later re-approach alerts again.
// Returns the records appended to the ledger.
func (d *Dispatcher) Dispatch(ctx context.Context, events []domain.BoundaryEvent, now time.Time) []*domain.ViolationRecord {
	var appended []*domain.ViolationRecord

	d.mu.Lock()
	seen := make(map[string]bool, len(events))
	due := make([]domain.BoundaryEvent, 0, len(events))
	for _, event := range events {
		seen[event.ZoneID] = true
		key := alertKey{ZoneID: event.ZoneID, Type: event.Type}
		if last, ok := d.lastAlert[key]; ok && now.Sub(last) < d.window {
			d.metrics.IncAlertSuppressed()
			continue
		}
		d.lastAlert[key] = now
		due = append(due, event)
	}
	for key := range d.lastAlert {
		if !seen[key.ZoneID] {
			delete(d.lastAlert, key)
		}
	}
	d.mu.Unlock()

	for _, event := range due {
		appended = append(appended, d.fire(ctx, event, now))
	}
	return appended
}

// fire runs side effects for one event that passed the debounce gate.
// The ledger write is synchronous; notification, audio and reporting must
// never block the sampling tick and run asynchronously.
func (d *Dispatcher) fire(ctx context.Context, event domain.BoundaryEvent, now time.Time) *domain.ViolationRecord {
	record := &domain.ViolationRecord{
		ID:                          uuid.New(),
		Vessel:                      d.vessel,
		ZoneID:                      event.ZoneID,
		ZoneName:                    event.ZoneName,
		Type:                        event.Type,
		Severity:                    event.Severity,
		DistanceM:                   event.DistanceM,
		EstimatedMinutesToViolation: event.EstimatedMinutesToViolation,
		Location:                    event.Location,
		OccurredAt:                  event.Timestamp,
		AutoReported:                d.reporter != nil && event.Severity.Rank() >= domain.SeverityCritical.Rank(),
		CreatedAt:                   now,
	}

	if err := d.ledger.Append(ctx, record); err != nil {
		d.logger.Error("ledger append failed",
			zap.String("zone_id", event.ZoneID),
			zap.String("type", string(event.Type)),
			zap.Error(err))
	}

	alert := d.buildAlert(event, now)
	d.runAsync(func() {
		if err := d.notifier.Send(context.Background(), alert); err != nil {
			d.logger.Error("notification send failed",
				zap.String("zone_id", event.ZoneID),
				zap.Error(err))
			return
		}
		d.metrics.IncAlertDispatched(string(domain.AlertNotification))
	})

	d.playAlarm(event, now)

	if record.AutoReported {
		d.runAsync(func() {
			reportCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			if err := d.reporter.Report(reportCtx, record); err != nil {
				d.logger.Error("regulatory report failed",
					zap.String("violation_id", record.ID.String()),
					zap.String("zone_id", record.ZoneID),
					zap.Error(err))
				d.metrics.IncReportFailed()
				return
			}
			d.metrics.IncReportSent()
		})
	}

	return record
}

// playAlarm maps severity to the audio profile: warning plays a single
// tone, critical a repeated tone, emergency a continuous alarm that runs
// until acknowledged.
func (d *Dispatcher) playAlarm(event domain.BoundaryEvent, now time.Time) {
	if event.Severity == domain.SeverityEmergency {
		d.mu.Lock()
		already := d.alarmed[event.ZoneID]
		d.alarmed[event.ZoneID] = true
		d.mu.Unlock()
		if already {
			return
		}
	}

	alarm := domain.AlertEvent{
		Kind:      domain.AlertAlarm,
		BoatID:    d.vessel.BoatID,
		Action:    domain.AlarmPlay,
		Profile:   string(event.Severity),
		Severity:  event.Severity,
		Timestamp: now,
	}
	d.runAsync(func() {
		if err := d.audio.Play(context.Background(), alarm); err != nil {
			d.logger.Error("audio alarm failed",
				zap.String("zone_id", event.ZoneID),
				zap.String("profile", alarm.Profile),
				zap.Error(err))
			return
		}
		d.metrics.IncAlertDispatched(string(domain.AlertAlarm))
	})
}

func (d *Dispatcher) buildAlert(event domain.BoundaryEvent, now time.Time) domain.AlertEvent {
	meta := map[string]string{
		"zone_id":    event.ZoneID,
		"type":       string(event.Type),
		"distance_m": fmt.Sprintf("%.0f", event.DistanceM),
	}
	if event.EstimatedMinutesToViolation != nil {
		meta["eta_min"] = fmt.Sprintf("%.1f", *event.EstimatedMinutesToViolation)
	}

	var title, message string
	switch event.Type {
	case domain.EventViolation:
		title = fmt.Sprintf("VIOLATION: %s", event.ZoneName)
		message = fmt.Sprintf("You are inside %s. Leave the area immediately.", event.ZoneName)
		if zone, ok := d.zones.Zone(event.ZoneID); ok && zone.Penalty != "" {
			meta["penalty"] = zone.Penalty
		}
	case domain.EventEnteredBuffer:
		title = fmt.Sprintf("Critical proximity: %s", event.ZoneName)
		message = fmt.Sprintf("You are %.0f m from %s.", event.DistanceM, event.ZoneName)
	default:
		title = fmt.Sprintf("Approaching %s", event.ZoneName)
		message = fmt.Sprintf("You are %.0f m from %s.", event.DistanceM, event.ZoneName)
	}

	if event.Type != domain.EventViolation {
		if guidance, ok := d.exitGuidance(event); ok {
			meta["boundary_bearing_deg"] = fmt.Sprintf("%.0f", guidance.BearingDeg)
			meta["boundary_compass"] = guidance.Compass
			meta["boundary_distance_m"] = fmt.Sprintf("%.0f", guidance.DistanceM)
			message += fmt.Sprintf(" Boundary lies %s (%.0f°).", guidance.Compass, guidance.BearingDeg)
		}
	}

	return domain.AlertEvent{
		Kind:      domain.AlertNotification,
		BoatID:    d.vessel.BoatID,
		Title:     title,
		Message:   message,
		Severity:  event.Severity,
		Metadata:  meta,
		Timestamp: now,
	}
}

// exitGuidance points at the nearest ring vertex of the zone.
func (d *Dispatcher) exitGuidance(event domain.BoundaryEvent) (domain.ExitGuidance, bool) {
	zone, ok := d.zones.Zone(event.ZoneID)
	if !ok || len(zone.Polygon) == 0 {
		return domain.ExitGuidance{}, false
	}
	vertex, dist := geo.NearestVertex(event.Location, zone.Polygon)
	bearing := geo.Bearing(event.Location, vertex)
	return domain.ExitGuidance{
		BearingDeg: bearing,
		Compass:    geo.CompassLabel(bearing),
		DistanceM:  dist,
	}, true
}

// Acknowledge silences all running alarms and resets the continuous
// alarm bookkeeping.
func (d *Dispatcher) Acknowledge(ctx context.Context) error {
	d.mu.Lock()
	d.alarmed = make(map[string]bool)
	d.mu.Unlock()
	return d.audio.StopAll(ctx, d.vessel.BoatID)
}

// StopAlarms silences alarms when the session stops.
func (d *Dispatcher) StopAlarms(ctx context.Context) error {
	return d.Acknowledge(ctx)
}

// Wait blocks until all in-flight side effects have finished.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

func (d *Dispatcher) runAsync(fn func()) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		fn()
	}()
}
