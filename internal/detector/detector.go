// Package detector classifies tracking samples against boundary zones.
// Classification is pure per zone per sample; all debounce and escalation
// memory lives in the dispatcher.
package detector

import (
	"time"

	"go.uber.org/zap"

	"github.com/vessel-monitor/internal/domain"
	"github.com/vessel-monitor/internal/pkg/geo"
	"github.com/vessel-monitor/internal/pkg/metrics"
)

// metersPerNauticalMile converts knots to meters per hour.
const metersPerNauticalMile = 1852.0

// ZoneSource is the read-only zone view the detector evaluates against.
// registry.Registry satisfies it.
type ZoneSource interface {
	AllZones() []*domain.BoundaryZone
	IsFishingAllowedNow(zone *domain.BoundaryZone, now time.Time) bool
}

type Detector struct {
	logger  *zap.Logger
	metrics *metrics.Metrics
}

func New(logger *zap.Logger, m *metrics.Metrics) *Detector {
	return &Detector{
		logger:  logger,
		metrics: m,
	}
}

// Evaluate classifies one sample against every zone and returns at most
// one event per zone. Violation takes precedence over entered_buffer,
// which takes precedence over approaching.
func (d *Detector) Evaluate(zones ZoneSource, sample domain.TrackingSample, now time.Time) []domain.BoundaryEvent {
	start := time.Now()
	defer func() {
		d.metrics.ObserveEvaluateLatency(time.Since(start))
	}()

	var events []domain.BoundaryEvent
	for _, zone := range zones.AllZones() {
		if len(zone.Polygon) < 3 {
			d.logger.Error("degenerate zone polygon, treating as not inside",
				zap.String("zone_id", zone.ID),
				zap.Int("points", len(zone.Polygon)))
			continue
		}

		if event, ok := d.evaluateZone(zones, zone, sample, now); ok {
			events = append(events, event)
			d.metrics.IncEventDetected(string(event.Type), string(event.Severity))
		}
	}
	return events
}

func (d *Detector) evaluateZone(zones ZoneSource, zone *domain.BoundaryZone, sample domain.TrackingSample, now time.Time) (domain.BoundaryEvent, bool) {
	inside := geo.PointInPolygon(sample.Location, zone.Polygon)
	vertexDist := geo.DistanceToPolygon(sample.Location, zone.Polygon)

	event := domain.BoundaryEvent{
		ZoneID:    zone.ID,
		ZoneName:  zone.Name,
		DistanceM: vertexDist,
		Location:  sample.Location,
		Timestamp: sample.Timestamp,
	}
	if inside {
		event.DistanceM = -vertexDist
	}

	switch {
	case inside:
		if zones.IsFishingAllowedNow(zone, now) {
			// Inside a zone that currently permits fishing is the
			// normal path, not an event.
			return domain.BoundaryEvent{}, false
		}
		event.Type = domain.EventViolation
		event.Severity = zone.Severity
		if zone.EmergencyKind() {
			event.Severity = domain.SeverityEmergency
		}

	default:
		// A low-accuracy fix may be closer than it reads; shrink the
		// measured distance so thresholds err toward alerting.
		effective := vertexDist
		if sample.LowAccuracy {
			effective -= sample.AccuracyM
		}

		switch {
		case effective <= zone.CriticalDistanceM:
			event.Type = domain.EventEnteredBuffer
			event.Severity = domain.SeverityCritical
		case effective <= zone.WarningDistanceM:
			event.Type = domain.EventApproaching
			event.Severity = domain.SeverityWarning
		default:
			return domain.BoundaryEvent{}, false
		}
	}

	if event.Type != domain.EventViolation && sample.HasDerived && sample.SpeedKnots > 0 {
		remaining := vertexDist - zone.CriticalDistanceM
		if remaining < 0 {
			remaining = 0
		}
		minutes := remaining / metersPerNauticalMile / sample.SpeedKnots * 60
		event.EstimatedMinutesToViolation = &minutes
	}

	return event, true
}
