package domain

import "time"

// EventType classifies how a vessel relates to a zone for one sample.
type EventType string

const (
	EventApproaching   EventType = "approaching"
	EventEnteredBuffer EventType = "entered_buffer"
	EventViolation     EventType = "violation"
)

// BoundaryEvent is the classification of one vessel sample against one zone.
// Ephemeral: produced by the detector, consumed immediately by the
// dispatcher, never persisted as-is. At most one event is emitted per zone
// per sample; violation takes precedence over entered_buffer, which takes
// precedence over approaching.
type BoundaryEvent struct {
	ZoneID   string    `json:"zone_id"`
	ZoneName string    `json:"zone_name"`
	Type     EventType `json:"type"`
	Severity Severity  `json:"severity"`

	// DistanceM is signed: negative means the vessel is inside the zone.
	DistanceM float64 `json:"distance_m"`

	// EstimatedMinutesToViolation is nil when speed is zero or the event is
	// already a violation.
	EstimatedMinutesToViolation *float64 `json:"estimated_minutes_to_violation,omitempty"`

	Location  GeoPoint  `json:"location"`
	Timestamp time.Time `json:"timestamp"`
}

// Inside reports whether the vessel was inside the zone for this event.
func (e *BoundaryEvent) Inside() bool {
	return e.DistanceM < 0
}

// ExitGuidance tells the crew which way to steer to leave a danger area:
// bearing and distance toward the nearest ring vertex of the zone.
type ExitGuidance struct {
	BearingDeg float64 `json:"bearing_deg"`
	Compass    string  `json:"compass"`
	DistanceM  float64 `json:"distance_m"`
}
