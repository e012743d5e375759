package domain

import "time"

// Stream names (must match the mobile gateway's publisher configuration).
const (
	StreamPositionIngest = "stream:positions:ingest"
	StreamAlertDispatch  = "stream:alerts:dispatch"
	StreamMonitorControl = "stream:monitor:control"
)

// PositionFixEvent is an incoming position fix published by the API or the
// mobile gateway onto the ingest stream. Vessel metadata rides along so a
// worker can start a session for a boat it has never seen.
type PositionFixEvent struct {
	BoatID    string      `json:"boat_id"`
	Lat       float64     `json:"lat"`
	Lon       float64     `json:"lon"`
	AccuracyM float64     `json:"accuracy_m"`
	Timestamp time.Time   `json:"timestamp"`
	Vessel    *VesselMeta `json:"vessel,omitempty"`
}

// Fix converts the stream event into a sampler input.
func (e *PositionFixEvent) Fix() PositionFix {
	return PositionFix{
		Location:  GeoPoint{Lat: e.Lat, Lon: e.Lon},
		AccuracyM: e.AccuracyM,
		Timestamp: e.Timestamp,
	}
}

// AlertKind distinguishes messages on the alert dispatch stream.
type AlertKind string

const (
	AlertNotification AlertKind = "notification"
	AlertAlarm        AlertKind = "alarm"
)

// AlarmAction is an audio alarm command for the device/app layer.
type AlarmAction string

const (
	AlarmPlay    AlarmAction = "play"
	AlarmStopAll AlarmAction = "stop_all"
)

// AlertEvent is the outgoing message the push/app delivery layer consumes.
// Notifications carry title/message/severity; alarm commands carry
// action/profile. Delivery mechanics are outside this service.
type AlertEvent struct {
	Kind      AlertKind         `json:"kind"`
	BoatID    string            `json:"boat_id"`
	Title     string            `json:"title,omitempty"`
	Message   string            `json:"message,omitempty"`
	Severity  Severity          `json:"severity,omitempty"`
	Action    AlarmAction       `json:"action,omitempty"`
	Profile   string            `json:"profile,omitempty"`
	Metadata  map[string]string `json:"metadata,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
}

// ControlAction is a monitoring control command.
type ControlAction string

const (
	ControlAcknowledge ControlAction = "acknowledge"
	ControlResolve     ControlAction = "resolve"
	ControlStop        ControlAction = "stop"
)

// ControlEvent is a command published by the API layer for worker-owned
// sessions: acknowledging/resolving a violation record or stopping a
// session remotely.
type ControlEvent struct {
	Action    ControlAction `json:"action"`
	BoatID    string        `json:"boat_id,omitempty"`
	RecordID  string        `json:"record_id,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
}

// StreamMessage is one raw message read from a Redis Stream: the entry ID and
// the JSON payload stored under its "data" field.
type StreamMessage struct {
	ID   string
	Data string
}
