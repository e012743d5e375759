package domain

import "time"

// PositionFix is a raw position acquisition from a location provider or an
// ingest stream, before speed/heading derivation.
type PositionFix struct {
	Location  GeoPoint  `json:"location"`
	AccuracyM float64   `json:"accuracy_m"`
	Timestamp time.Time `json:"timestamp"`
}

// TrackingSample is a position fix enriched with derived motion data. The
// first sample of a session has no previous fix to derive from, so its
// derived fields are zero and HasDerived is false.
type TrackingSample struct {
	Timestamp  time.Time `json:"timestamp"`
	Location   GeoPoint  `json:"location"`
	AccuracyM  float64   `json:"accuracy_m"`
	SpeedKnots float64   `json:"speed_knots"`
	HeadingDeg float64   `json:"heading_deg"`
	HasDerived bool      `json:"has_derived"`

	// LowAccuracy marks fixes whose reported accuracy exceeded the configured
	// ceiling. Such samples are still emitted and classified; the detector
	// weights them instead of the sampler dropping them.
	LowAccuracy bool `json:"low_accuracy,omitempty"`
}
