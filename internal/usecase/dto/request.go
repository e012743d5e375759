package dto

import "time"

// SubmitPositionRequest is a single position fix pushed for a vessel.
// Vessel identity fields beyond boat_id are optional and only used when the
// fix starts a fresh monitoring session.
type SubmitPositionRequest struct {
	BoatID        string    `json:"boat_id" validate:"required,min=2,max=64"`
	Lat           float64   `json:"lat" validate:"min=-90,max=90"`
	Lon           float64   `json:"lon" validate:"min=-180,max=180"`
	AccuracyM     float64   `json:"accuracy_m" validate:"omitempty,min=0"`
	Timestamp     time.Time `json:"timestamp,omitempty"`
	LicenseNumber string    `json:"license_number,omitempty"`
	ContactNumber string    `json:"contact_number,omitempty"`

	// Async routes the fix through the ingest stream instead of feeding the
	// in-process session directly.
	Async bool `json:"async,omitempty"`
}

// BatchPositionsRequest carries fixes for multiple vessels in one call,
// e.g. a shore gateway flushing a connectivity backlog.
type BatchPositionsRequest struct {
	Positions []SubmitPositionRequest `json:"positions" validate:"required,min=1,max=500,dive"`
}

// CheckPointRequest asks for an ad-hoc zone evaluation of a point without
// touching any session state.
type CheckPointRequest struct {
	Lat        float64 `json:"lat" validate:"min=-90,max=90"`
	Lon        float64 `json:"lon" validate:"min=-180,max=180"`
	SpeedKnots float64 `json:"speed_knots" validate:"omitempty,min=0,max=100"`
	HeadingDeg float64 `json:"heading_deg" validate:"omitempty,min=0,max=360"`
}

// ViolationQueryRequest filters the violation ledger. Zero values mean "any".
type ViolationQueryRequest struct {
	BoatID       string     `json:"boat_id,omitempty" query:"boat_id"`
	ZoneID       string     `json:"zone_id,omitempty" query:"zone_id"`
	Severity     string     `json:"severity,omitempty" query:"severity" validate:"omitempty,oneof=warning critical emergency"`
	Type         string     `json:"type,omitempty" query:"type" validate:"omitempty,oneof=approaching entered_buffer violation"`
	From         *time.Time `json:"from,omitempty" query:"from"`
	To           *time.Time `json:"to,omitempty" query:"to"`
	Acknowledged *bool      `json:"acknowledged,omitempty" query:"acknowledged"`
	Resolved     *bool      `json:"resolved,omitempty" query:"resolved"`
	Limit        int        `json:"limit,omitempty" query:"limit" validate:"omitempty,min=1,max=500"`
}

// StartSessionRequest opens a monitoring session for a vessel.
type StartSessionRequest struct {
	BoatID        string `json:"boat_id" validate:"required,min=2,max=64"`
	LicenseNumber string `json:"license_number,omitempty"`
	ContactNumber string `json:"contact_number,omitempty"`

	// Polling makes the session acquire fixes from the location provider on
	// a timer; otherwise fixes arrive only by push.
	Polling bool `json:"polling,omitempty"`
}
