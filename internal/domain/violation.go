package domain

import (
	"time"

	"github.com/google/uuid"
)

// VesselMeta identifies the vessel a monitoring session tracks.
type VesselMeta struct {
	BoatID        string `json:"boat_id"`
	LicenseNumber string `json:"license_number,omitempty"`
	ContactNumber string `json:"contact_number,omitempty"`
}

// ViolationRecord is the persisted form of a dispatched boundary event.
// Records are append-only: only Acknowledge and Resolve mutate them, and
// they are never deleted.
type ViolationRecord struct {
	ID     uuid.UUID  `json:"id"`
	Vessel VesselMeta `json:"vessel"`

	ZoneID                      string    `json:"zone_id"`
	ZoneName                    string    `json:"zone_name"`
	Type                        EventType `json:"type"`
	Severity                    Severity  `json:"severity"`
	DistanceM                   float64   `json:"distance_m"`
	EstimatedMinutesToViolation *float64  `json:"estimated_minutes_to_violation,omitempty"`
	Location                    GeoPoint  `json:"location"`
	OccurredAt                  time.Time `json:"occurred_at"`

	Acknowledged bool       `json:"acknowledged"`
	ResolvedAt   *time.Time `json:"resolved_at,omitempty"`
	AutoReported bool       `json:"auto_reported"`

	CreatedAt time.Time `json:"created_at"`
}

// ViolationFilter narrows ledger queries. Zero values mean "any".
type ViolationFilter struct {
	BoatID       string     `json:"boat_id,omitempty"`
	ZoneID       string     `json:"zone_id,omitempty"`
	Severity     Severity   `json:"severity,omitempty"`
	Type         EventType  `json:"type,omitempty"`
	From         *time.Time `json:"from,omitempty"`
	To           *time.Time `json:"to,omitempty"`
	Acknowledged *bool      `json:"acknowledged,omitempty"`
	Resolved     *bool      `json:"resolved,omitempty"`
	Limit        int        `json:"limit,omitempty"`
}

// Matches reports whether the record satisfies every set filter field.
func (f *ViolationFilter) Matches(r *ViolationRecord) bool {
	if f.BoatID != "" && r.Vessel.BoatID != f.BoatID {
		return false
	}
	if f.ZoneID != "" && r.ZoneID != f.ZoneID {
		return false
	}
	if f.Severity != "" && r.Severity != f.Severity {
		return false
	}
	if f.Type != "" && r.Type != f.Type {
		return false
	}
	if f.From != nil && r.OccurredAt.Before(*f.From) {
		return false
	}
	if f.To != nil && r.OccurredAt.After(*f.To) {
		return false
	}
	if f.Acknowledged != nil && r.Acknowledged != *f.Acknowledged {
		return false
	}
	if f.Resolved != nil && (r.ResolvedAt != nil) != *f.Resolved {
		return false
	}
	return true
}

// ViolationSummary is the payload forwarded to the regulatory reporting API
// for auto-reported records.
type ViolationSummary struct {
	RecordID      uuid.UUID `json:"record_id"`
	BoatID        string    `json:"boat_id"`
	LicenseNumber string    `json:"license_number,omitempty"`
	ContactNumber string    `json:"contact_number,omitempty"`
	ZoneID        string    `json:"zone_id"`
	ZoneName      string    `json:"zone_name"`
	Type          EventType `json:"type"`
	Severity      Severity  `json:"severity"`
	DistanceM     float64   `json:"distance_m"`
	Location      GeoPoint  `json:"location"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// Summary builds the regulatory reporting payload for the record.
func (r *ViolationRecord) Summary() ViolationSummary {
	return ViolationSummary{
		RecordID:      r.ID,
		BoatID:        r.Vessel.BoatID,
		LicenseNumber: r.Vessel.LicenseNumber,
		ContactNumber: r.Vessel.ContactNumber,
		ZoneID:        r.ZoneID,
		ZoneName:      r.ZoneName,
		Type:          r.Type,
		Severity:      r.Severity,
		DistanceM:     r.DistanceM,
		Location:      r.Location,
		OccurredAt:    r.OccurredAt,
	}
}
