package domain

import "time"

// ZoneKind classifies the legal semantics of a boundary zone.
type ZoneKind string

const (
	ZoneTerritorial           ZoneKind = "territorial"
	ZoneEEZ                   ZoneKind = "eez"
	ZoneInternationalBoundary ZoneKind = "international_boundary"
	ZoneRestrictedMilitary    ZoneKind = "restricted_military"
	ZoneMarineProtected       ZoneKind = "marine_protected"
	ZoneSeasonalBan           ZoneKind = "seasonal_ban"
)

// Severity is the alert severity scale.
type Severity string

const (
	SeverityWarning   Severity = "warning"
	SeverityCritical  Severity = "critical"
	SeverityEmergency Severity = "emergency"
)

// Rank orders severities for escalation comparisons (warning < critical < emergency).
func (s Severity) Rank() int {
	switch s {
	case SeverityWarning:
		return 1
	case SeverityCritical:
		return 2
	case SeverityEmergency:
		return 3
	default:
		return 0
	}
}

// SeasonalWindow is an annually recurring calendar-date range during which
// fishing is banned regardless of the zone's FishingAllowed flag. Both
// boundaries are inclusive and compared by calendar date only, never
// time-of-day. A window may wrap the year end (e.g. Nov 15 - Feb 15).
type SeasonalWindow struct {
	StartMonth time.Month `json:"start_month"`
	StartDay   int        `json:"start_day"`
	EndMonth   time.Month `json:"end_month"`
	EndDay     int        `json:"end_day"`
}

// In reports whether t (by its calendar date) falls inside the window.
func (w SeasonalWindow) In(t time.Time) bool {
	day := int(t.Month())*100 + t.Day()
	start := int(w.StartMonth)*100 + w.StartDay
	end := int(w.EndMonth)*100 + w.EndDay

	if start <= end {
		return day >= start && day <= end
	}
	// Window wraps the year end.
	return day >= start || day <= end
}

// BoundaryZone is a geofenced maritime zone with per-zone rules. Zones are
// loaded once and immutable for the registry's lifetime; a reload replaces
// the whole registry atomically.
type BoundaryZone struct {
	ID                string           `json:"id"`
	Name              string           `json:"name"`
	Kind              ZoneKind         `json:"kind"`
	Polygon           []GeoPoint       `json:"polygon"` // open ring, closure implied
	WarningDistanceM  float64          `json:"warning_distance_m"`
	CriticalDistanceM float64          `json:"critical_distance_m"`
	FishingAllowed    bool             `json:"fishing_allowed"`
	SeasonalWindows   []SeasonalWindow `json:"seasonal_windows,omitempty"`
	Severity          Severity         `json:"severity"`
	Penalty           string           `json:"penalty,omitempty"` // advisory text surfaced in notifications
}

// EmergencyKind reports whether a violation of this zone is always escalated
// to emergency severity.
func (z *BoundaryZone) EmergencyKind() bool {
	return z.Kind == ZoneInternationalBoundary || z.Kind == ZoneRestrictedMilitary
}
