package dto

import (
	"time"

	"github.com/vessel-monitor/internal/domain"
	"github.com/vessel-monitor/internal/monitor"
)

// SubmitPositionResponse reports how a pushed fix was routed.
type SubmitPositionResponse struct {
	BoatID   string `json:"boat_id"`
	Accepted bool   `json:"accepted"`
	// Routed is "session" when the fix was fed to an in-process session and
	// "stream" when it was published to the ingest stream for a worker.
	Routed string `json:"routed"`
}

// BatchPositionsResponse is the per-fix outcome of a batch submission.
type BatchPositionsResponse struct {
	Results []BatchPositionResult `json:"results"`
	Meta    BatchPositionsMeta    `json:"meta"`
}

// BatchPositionResult is the outcome for one fix of the batch, by its
// position in the request.
type BatchPositionResult struct {
	Index    int    `json:"index"`
	BoatID   string `json:"boat_id"`
	Accepted bool   `json:"accepted"`
	Error    string `json:"error,omitempty"`
}

// BatchPositionsMeta summarizes a batch submission.
type BatchPositionsMeta struct {
	Total         int `json:"total"`
	AcceptedCount int `json:"accepted_count"`
	RejectedCount int `json:"rejected_count"`
}

// BoundaryEventDTO is one zone classification from an ad-hoc check.
type BoundaryEventDTO struct {
	ZoneID                      string          `json:"zone_id"`
	ZoneName                    string          `json:"zone_name"`
	Type                        string          `json:"type"`
	Severity                    string          `json:"severity"`
	DistanceM                   float64         `json:"distance_m"`
	Inside                      bool            `json:"inside"`
	EstimatedMinutesToViolation *float64        `json:"estimated_minutes_to_violation,omitempty"`
	Location                    domain.GeoPoint `json:"location"`
}

// CheckPointResponse lists every zone the point triggers, worst first.
type CheckPointResponse struct {
	Events []BoundaryEventDTO `json:"events"`
	Total  int                `json:"total"`
}

// SeasonalWindowDTO is a recurring calendar ban window in MM-DD form.
type SeasonalWindowDTO struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// ZoneResponse is the public view of one boundary zone.
type ZoneResponse struct {
	ID                string              `json:"id"`
	Name              string              `json:"name"`
	Kind              string              `json:"kind"`
	Polygon           []domain.GeoPoint   `json:"polygon"`
	WarningDistanceM  float64             `json:"warning_distance_m"`
	CriticalDistanceM float64             `json:"critical_distance_m"`
	FishingAllowed    bool                `json:"fishing_allowed"`
	FishingAllowedNow bool                `json:"fishing_allowed_now"`
	SeasonalWindows   []SeasonalWindowDTO `json:"seasonal_windows,omitempty"`
	Severity          string              `json:"severity"`
	Penalty           string              `json:"penalty,omitempty"`
}

// ZoneListResponse is the registry snapshot.
type ZoneListResponse struct {
	Zones    []ZoneResponse `json:"zones"`
	Total    int            `json:"total"`
	LoadedAt time.Time      `json:"loaded_at"`
}

// ViolationResponse is the public view of one ledger record.
type ViolationResponse struct {
	ID                          string          `json:"id"`
	BoatID                      string          `json:"boat_id"`
	LicenseNumber               string          `json:"license_number,omitempty"`
	ContactNumber               string          `json:"contact_number,omitempty"`
	ZoneID                      string          `json:"zone_id"`
	ZoneName                    string          `json:"zone_name"`
	Type                        string          `json:"type"`
	Severity                    string          `json:"severity"`
	DistanceM                   float64         `json:"distance_m"`
	EstimatedMinutesToViolation *float64        `json:"estimated_minutes_to_violation,omitempty"`
	Location                    domain.GeoPoint `json:"location"`
	OccurredAt                  time.Time       `json:"occurred_at"`
	Acknowledged                bool            `json:"acknowledged"`
	ResolvedAt                  *time.Time      `json:"resolved_at,omitempty"`
	AutoReported                bool            `json:"auto_reported"`
	CreatedAt                   time.Time       `json:"created_at"`
}

// ViolationListResponse is a filtered ledger page.
type ViolationListResponse struct {
	Violations []ViolationResponse `json:"violations"`
	Total      int                 `json:"total"`
}

// SessionResponse describes one active monitoring session.
type SessionResponse struct {
	BoatID        string    `json:"boat_id"`
	LicenseNumber string    `json:"license_number,omitempty"`
	ContactNumber string    `json:"contact_number,omitempty"`
	Polling       bool      `json:"polling"`
	StartedAt     time.Time `json:"started_at"`
	LastActivity  time.Time `json:"last_activity"`
	Samples       int       `json:"samples"`
}

// SessionListResponse is the active-session snapshot.
type SessionListResponse struct {
	Sessions []SessionResponse `json:"sessions"`
	Total    int               `json:"total"`
}

// ConvertEvent maps a detector event to its DTO.
func ConvertEvent(e domain.BoundaryEvent) BoundaryEventDTO {
	return BoundaryEventDTO{
		ZoneID:                      e.ZoneID,
		ZoneName:                    e.ZoneName,
		Type:                        string(e.Type),
		Severity:                    string(e.Severity),
		DistanceM:                   e.DistanceM,
		Inside:                      e.Inside(),
		EstimatedMinutesToViolation: e.EstimatedMinutesToViolation,
		Location:                    e.Location,
	}
}

// ConvertZone maps a boundary zone to its DTO. fishingNow is resolved by the
// caller against the registry clock.
func ConvertZone(z *domain.BoundaryZone, fishingNow bool) ZoneResponse {
	resp := ZoneResponse{
		ID:                z.ID,
		Name:              z.Name,
		Kind:              string(z.Kind),
		Polygon:           z.Polygon,
		WarningDistanceM:  z.WarningDistanceM,
		CriticalDistanceM: z.CriticalDistanceM,
		FishingAllowed:    z.FishingAllowed,
		FishingAllowedNow: fishingNow,
		Severity:          string(z.Severity),
		Penalty:           z.Penalty,
	}
	for _, w := range z.SeasonalWindows {
		resp.SeasonalWindows = append(resp.SeasonalWindows, SeasonalWindowDTO{
			Start: formatMonthDay(w.StartMonth, w.StartDay),
			End:   formatMonthDay(w.EndMonth, w.EndDay),
		})
	}
	return resp
}

// ConvertViolation maps a ledger record to its DTO.
func ConvertViolation(r *domain.ViolationRecord) ViolationResponse {
	return ViolationResponse{
		ID:                          r.ID.String(),
		BoatID:                      r.Vessel.BoatID,
		LicenseNumber:               r.Vessel.LicenseNumber,
		ContactNumber:               r.Vessel.ContactNumber,
		ZoneID:                      r.ZoneID,
		ZoneName:                    r.ZoneName,
		Type:                        string(r.Type),
		Severity:                    string(r.Severity),
		DistanceM:                   r.DistanceM,
		EstimatedMinutesToViolation: r.EstimatedMinutesToViolation,
		Location:                    r.Location,
		OccurredAt:                  r.OccurredAt,
		Acknowledged:                r.Acknowledged,
		ResolvedAt:                  r.ResolvedAt,
		AutoReported:                r.AutoReported,
		CreatedAt:                   r.CreatedAt,
	}
}

// ConvertSession maps a manager snapshot entry to its DTO.
func ConvertSession(info monitor.SessionInfo) SessionResponse {
	return SessionResponse{
		BoatID:        info.Vessel.BoatID,
		LicenseNumber: info.Vessel.LicenseNumber,
		ContactNumber: info.Vessel.ContactNumber,
		Polling:       info.Polling,
		StartedAt:     info.StartedAt,
		LastActivity:  info.LastActivity,
		Samples:       info.Samples,
	}
}

func formatMonthDay(m time.Month, d int) string {
	return time.Date(2000, m, d, 0, 0, 0, 0, time.UTC).Format("01-02")
}
