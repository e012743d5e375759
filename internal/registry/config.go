package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/vessel-monitor/internal/domain"
	"github.com/vessel-monitor/internal/pkg/validator"
)

// ZoneConfig is the on-disk form of a boundary zone. Seasonal window
// boundaries are calendar dates in MM-DD form.
type ZoneConfig struct {
	ID                string         `json:"id" validate:"required"`
	Name              string         `json:"name" validate:"required"`
	Kind              string         `json:"kind" validate:"required,oneof=territorial eez international_boundary restricted_military marine_protected seasonal_ban"`
	Polygon           []PointConfig  `json:"polygon" validate:"required,min=3,dive"`
	WarningDistanceM  float64        `json:"warning_distance_m" validate:"required,gt=0"`
	CriticalDistanceM float64        `json:"critical_distance_m" validate:"required,gt=0"`
	FishingAllowed    bool           `json:"fishing_allowed"`
	SeasonalWindows   []WindowConfig `json:"seasonal_windows,omitempty" validate:"omitempty,dive"`
	Severity          string         `json:"severity" validate:"required,oneof=warning critical emergency"`
	Penalty           string         `json:"penalty,omitempty"`
}

type PointConfig struct {
	Lat float64 `json:"lat" validate:"min=-90,max=90"`
	Lon float64 `json:"lon" validate:"min=-180,max=180"`
}

type WindowConfig struct {
	Start string `json:"start" validate:"required,monthday"`
	End   string `json:"end" validate:"required,monthday"`
}

// LoadFile reads zone configuration from a JSON file.
func LoadFile(path string) ([]ZoneConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read zones file: %w", err)
	}

	var zones []ZoneConfig
	if err := json.Unmarshal(data, &zones); err != nil {
		return nil, fmt.Errorf("failed to parse zones file: %w", err)
	}

	return zones, nil
}

func (c ZoneConfig) toZone() (*domain.BoundaryZone, error) {
	if err := validator.Validate(c); err != nil {
		return nil, fmt.Errorf("zone %q: %w", c.ID, err)
	}
	if c.CriticalDistanceM >= c.WarningDistanceM {
		return nil, fmt.Errorf("zone %q: critical distance %.0fm must be below warning distance %.0fm",
			c.ID, c.CriticalDistanceM, c.WarningDistanceM)
	}

	ring := make([]domain.GeoPoint, len(c.Polygon))
	for i, p := range c.Polygon {
		ring[i] = domain.GeoPoint{Lat: p.Lat, Lon: p.Lon}
	}

	windows := make([]domain.SeasonalWindow, 0, len(c.SeasonalWindows))
	for _, w := range c.SeasonalWindows {
		sm, sd, err := parseMonthDay(w.Start)
		if err != nil {
			return nil, fmt.Errorf("zone %q: bad window start: %w", c.ID, err)
		}
		em, ed, err := parseMonthDay(w.End)
		if err != nil {
			return nil, fmt.Errorf("zone %q: bad window end: %w", c.ID, err)
		}
		windows = append(windows, domain.SeasonalWindow{
			StartMonth: sm,
			StartDay:   sd,
			EndMonth:   em,
			EndDay:     ed,
		})
	}

	return &domain.BoundaryZone{
		ID:                c.ID,
		Name:              c.Name,
		Kind:              domain.ZoneKind(c.Kind),
		Polygon:           ring,
		WarningDistanceM:  c.WarningDistanceM,
		CriticalDistanceM: c.CriticalDistanceM,
		FishingAllowed:    c.FishingAllowed,
		SeasonalWindows:   windows,
		Severity:          domain.Severity(c.Severity),
		Penalty:           c.Penalty,
	}, nil
}

func parseMonthDay(s string) (time.Month, int, error) {
	var month, day int
	if _, err := fmt.Sscanf(s, "%d-%d", &month, &day); err != nil {
		return 0, 0, fmt.Errorf("expected MM-DD, got %q", s)
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return 0, 0, fmt.Errorf("date %q out of range", s)
	}
	return time.Month(month), day, nil
}
