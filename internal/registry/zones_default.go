package registry

// DefaultZones is the built-in zone set for Indian coastal waters.
// Coordinates are coarse approximations; operators supply surveyed zone
// sets through ZONES_PATH.
func DefaultZones() []ZoneConfig {
	return []ZoneConfig{
		{
			ID:   "mumbai_naval_zone",
			Name: "Mumbai Naval Exclusion Zone",
			Kind: "restricted_military",
			Polygon: []PointConfig{
				{Lat: 18.92, Lon: 72.80},
				{Lat: 18.92, Lon: 72.85},
				{Lat: 18.95, Lon: 72.85},
				{Lat: 18.95, Lon: 72.80},
			},
			WarningDistanceM:  5000,
			CriticalDistanceM: 2000,
			FishingAllowed:    false,
			Severity:          "emergency",
			Penalty:           "Vessel seizure and prosecution under the Official Secrets Act",
		},
		{
			ID:   "bombay_high_exclusion",
			Name: "Bombay High Oil Field Exclusion Zone",
			Kind: "restricted_military",
			Polygon: []PointConfig{
				{Lat: 19.20, Lon: 71.00},
				{Lat: 19.20, Lon: 71.55},
				{Lat: 19.70, Lon: 71.55},
				{Lat: 19.70, Lon: 71.00},
			},
			WarningDistanceM:  8000,
			CriticalDistanceM: 3000,
			FishingAllowed:    false,
			Severity:          "critical",
			Penalty:           "Detention and fine under the Petroleum and Minerals Act",
		},
		{
			ID:   "india_pakistan_imbl",
			Name: "India-Pakistan Maritime Boundary (Sir Creek sector)",
			Kind: "international_boundary",
			Polygon: []PointConfig{
				{Lat: 23.70, Lon: 67.20},
				{Lat: 23.70, Lon: 68.20},
				{Lat: 20.50, Lon: 66.90},
				{Lat: 20.50, Lon: 65.80},
			},
			WarningDistanceM:  15000,
			CriticalDistanceM: 8000,
			FishingAllowed:    false,
			Severity:          "emergency",
			Penalty:           "Arrest by foreign maritime security agency",
		},
		{
			ID:   "palk_strait_imbl",
			Name: "India-Sri Lanka Maritime Boundary (Palk Strait)",
			Kind: "international_boundary",
			Polygon: []PointConfig{
				{Lat: 10.10, Lon: 79.55},
				{Lat: 10.10, Lon: 80.30},
				{Lat: 9.15, Lon: 80.30},
				{Lat: 9.15, Lon: 79.55},
			},
			WarningDistanceM:  8000,
			CriticalDistanceM: 3000,
			FishingAllowed:    false,
			Severity:          "emergency",
			Penalty:           "Arrest by foreign maritime security agency",
		},
		{
			ID:   "gulf_of_mannar_park",
			Name: "Gulf of Mannar Marine National Park",
			Kind: "marine_protected",
			Polygon: []PointConfig{
				{Lat: 8.80, Lon: 78.20},
				{Lat: 8.80, Lon: 79.20},
				{Lat: 9.25, Lon: 79.20},
				{Lat: 9.25, Lon: 78.20},
			},
			WarningDistanceM:  6000,
			CriticalDistanceM: 2500,
			FishingAllowed:    false,
			Severity:          "critical",
			Penalty:           "Fine under the Wild Life (Protection) Act",
		},
		{
			ID:   "arabian_sea_beyond_eez",
			Name: "Beyond Indian EEZ (Arabian Sea sector)",
			Kind: "eez",
			Polygon: []PointConfig{
				{Lat: 20.00, Lon: 61.00},
				{Lat: 20.00, Lon: 65.50},
				{Lat: 12.00, Lon: 63.50},
				{Lat: 12.00, Lon: 59.00},
			},
			WarningDistanceM:  20000,
			CriticalDistanceM: 10000,
			FishingAllowed:    false,
			Severity:          "critical",
			Penalty:           "License suspension for unlicensed high-seas fishing",
		},
		{
			ID:   "west_coast_monsoon_ban",
			Name: "West Coast Monsoon Fishing Ban Area",
			Kind: "seasonal_ban",
			Polygon: []PointConfig{
				{Lat: 20.50, Lon: 69.50},
				{Lat: 20.50, Lon: 72.80},
				{Lat: 8.00, Lon: 77.20},
				{Lat: 8.00, Lon: 72.50},
			},
			WarningDistanceM:  10000,
			CriticalDistanceM: 4000,
			FishingAllowed:    true,
			SeasonalWindows: []WindowConfig{
				{Start: "06-01", End: "07-31"},
			},
			Severity: "warning",
			Penalty:  "Fine and catch confiscation under the Marine Fishing Regulation Act",
		},
		{
			ID:   "east_coast_monsoon_ban",
			Name: "East Coast Monsoon Fishing Ban Area",
			Kind: "seasonal_ban",
			Polygon: []PointConfig{
				{Lat: 20.00, Lon: 86.50},
				{Lat: 20.00, Lon: 88.20},
				{Lat: 11.00, Lon: 80.90},
				{Lat: 11.00, Lon: 79.90},
			},
			WarningDistanceM:  10000,
			CriticalDistanceM: 4000,
			FishingAllowed:    true,
			SeasonalWindows: []WindowConfig{
				{Start: "04-15", End: "06-14"},
			},
			Severity: "warning",
			Penalty:  "Fine and catch confiscation under the Marine Fishing Regulation Act",
		},
	}
}
