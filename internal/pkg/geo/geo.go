// Package geo is the pure geometry kernel: great-circle distances, bearings
// and polygon tests over WGS84 coordinates using a spherical approximation.
// No datum correction is applied; accuracy is well within the alerting
// margins this service works with.
package geo

import (
	"math"

	"github.com/vessel-monitor/internal/domain"
)

const (
	earthRadiusM = 6371000.0
	degToRad     = math.Pi / 180.0
)

// Haversine computes the great-circle distance between two points in meters.
func Haversine(a, b domain.GeoPoint) float64 {
	dLat := (b.Lat - a.Lat) * degToRad
	dLon := (b.Lon - a.Lon) * degToRad

	lat1 := a.Lat * degToRad
	lat2 := b.Lat * degToRad

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1)*math.Cos(lat2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusM * c
}

// Bearing computes the initial great-circle bearing from one point toward
// another, in degrees normalized to [0, 360).
func Bearing(from, to domain.GeoPoint) float64 {
	lat1 := from.Lat * degToRad
	lat2 := to.Lat * degToRad
	dLon := (to.Lon - from.Lon) * degToRad

	y := math.Sin(dLon) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLon)

	deg := math.Atan2(y, x) / degToRad
	return math.Mod(deg+360, 360)
}

var compassPoints = [16]string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

// CompassLabel maps a bearing in degrees onto the nearest of the 16 compass
// points (22.5 degree sectors).
func CompassLabel(bearing float64) string {
	norm := math.Mod(math.Mod(bearing, 360)+360, 360)
	sector := int(math.Round(norm/22.5)) % 16
	return compassPoints[sector]
}

// ValidCoordinates reports whether lat/lon form a plausible WGS84 coordinate.
func ValidCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}
