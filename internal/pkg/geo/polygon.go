package geo

import (
	"math"

	"github.com/vessel-monitor/internal/domain"
)

// PointInPolygon tests containment with a ray-casting parity test over the
// closed ring (the wrap from the last vertex back to the first is implied).
// Rings with fewer than three vertices fail closed: never inside. Points
// exactly on an edge are resolved by the parity arithmetic; the result for
// identical inputs is always identical.
func PointInPolygon(p domain.GeoPoint, ring []domain.GeoPoint) bool {
	if len(ring) < 3 {
		return false
	}

	inside := false
	j := len(ring) - 1
	for i := 0; i < len(ring); i++ {
		vi, vj := ring[i], ring[j]
		if (vi.Lat > p.Lat) != (vj.Lat > p.Lat) {
			crossLon := vi.Lon + (p.Lat-vi.Lat)*(vj.Lon-vi.Lon)/(vj.Lat-vi.Lat)
			if p.Lon < crossLon {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

// NearestVertex returns the ring vertex closest to p and its distance in
// meters. An empty ring yields a zero point and +Inf.
func NearestVertex(p domain.GeoPoint, ring []domain.GeoPoint) (domain.GeoPoint, float64) {
	best := domain.GeoPoint{}
	bestDist := math.Inf(1)

	for _, v := range ring {
		if d := Haversine(p, v); d < bestDist {
			best = v
			bestDist = d
		}
	}
	return best, bestDist
}

// DistanceToPolygon returns the minimum distance in meters from p to any
// vertex of the ring.
//
// This is a vertex approximation, not true point-to-segment distance, so it
// overestimates near long edges. The alerting thresholds are calibrated to
// this behavior; changing it to segment distance would shift every warning
// and critical ring outward.
func DistanceToPolygon(p domain.GeoPoint, ring []domain.GeoPoint) float64 {
	_, d := NearestVertex(p, ring)
	return d
}
