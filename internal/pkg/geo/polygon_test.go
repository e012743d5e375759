package geo_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vessel-monitor/internal/domain"
	"github.com/vessel-monitor/internal/pkg/geo"
)

// harborRing is a rectangle over the Mumbai harbor approaches.
var harborRing = []domain.GeoPoint{
	{Lat: 18.92, Lon: 72.80},
	{Lat: 18.92, Lon: 72.85},
	{Lat: 18.95, Lon: 72.85},
	{Lat: 18.95, Lon: 72.80},
}

func TestPointInPolygon(t *testing.T) {
	tests := []struct {
		name     string
		point    domain.GeoPoint
		expected bool
	}{
		{"center of the rectangle", domain.GeoPoint{Lat: 18.935, Lon: 72.825}, true},
		{"just inside the western edge", domain.GeoPoint{Lat: 18.935, Lon: 72.8001}, true},
		{"south of the rectangle", domain.GeoPoint{Lat: 18.90, Lon: 72.82}, false},
		{"east of the rectangle", domain.GeoPoint{Lat: 18.93, Lon: 72.90}, false},
		{"far away", domain.GeoPoint{Lat: 15.50, Lon: 73.83}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, geo.PointInPolygon(tt.point, harborRing))
		})
	}

	t.Run("concave polygon", func(t *testing.T) {
		// U shape opening north: the notch at the top center is outside.
		ring := []domain.GeoPoint{
			{Lat: 10.0, Lon: 70.0},
			{Lat: 10.0, Lon: 70.3},
			{Lat: 10.2, Lon: 70.3},
			{Lat: 10.2, Lon: 70.2},
			{Lat: 10.1, Lon: 70.2},
			{Lat: 10.1, Lon: 70.1},
			{Lat: 10.2, Lon: 70.1},
			{Lat: 10.2, Lon: 70.0},
		}
		assert.True(t, geo.PointInPolygon(domain.GeoPoint{Lat: 10.05, Lon: 70.15}, ring))
		assert.False(t, geo.PointInPolygon(domain.GeoPoint{Lat: 10.15, Lon: 70.15}, ring))
	})

	t.Run("deterministic across repeated calls", func(t *testing.T) {
		p := domain.GeoPoint{Lat: 18.93, Lon: 72.82}
		first := geo.PointInPolygon(p, harborRing)
		for i := 0; i < 100; i++ {
			assert.Equal(t, first, geo.PointInPolygon(p, harborRing))
		}
	})

	t.Run("fewer than three vertices is never inside", func(t *testing.T) {
		p := domain.GeoPoint{Lat: 18.93, Lon: 72.82}
		assert.False(t, geo.PointInPolygon(p, nil))
		assert.False(t, geo.PointInPolygon(p, harborRing[:1]))
		assert.False(t, geo.PointInPolygon(p, harborRing[:2]))
	})
}

func TestNearestVertex(t *testing.T) {
	t.Run("picks the closest vertex", func(t *testing.T) {
		p := domain.GeoPoint{Lat: 18.921, Lon: 72.801}
		v, d := geo.NearestVertex(p, harborRing)
		assert.Equal(t, harborRing[0], v)
		assert.InDelta(t, geo.Haversine(p, harborRing[0]), d, 1e-9)
	})

	t.Run("empty ring yields infinite distance", func(t *testing.T) {
		_, d := geo.NearestVertex(domain.GeoPoint{Lat: 18.93, Lon: 72.82}, nil)
		assert.True(t, math.IsInf(d, 1))
	})
}

func TestDistanceToPolygon(t *testing.T) {
	p := domain.GeoPoint{Lat: 18.90, Lon: 72.80}
	_, want := geo.NearestVertex(p, harborRing)
	assert.InDelta(t, want, geo.DistanceToPolygon(p, harborRing), 1e-9)

	t.Run("zero at a vertex", func(t *testing.T) {
		assert.InDelta(t, 0, geo.DistanceToPolygon(harborRing[2], harborRing), 1e-9)
	})
}
