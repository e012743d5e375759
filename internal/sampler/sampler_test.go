package sampler_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vessel-monitor/internal/domain"
	"github.com/vessel-monitor/internal/sampler"
)

var t0 = time.Date(2025, time.March, 10, 6, 0, 0, 0, time.UTC)

func fixAt(lat, lon float64, at time.Time) domain.PositionFix {
	return domain.PositionFix{
		Location:  domain.GeoPoint{Lat: lat, Lon: lon},
		AccuracyM: 10,
		Timestamp: at,
	}
}

func TestIngest_FirstSampleHasNoDerivedFields(t *testing.T) {
	s := sampler.New(10, 100)

	sample := s.Ingest(fixAt(18.93, 72.82, t0))

	assert.False(t, sample.HasDerived)
	assert.Zero(t, sample.SpeedKnots)
	assert.Zero(t, sample.HeadingDeg)
}

func TestIngest_DerivesSpeedAndHeading(t *testing.T) {
	s := sampler.New(10, 100)

	// Two fixes ten minutes apart, 9.26 km due north of each other.
	s.Ingest(fixAt(18.0, 72.0, t0))
	sample := s.Ingest(fixAt(18.0832771, 72.0, t0.Add(10*time.Minute)))

	require.True(t, sample.HasDerived)
	assert.InDelta(t, 30.0, sample.SpeedKnots, 0.05)
	assert.InDelta(t, 0.0, sample.HeadingDeg, 0.5)
}

func TestIngest_DuplicateTimestampCarriesDerivationForward(t *testing.T) {
	s := sampler.New(10, 100)

	s.Ingest(fixAt(18.0, 72.0, t0))
	second := s.Ingest(fixAt(18.0832771, 72.0, t0.Add(10*time.Minute)))
	require.True(t, second.HasDerived)

	// Same timestamp, different location: no recomputation.
	third := s.Ingest(fixAt(18.2, 72.1, t0.Add(10*time.Minute)))

	assert.True(t, third.HasDerived)
	assert.Equal(t, second.SpeedKnots, third.SpeedKnots)
	assert.Equal(t, second.HeadingDeg, third.HeadingDeg)
}

func TestIngest_TagsLowAccuracyFixes(t *testing.T) {
	s := sampler.New(10, 100)

	fix := fixAt(18.93, 72.82, t0)
	fix.AccuracyM = 250

	sample := s.Ingest(fix)
	assert.True(t, sample.LowAccuracy)

	// At the ceiling is still acceptable.
	fix.AccuracyM = 100
	fix.Timestamp = t0.Add(time.Minute)
	sample = s.Ingest(fix)
	assert.False(t, sample.LowAccuracy)
}

func TestHistory_EvictsOldestWhenFull(t *testing.T) {
	s := sampler.New(3, 100)

	for i := 0; i < 5; i++ {
		s.Ingest(fixAt(18.0+float64(i)*0.01, 72.0, t0.Add(time.Duration(i)*time.Minute)))
	}

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 3, s.Cap())

	history := s.History()
	require.Len(t, history, 3)
	// Oldest two evicted; remaining samples in insertion order.
	assert.Equal(t, t0.Add(2*time.Minute), history[0].Timestamp)
	assert.Equal(t, t0.Add(4*time.Minute), history[2].Timestamp)

	latest, ok := s.Latest()
	require.True(t, ok)
	assert.Equal(t, t0.Add(4*time.Minute), latest.Timestamp)
}

func TestReset(t *testing.T) {
	s := sampler.New(3, 100)
	s.Ingest(fixAt(18.0, 72.0, t0))
	s.Reset()

	assert.Equal(t, 0, s.Len())
	_, ok := s.Latest()
	assert.False(t, ok)

	// The next fix starts a fresh chain with no derivation.
	sample := s.Ingest(fixAt(18.1, 72.0, t0.Add(time.Minute)))
	assert.False(t, sample.HasDerived)
}
