// Package sampler turns raw position fixes into tracking samples with
// derived speed and heading, and retains a bounded per-session history.
package sampler

import (
	"sync"

	"github.com/vessel-monitor/internal/domain"
	"github.com/vessel-monitor/internal/pkg/geo"
)

// knotsPerKmh converts km/h to knots.
const knotsPerKmh = 0.539957

const DefaultHistoryLimit = 500

// Sampler owns the sample history of one monitoring session. Fixes with
// accuracy above the ceiling are still emitted and tagged, never dropped;
// weighting them is the detector's call.
type Sampler struct {
	limit    int
	ceilingM float64

	mu      sync.Mutex
	history []domain.TrackingSample // ring, oldest at head
	head    int
	size    int
}

func New(historyLimit int, accuracyCeilingM float64) *Sampler {
	if historyLimit <= 0 {
		historyLimit = DefaultHistoryLimit
	}
	return &Sampler{
		limit:    historyLimit,
		ceilingM: accuracyCeilingM,
		history:  make([]domain.TrackingSample, historyLimit),
	}
}

// Ingest builds a sample from the fix, derives speed and heading from the
// previous sample, and appends it to the history. The first sample of a
// session carries no derived fields. A duplicate timestamp carries the
// previous derivation forward instead of dividing by zero.
func (s *Sampler) Ingest(fix domain.PositionFix) domain.TrackingSample {
	s.mu.Lock()
	defer s.mu.Unlock()

	sample := domain.TrackingSample{
		Timestamp:   fix.Timestamp,
		Location:    fix.Location,
		AccuracyM:   fix.AccuracyM,
		LowAccuracy: s.ceilingM > 0 && fix.AccuracyM > s.ceilingM,
	}

	if s.size > 0 {
		prev := s.history[(s.head+s.size-1)%s.limit]
		elapsed := fix.Timestamp.Sub(prev.Timestamp)
		if elapsed <= 0 {
			sample.SpeedKnots = prev.SpeedKnots
			sample.HeadingDeg = prev.HeadingDeg
			sample.HasDerived = prev.HasDerived
		} else {
			distanceKm := geo.Haversine(prev.Location, fix.Location) / 1000
			sample.SpeedKnots = distanceKm / elapsed.Hours() * knotsPerKmh
			sample.HeadingDeg = geo.Bearing(prev.Location, fix.Location)
			sample.HasDerived = true
		}
	}

	s.push(sample)
	return sample
}

func (s *Sampler) push(sample domain.TrackingSample) {
	if s.size < s.limit {
		s.history[(s.head+s.size)%s.limit] = sample
		s.size++
		return
	}
	// Full: overwrite the oldest slot.
	s.history[s.head] = sample
	s.head = (s.head + 1) % s.limit
}

// Latest returns the most recent sample, if any.
func (s *Sampler) Latest() (domain.TrackingSample, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.size == 0 {
		return domain.TrackingSample{}, false
	}
	return s.history[(s.head+s.size-1)%s.limit], true
}

// History returns a copy of the retained samples, oldest first.
func (s *Sampler) History() []domain.TrackingSample {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.TrackingSample, s.size)
	for i := 0; i < s.size; i++ {
		out[i] = s.history[(s.head+i)%s.limit]
	}
	return out
}

// Len returns the number of retained samples.
func (s *Sampler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.size
}

// Cap returns the history capacity.
func (s *Sampler) Cap() int {
	return s.limit
}

// Reset drops the history; the next fix starts a fresh derivation chain.
func (s *Sampler) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.head = 0
	s.size = 0
}
