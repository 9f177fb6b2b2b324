// Package snapshot turns the rolling windows of a history.Store into
// plottable (index, value) series.
//
// A Snapshot is rebuilt in full on every call to Rebuild. Nothing is patched
// incrementally, so a snapshot never mixes samples from two different frames.
package snapshot

import (
	"math"

	"github.com/rileyhilliard/allocview/internal/history"
)

// Point is one plotted sample. X is the position in the window, with 0 for
// the oldest retained sample.
type Point struct {
	X float64
	Y float64
}

// Series is the materialized window of one metric.
type Series struct {
	Name   string
	Points []Point
}

// Snapshot holds one Series per tracked metric.
type Snapshot struct {
	series []Series
}

// New returns an empty snapshot.
func New() *Snapshot {
	return &Snapshot{}
}

// Rebuild replaces the contents of s with the current windows of store.
// Point buffers are reused between frames.
func (s *Snapshot) Rebuild(store *history.Store) {
	n := store.Metrics()
	if cap(s.series) < n {
		s.series = make([]Series, n)
	}
	s.series = s.series[:n]

	names := store.Names()
	for i := range s.series {
		ser := &s.series[i]
		ser.Name = names[i]
		ser.Points = ser.Points[:0]
		store.Window(i).Each(func(idx int, v float64) {
			ser.Points = append(ser.Points, Point{X: float64(idx), Y: v})
		})
	}
}

// Series returns the materialized series in tracking order.
// The slices are owned by s and are overwritten by the next Rebuild.
func (s *Snapshot) Series() []Series {
	return s.series
}

// Len returns the number of points in the longest series.
func (s *Snapshot) Len() int {
	longest := 0
	for _, ser := range s.series {
		longest = max(longest, len(ser.Points))
	}
	return longest
}

// Max returns the largest value across all series truncated to an unsigned
// integer, or 0 when every series is empty.
func (s *Snapshot) Max() uint64 {
	var peak uint64
	for _, ser := range s.series {
		for _, p := range ser.Points {
			peak = max(peak, truncate(p.Y))
		}
	}
	return peak
}

// truncate converts v to an unsigned magnitude, clamping NaN and negatives to 0.
func truncate(v float64) uint64 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= math.MaxUint64 {
		return math.MaxUint64
	}
	return uint64(v)
}
