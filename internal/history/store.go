// Package history keeps a bounded rolling window of samples per tracked metric.
//
// Every metric in a Store shares one capacity. A tick appends exactly one value
// to every window or, when any read fails, to none of them.
package history

import (
	"fmt"

	"github.com/rileyhilliard/allocview/internal/errors"
)

// DefaultCapacity is the number of samples retained per metric.
const DefaultCapacity = 512

// Reader supplies the current value of the i-th tracked metric.
type Reader interface {
	Read(i int) (float64, error)
}

// Store owns one Ring per tracked metric.
type Store struct {
	capacity int
	names    []string
	windows  []*Ring
	pending  []float64
}

// NewStore creates a store tracking names, each with room for capacity samples.
func NewStore(names []string, capacity int) (*Store, error) {
	if capacity <= 0 {
		return nil, errors.New(errors.ErrCapacity,
			fmt.Sprintf("Invalid window capacity %d", capacity),
			"Capacity must be at least 1 sample")
	}

	s := &Store{
		capacity: capacity,
		names:    make([]string, len(names)),
		windows:  make([]*Ring, len(names)),
		pending:  make([]float64, len(names)),
	}
	copy(s.names, names)
	for i := range s.windows {
		s.windows[i] = NewRing(capacity)
	}
	return s, nil
}

// Capacity returns the fixed capacity shared by every window.
func (s *Store) Capacity() int {
	return s.capacity
}

// Sample reads every metric through r and then appends one value per window.
// If any read fails nothing is appended and the read error is returned.
func (s *Store) Sample(r Reader) error {
	for i := range s.windows {
		v, err := r.Read(i)
		if err != nil {
			return err
		}
		s.pending[i] = v
	}

	for i, w := range s.windows {
		w.Push(s.pending[i])
	}
	return nil
}

// Names returns the tracked metric names.
func (s *Store) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Metrics returns the number of tracked metrics.
func (s *Store) Metrics() int {
	return len(s.windows)
}

// Window returns the ring for the i-th metric. Callers must not push to it.
func (s *Store) Window(i int) *Ring {
	return s.windows[i]
}

// Values returns a copy of the i-th metric's window, oldest first.
func (s *Store) Values(i int) []float64 {
	return s.windows[i].Values()
}

// Len returns the number of samples held per window.
func (s *Store) Len() int {
	if len(s.windows) == 0 {
		return 0
	}
	return s.windows[0].Len()
}

// Latest returns the newest value of the i-th metric.
func (s *Store) Latest(i int) (float64, bool) {
	return s.windows[i].Last()
}
