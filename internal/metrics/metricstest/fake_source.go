// Package metricstest provides test doubles for the metrics package.
package metricstest

import (
	"sync"

	"emperror.dev/errors"
	"github.com/rileyhilliard/allocview/internal/metrics"
)

// FakeSource is an in-memory metrics.Source with scriptable values and failures.
type FakeSource struct {
	mu sync.Mutex

	// Values holds the value reported for each name after the next Advance.
	Values map[string]float64
	// AdvanceErr, when set, is returned by every Advance.
	AdvanceErr error
	// ReadErr maps a metric name to the error its reads return.
	ReadErr map[string]error
	// OnAdvance runs before each successful Advance publishes Values. It is
	// called with the source locked and should modify Values directly.
	OnAdvance func(f *FakeSource)

	Advances int
	resolved []string
	current  map[string]float64
}

// NewFakeSource creates a fake source that knows the given names, all at zero.
func NewFakeSource(names ...string) *FakeSource {
	values := make(map[string]float64, len(names))
	for _, n := range names {
		values[n] = 0
	}
	return &FakeSource{
		Values:  values,
		ReadErr: make(map[string]error),
	}
}

// Resolve issues a handle for any name present in Values.
func (f *FakeSource) Resolve(name string) (metrics.Handle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.Values[name]; !ok {
		return 0, errors.WithDetails(metrics.ErrUnknownMetric, "metric", name)
	}
	f.resolved = append(f.resolved, name)
	return metrics.Handle(len(f.resolved) - 1), nil
}

// Advance publishes Values so reads see them.
func (f *FakeSource) Advance() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.AdvanceErr != nil {
		return f.AdvanceErr
	}
	if f.OnAdvance != nil {
		f.OnAdvance(f)
	}
	f.current = make(map[string]float64, len(f.Values))
	for k, v := range f.Values {
		f.current[k] = v
	}
	f.Advances++
	return nil
}

// Read returns the published value for h.
func (f *FakeSource) Read(h metrics.Handle) (float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if int(h) < 0 || int(h) >= len(f.resolved) {
		return 0, metrics.ErrStaleHandle
	}
	name := f.resolved[h]
	if err := f.ReadErr[name]; err != nil {
		return 0, err
	}
	if f.current == nil {
		return 0, metrics.ErrNotAdvanced
	}
	return f.current[name], nil
}

// Set changes the value reported for name after the next Advance.
func (f *FakeSource) Set(name string, v float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Values[name] = v
}

// FailRead makes reads of name return err; nil clears the failure.
func (f *FakeSource) FailRead(name string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err == nil {
		delete(f.ReadErr, name)
		return
	}
	f.ReadErr[name] = err
}
