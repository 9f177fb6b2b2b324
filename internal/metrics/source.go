// Package metrics resolves and reads the named memory metrics shown by the
// dashboard.
//
// A Source is the external instrumentation (the Go runtime, or the OS view of
// this process). Handles pre-resolves every tracked name against a Source once
// at startup so that each tick only pays for one Advance and N cheap reads.
package metrics

import (
	"emperror.dev/errors"
)

// Handle is an opaque, pre-resolved reference to a metric inside a Source.
// Handles are only meaningful to the Source that issued them.
type Handle int

// Source is anything that can report a fixed set of named numeric values.
//
// Advance must be called once per tick before values read through Read are
// considered current.
type Source interface {
	Resolve(name string) (Handle, error)
	Advance() error
	Read(h Handle) (float64, error)
}

// Source kinds accepted by NewSource.
const (
	SourceRuntime = "runtime"
	SourceProcess = "process"
)

const (
	// ErrUnknownMetric is returned when a name has no backing instrumentation.
	ErrUnknownMetric = errors.Sentinel("unknown metric")
	// ErrStaleHandle is returned for handles the source never issued.
	ErrStaleHandle = errors.Sentinel("stale metric handle")
	// ErrNotAdvanced is returned when a value is read before the first Advance.
	ErrNotAdvanced = errors.Sentinel("metric source has not been advanced")
	// ErrSourceUnavailable is returned when the instrumentation cannot be reached.
	ErrSourceUnavailable = errors.Sentinel("metric source unavailable")
)

// Kinds lists every source kind in display order.
func Kinds() []string {
	return []string{SourceRuntime, SourceProcess}
}

// NewSource creates the source for the given kind, observing the current process.
func NewSource(kind string) (Source, error) {
	switch kind {
	case SourceRuntime:
		return NewRuntimeSource(), nil
	case SourceProcess:
		return NewProcessSource(currentPID()), nil
	default:
		return nil, errors.WithDetails(errors.New("unsupported metric source"), "kind", kind)
	}
}

// DefaultNames returns the tracked metric names for a source kind.
func DefaultNames(kind string) []string {
	switch kind {
	case SourceProcess:
		return append([]string(nil), ProcessNames...)
	default:
		return append([]string(nil), RuntimeNames...)
	}
}
