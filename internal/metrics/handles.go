package metrics

import (
	"fmt"

	"emperror.dev/errors"
	averrors "github.com/rileyhilliard/allocview/internal/errors"
)

// Handles caches one resolved Handle per tracked metric name.
// Index i of Read corresponds to Names()[i].
type Handles struct {
	source  Source
	names   []string
	handles []Handle
}

// New resolves every name against source. Resolution is all-or-nothing:
// the first failure is returned as a RESOLUTION error and no Handles is built.
func New(source Source, names []string) (*Handles, error) {
	if source == nil {
		return nil, averrors.WrapWithCode(ErrSourceUnavailable, averrors.ErrResolution,
			"No metric source configured",
			"Pick a source with --source runtime or --source process")
	}
	if len(names) == 0 {
		return nil, averrors.New(averrors.ErrResolution,
			"No metrics to track",
			"At least one metric name is required")
	}

	h := &Handles{
		source:  source,
		names:   make([]string, len(names)),
		handles: make([]Handle, len(names)),
	}
	copy(h.names, names)

	for i, name := range names {
		handle, err := source.Resolve(name)
		if err != nil {
			return nil, averrors.WrapWithCode(err, averrors.ErrResolution,
				fmt.Sprintf("Failed to create handle for `%s`", name),
				"Run 'allocview metrics' to list the metrics this source provides")
		}
		h.handles[i] = handle
	}

	return h, nil
}

// Advance refreshes the source so that subsequent reads see current values.
func (h *Handles) Advance() error {
	if err := h.source.Advance(); err != nil {
		return averrors.Wrap(err, averrors.ErrRefresh, "Failed to advance metrics epoch")
	}
	return nil
}

// Read returns the latest refreshed value of the i-th tracked metric.
func (h *Handles) Read(i int) (float64, error) {
	if i < 0 || i >= len(h.handles) {
		return 0, averrors.Wrap(errors.WithDetails(ErrStaleHandle, "index", i),
			averrors.ErrRead, fmt.Sprintf("Failed to read metric #%d", i))
	}

	v, err := h.source.Read(h.handles[i])
	if err != nil {
		return 0, averrors.Wrap(err, averrors.ErrRead, fmt.Sprintf("Failed to read `%s`", h.names[i]))
	}
	return v, nil
}

// Names returns the tracked metric names in resolution order.
func (h *Handles) Names() []string {
	out := make([]string, len(h.names))
	copy(out, h.names)
	return out
}

// Len returns the number of tracked metrics.
func (h *Handles) Len() int {
	return len(h.handles)
}
