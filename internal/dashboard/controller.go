// Package dashboard runs the live memory chart: one tick samples every metric,
// keyboard events allocate or free stress buffers, and each frame redraws the
// chart from the rolling windows.
package dashboard

import (
	"github.com/c2h5oh/datasize"
	"github.com/rileyhilliard/allocview/internal/history"
	"github.com/rileyhilliard/allocview/internal/logger"
	"github.com/rileyhilliard/allocview/internal/metrics"
	"github.com/rileyhilliard/allocview/internal/snapshot"
	"github.com/rileyhilliard/allocview/internal/stress"
)

// EventKind identifies what a keyboard event asks the controller to do.
type EventKind int

const (
	EventNone EventKind = iota
	EventQuit
	EventGrow
	EventShrink
)

// String returns a short label for logs.
func (k EventKind) String() string {
	switch k {
	case EventQuit:
		return "quit"
	case EventGrow:
		return "grow"
	case EventShrink:
		return "shrink"
	default:
		return "none"
	}
}

// Event is a decoded user action.
type Event struct {
	Kind EventKind
	Size datasize.ByteSize // EventGrow only
	Fill bool              // EventGrow only: write every byte instead of reserving
}

// Frame is everything the view needs to draw one chart.
type Frame struct {
	Series  []snapshot.Series
	Peak    uint64
	YBound  float64
	YLabels []string
	XBound  float64
	XLabels []string
	Samples int
	Buffers int
	Stress  datasize.ByteSize
}

// Controller owns the metric handles, their rolling windows, the chart
// snapshot and the stress buffers. It is not safe for concurrent use; the
// Bubble Tea event loop is its only caller.
type Controller struct {
	handles *metrics.Handles
	store   *history.Store
	snap    *snapshot.Snapshot
	stress  stress.List
	log     logger.Logger
}

// NewController creates windows of the given capacity for every handle.
// A nil log falls back to the default logger tagged with this component.
func NewController(handles *metrics.Handles, capacity int, log logger.Logger) (*Controller, error) {
	store, err := history.NewStore(handles.Names(), capacity)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.With(logger.Default(), "dashboard")
	}
	return &Controller{
		handles: handles,
		store:   store,
		snap:    snapshot.New(),
		log:     log,
	}, nil
}

// Tick advances the source and appends one sample per metric. Errors are
// fatal to the dashboard and are never retried.
func (c *Controller) Tick() error {
	if err := c.handles.Advance(); err != nil {
		c.log.Error("advance failed: %v", err)
		return err
	}
	if err := c.store.Sample(c.handles); err != nil {
		c.log.Error("sample failed: %v", err)
		return err
	}
	return nil
}

// Frame rebuilds the snapshot from the windows and computes both axes.
func (c *Controller) Frame() Frame {
	c.snap.Rebuild(c.store)

	peak := c.snap.Max()
	yBound, yLabels := YAxis(peak)
	xBound, xLabels := XAxis(c.store.Capacity())

	return Frame{
		Series:  c.snap.Series(),
		Peak:    peak,
		YBound:  yBound,
		YLabels: yLabels,
		XBound:  xBound,
		XLabels: xLabels,
		Samples: c.store.Len(),
		Buffers: c.stress.Len(),
		Stress:  c.stress.Total(),
	}
}

// Handle applies one event and reports whether the dashboard should quit.
func (c *Controller) Handle(ev Event) bool {
	switch ev.Kind {
	case EventQuit:
		c.log.Info("quit requested")
		return true
	case EventGrow:
		c.stress.Push(ev.Size, ev.Fill)
		c.log.Debug("pushed %s buffer (fill=%t), %d live", ev.Size.HumanReadable(), ev.Fill, c.stress.Len())
	case EventShrink:
		if c.stress.Pop() {
			c.log.Debug("popped buffer, %d live", c.stress.Len())
		}
	}
	return false
}
