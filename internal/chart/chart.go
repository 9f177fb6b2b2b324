// Package chart draws multi-series line charts into a character grid using
// braille dots, two horizontal and four vertical dots per terminal cell.
package chart

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/allocview/internal/snapshot"
)

// Dataset is one named, colored series of points.
type Dataset struct {
	Name   string
	Color  lipgloss.Color
	Points []snapshot.Point
}

// Axis bounds the plotted range on one dimension. Labels are spread evenly
// from the lower bound to the upper bound.
type Axis struct {
	Bounds [2]float64
	Labels []string
}

// Styles controls the chrome around the plot area.
type Styles struct {
	Border lipgloss.Style
	Title  lipgloss.Style
	Axis   lipgloss.Style
	Label  lipgloss.Style
	Legend lipgloss.Style
}

// DefaultStyles returns uncolored chrome with a rounded border.
func DefaultStyles() Styles {
	return Styles{
		Border: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()),
		Title:  lipgloss.NewStyle().Bold(true),
		Axis:   lipgloss.NewStyle(),
		Label:  lipgloss.NewStyle(),
		Legend: lipgloss.NewStyle(),
	}
}

// Chart is a bordered line chart with a title row, y labels on the left,
// x labels below the plot and a legend at the bottom.
type Chart struct {
	Title    string
	Datasets []Dataset
	X        Axis
	Y        Axis
	Styles   Styles
}

// chromeRows is the number of inner rows not used by the plot:
// title, x axis line, x labels, legend.
const chromeRows = 4

// MinWidth and MinHeight are the smallest sizes Render can lay out.
const (
	MinWidth  = 12
	MinHeight = chromeRows + 3
)

// Render draws the chart into exactly width x height cells.
func (c Chart) Render(width, height int) string {
	if width < MinWidth || height < MinHeight {
		return lipgloss.Place(max(width, 0), max(height, 0), lipgloss.Center, lipgloss.Center, "terminal too small")
	}

	innerW := width - 2
	innerH := height - 2
	labelW := 0
	for _, l := range c.Y.Labels {
		labelW = max(labelW, lipgloss.Width(l))
	}
	if labelW > innerW/3 {
		labelW = innerW / 3
	}
	cols := innerW - labelW - 1
	rows := innerH - chromeRows

	cv := newCanvas(cols, rows)
	for i, ds := range c.Datasets {
		c.plot(cv, ds.Points, i)
	}

	lines := make([]string, 0, innerH)
	lines = append(lines, c.Styles.Title.MaxWidth(innerW).Render(c.Title))

	yLabels := spreadYLabels(c.Y.Labels, rows)
	for r := 0; r < rows; r++ {
		label := truncate(yLabels[r], labelW)
		pad := strings.Repeat(" ", labelW-lipgloss.Width(label))
		lines = append(lines,
			c.Styles.Label.Render(pad+label)+c.Styles.Axis.Render("│")+c.renderRow(cv, r))
	}

	lines = append(lines, strings.Repeat(" ", labelW)+c.Styles.Axis.Render("└"+strings.Repeat("─", cols)))
	lines = append(lines, strings.Repeat(" ", labelW+1)+c.Styles.Label.Render(spreadXLabels(c.X.Labels, cols)))
	lines = append(lines, c.renderLegend(innerW))

	return c.Styles.Border.Width(innerW).Render(strings.Join(lines, "\n"))
}

// plot maps points into dot space and joins consecutive points with lines.
func (c Chart) plot(cv *canvas, points []snapshot.Point, series int) {
	w, h := cv.dotsWide(), cv.dotsHigh()
	prevX, prevY := 0, 0
	for i, p := range points {
		x := scale(p.X, c.X.Bounds, w)
		y := h - 1 - scale(p.Y, c.Y.Bounds, h)
		if i == 0 {
			cv.set(x, y, series)
		} else {
			cv.line(prevX, prevY, x, y, series)
		}
		prevX, prevY = x, y
	}
}

// scale maps v within bounds onto [0, n-1], clamping values outside the bounds.
func scale(v float64, bounds [2]float64, n int) int {
	lo, hi := bounds[0], bounds[1]
	if hi <= lo || math.IsNaN(v) {
		return 0
	}
	f := (v - lo) / (hi - lo)
	f = math.Max(0, math.Min(1, f))
	return int(math.Round(f * float64(n-1)))
}

// renderRow renders one row of cells, grouping runs of the same series so
// each run is styled once.
func (c Chart) renderRow(cv *canvas, row int) string {
	var b strings.Builder
	var run strings.Builder
	runOwner := noSeries

	flush := func() {
		if run.Len() == 0 {
			return
		}
		if runOwner == noSeries || runOwner >= len(c.Datasets) {
			b.WriteString(run.String())
		} else {
			b.WriteString(lipgloss.NewStyle().Foreground(c.Datasets[runOwner].Color).Render(run.String()))
		}
		run.Reset()
	}

	for col := 0; col < cv.cols; col++ {
		ch, owner := cv.cell(col, row)
		if owner != runOwner {
			flush()
			runOwner = owner
		}
		run.WriteRune(ch)
	}
	flush()
	return b.String()
}

func (c Chart) renderLegend(width int) string {
	parts := make([]string, 0, len(c.Datasets))
	for _, ds := range c.Datasets {
		marker := lipgloss.NewStyle().Foreground(ds.Color).Render("⣿")
		parts = append(parts, marker+" "+c.Styles.Legend.Render(ds.Name))
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(strings.Join(parts, "  "))
}

// spreadYLabels assigns labels to rows, the first label on the bottom row and
// the last on the top row. When labels outnumber rows the upper ones win.
func spreadYLabels(labels []string, rows int) []string {
	out := make([]string, rows)
	n := len(labels)
	if n == 0 || rows == 0 {
		return out
	}
	for i := n - 1; i >= 0; i-- {
		pos := 0
		if n > 1 {
			pos = int(math.Round(float64(i) * float64(rows-1) / float64(n-1)))
		}
		r := rows - 1 - pos
		if out[r] == "" {
			out[r] = labels[i]
		}
	}
	return out
}

// spreadXLabels lays labels along a line of width cells, the first one
// left-aligned and the last one right-aligned.
func spreadXLabels(labels []string, width int) string {
	buf := []rune(strings.Repeat(" ", width))
	n := len(labels)
	for i, l := range labels {
		text := []rune(l)
		if len(text) > width {
			text = text[:width]
		}
		start := 0
		if n > 1 {
			anchor := int(math.Round(float64(i) * float64(width-1) / float64(n-1)))
			start = anchor - (len(text)-1)*i/(n-1)
		}
		start = max(0, min(start, width-len(text)))
		copy(buf[start:], text)
	}
	return string(buf)
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) > width {
		return string(r[:width])
	}
	return s
}
