package chart

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rileyhilliard/allocview/internal/snapshot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func ramp(n int, step float64) []snapshot.Point {
	pts := make([]snapshot.Point, n)
	for i := range pts {
		pts[i] = snapshot.Point{X: float64(i), Y: float64(i) * step}
	}
	return pts
}

func testChart() Chart {
	return Chart{
		Title: "allocview",
		Datasets: []Dataset{
			{Name: "active", Color: lipgloss.Color("1"), Points: ramp(64, 1)},
			{Name: "mapped", Color: lipgloss.Color("2"), Points: ramp(64, 2)},
		},
		X:      Axis{Bounds: [2]float64{0, 64}, Labels: []string{"0", "32", "64"}},
		Y:      Axis{Bounds: [2]float64{0, 128}, Labels: []string{"0 MiB", "2 MiB", "4 MiB"}},
		Styles: DefaultStyles(),
	}
}

func TestRender_Dimensions(t *testing.T) {
	sizes := []struct{ w, h int }{
		{80, 24},
		{40, 12},
		{MinWidth, MinHeight},
		{200, 60},
	}

	for _, sz := range sizes {
		out := testChart().Render(sz.w, sz.h)
		assert.Equal(t, sz.w, lipgloss.Width(out), "width for %dx%d", sz.w, sz.h)
		assert.Equal(t, sz.h, lipgloss.Height(out), "height for %dx%d", sz.w, sz.h)
	}
}

func TestRender_Contents(t *testing.T) {
	out := testChart().Render(80, 24)

	assert.Contains(t, out, "allocview")
	assert.Contains(t, out, "active")
	assert.Contains(t, out, "mapped")
	assert.Contains(t, out, "4 MiB")
	assert.Contains(t, out, "0 MiB")
	assert.Contains(t, out, "64")
	assert.Contains(t, out, "└")
	assert.Contains(t, out, "╭")

	hasBraille := strings.ContainsFunc(out, func(r rune) bool {
		return r > brailleBase && r <= brailleBase+0xFF && r != '⣿'
	})
	assert.True(t, hasBraille, "expected plotted braille cells")
}

func TestRender_NoDatasets(t *testing.T) {
	c := testChart()
	c.Datasets = nil
	out := c.Render(60, 16)

	assert.Equal(t, 16, lipgloss.Height(out))
	assert.False(t, strings.ContainsFunc(out, func(r rune) bool {
		return r > brailleBase && r <= brailleBase+0xFF && r != '⣿'
	}))
}

func TestRender_TooSmall(t *testing.T) {
	out := testChart().Render(5, 3)
	assert.Contains(t, out, "too small")
}

func TestScale(t *testing.T) {
	b := [2]float64{0, 100}
	assert.Equal(t, 0, scale(0, b, 11))
	assert.Equal(t, 5, scale(50, b, 11))
	assert.Equal(t, 10, scale(100, b, 11))
	assert.Equal(t, 10, scale(500, b, 11), "clamps above")
	assert.Equal(t, 0, scale(-5, b, 11), "clamps below")
	assert.Equal(t, 0, scale(5, [2]float64{3, 3}, 11), "empty range")
}

func TestSpreadYLabels(t *testing.T) {
	got := spreadYLabels([]string{"lo", "mid", "hi"}, 5)
	assert.Equal(t, []string{"hi", "", "mid", "", "lo"}, got)

	got = spreadYLabels([]string{"only"}, 3)
	assert.Equal(t, []string{"", "", "only"}, got)

	got = spreadYLabels([]string{"a", "b", "c", "d", "e"}, 2)
	require.Len(t, got, 2)
	assert.Equal(t, "e", got[0], "upper label wins a shared row")
	assert.NotEmpty(t, got[1])
}

func TestSpreadXLabels(t *testing.T) {
	got := spreadXLabels([]string{"0", "512"}, 10)
	assert.Equal(t, "0      512", got)
	assert.Len(t, []rune(spreadXLabels([]string{"0", "256", "512"}, 20)), 20)
}

func TestCanvas_SetAndCell(t *testing.T) {
	cv := newCanvas(2, 1)

	cv.set(0, 0, 0)
	r, owner := cv.cell(0, 0)
	assert.Equal(t, '⠁', r)
	assert.Equal(t, 0, owner)

	cv.set(3, 3, 1)
	r, owner = cv.cell(1, 0)
	assert.Equal(t, '⢀', r)
	assert.Equal(t, 1, owner)

	cv.set(99, 99, 0)
	cv.set(-1, 0, 0)
	r, owner = cv.cell(0, 0)
	assert.Equal(t, '⠁', r)
	assert.Equal(t, 0, owner)
}

func TestCanvas_EmptyCell(t *testing.T) {
	cv := newCanvas(1, 1)
	r, owner := cv.cell(0, 0)
	assert.Equal(t, ' ', r)
	assert.Equal(t, noSeries, owner)
}

func TestCanvas_LineFillsColumn(t *testing.T) {
	cv := newCanvas(1, 1)
	cv.line(0, 0, 0, 3, 0)
	r, _ := cv.cell(0, 0)
	assert.Equal(t, '⡇', r)
}
