package dashboard

import (
	"strings"

	"github.com/c2h5oh/datasize"
	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/allocview/internal/snapshot"
)

// Sparkline block characters representing 8 vertical levels (lowest to highest).
const sparklineBlocks = "▁▂▃▄▅▆▇█"

var sparklineBlockRunes = []rune(sparklineBlocks)

// sparklineWidth is how many recent samples each metric's sparkline shows.
const sparklineWidth = 8

// renderSparkline maps the last width points onto 8 levels between their
// min and max. A flat series sits on the middle level.
func renderSparkline(points []snapshot.Point, width int) string {
	if len(points) == 0 || width <= 0 {
		return ""
	}
	if len(points) > width {
		points = points[len(points)-width:]
	}

	minVal, maxVal := points[0].Y, points[0].Y
	for _, p := range points {
		minVal = min(minVal, p.Y)
		maxVal = max(maxVal, p.Y)
	}

	var sb strings.Builder
	sb.Grow(len(points) * 3)

	numLevels := len(sparklineBlockRunes)
	valueRange := maxVal - minVal
	for _, p := range points {
		level := numLevels / 2
		if valueRange > 0 {
			level = int((p.Y - minVal) / valueRange * float64(numLevels-1))
			level = max(0, min(level, numLevels-1))
		}
		sb.WriteRune(sparklineBlockRunes[level])
	}
	return sb.String()
}

// renderLatest is one row with every metric's recent trend and latest value.
func renderLatest(series []snapshot.Series, width int) string {
	parts := make([]string, 0, len(series))
	for i, s := range series {
		value := "-"
		if n := len(s.Points); n > 0 {
			value = datasize.ByteSize(max(s.Points[n-1].Y, 0)).HumanReadable()
		}
		spark := lipgloss.NewStyle().Foreground(SeriesColor(i)).Render(renderSparkline(s.Points, sparklineWidth))
		parts = append(parts, LabelStyle.Render(s.Name+" ")+spark+" "+ValueStyle.Render(value))
	}
	return lipgloss.NewStyle().Padding(0, 1).MaxWidth(width).Render(strings.Join(parts, "  "))
}
