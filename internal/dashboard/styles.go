package dashboard

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/allocview/internal/chart"
)

// Dashboard color palette - neon on dark
const (
	ColorSurfaceBg = lipgloss.Color("#12121A") // Dark surface
	ColorBorder    = lipgloss.Color("#2A2A4A") // Glass border (purple tint)

	ColorTextPrimary   = lipgloss.Color("#FFFFFF")
	ColorTextSecondary = lipgloss.Color("#B4B4D0") // Lavender gray
	ColorTextMuted     = lipgloss.Color("#6B6B8D") // Purple-gray

	ColorAccent = lipgloss.Color("#FF2E97") // Neon pink
)

// SeriesColors are assigned to metrics in display order and wrap around.
var SeriesColors = []lipgloss.Color{
	lipgloss.Color("#00FFFF"), // Neon cyan
	lipgloss.Color("#39FF14"), // Neon green
	lipgloss.Color("#FFAA00"), // Electric amber
	lipgloss.Color("#BF40FF"), // Neon purple
	lipgloss.Color("#FF2E97"), // Neon pink
	lipgloss.Color("#FFFFFF"),
}

// SeriesColor returns the color for the i-th metric.
func SeriesColor(i int) lipgloss.Color {
	return SeriesColors[i%len(SeriesColors)]
}

var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary).
			Background(ColorSurfaceBg).
			Bold(true).
			Padding(0, 1)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Padding(0, 1)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary)
)

// chartStyles is the chart chrome in the dashboard palette.
func chartStyles() chart.Styles {
	return chart.Styles{
		Border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder),
		Title: lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true),
		Axis:   lipgloss.NewStyle().Foreground(ColorBorder),
		Label:  LabelStyle,
		Legend: ValueStyle,
	}
}
