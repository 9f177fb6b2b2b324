package dashboard

import (
	"fmt"
	"strings"

	"github.com/c2h5oh/datasize"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/rileyhilliard/allocview/internal/chart"
)

// Used until the first WindowSizeMsg arrives.
const (
	defaultWidth  = 80
	defaultHeight = 24
)

const chartTitle = "memory"

func (m Model) renderDashboard() string {
	width, height := m.width, m.height
	if width <= 0 || height <= 0 {
		width, height = defaultWidth, defaultHeight
	}

	frame := m.ctrl.Frame()

	header := m.renderHeader(frame, width)
	latest := renderLatest(frame.Series, width)
	footer := m.renderFooter(width)
	chartHeight := height - lipgloss.Height(header) - lipgloss.Height(latest) - lipgloss.Height(footer)

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		latest,
		m.buildChart(frame).Render(width, chartHeight),
		footer,
	)
}

func (m Model) buildChart(frame Frame) chart.Chart {
	datasets := make([]chart.Dataset, len(frame.Series))
	for i, s := range frame.Series {
		datasets[i] = chart.Dataset{
			Name:   s.Name,
			Color:  SeriesColor(i),
			Points: s.Points,
		}
	}
	return chart.Chart{
		Title:    chartTitle,
		Datasets: datasets,
		X:        chart.Axis{Bounds: [2]float64{0, frame.XBound}, Labels: frame.XLabels},
		Y:        chart.Axis{Bounds: [2]float64{0, frame.YBound}, Labels: frame.YLabels},
		Styles:   chartStyles(),
	}
}

func (m Model) renderHeader(frame Frame, width int) string {
	title := "allocview"
	if m.source != "" {
		title += " · " + m.source
	}

	stats := []string{
		LabelStyle.Render("peak ") + ValueStyle.Render(datasize.ByteSize(frame.Peak).HumanReadable()),
		LabelStyle.Render("buffers ") + ValueStyle.Render(fmt.Sprintf("%d (%s)", frame.Buffers, frame.Stress.HumanReadable())),
		LabelStyle.Render("samples ") + ValueStyle.Render(fmt.Sprintf("%d/%d", frame.Samples, int(frame.XBound))),
	}

	line := title + "  " + strings.Join(stats, "  ")
	return HeaderStyle.Width(width).MaxWidth(width).Render(ansi.Truncate(line, width-2, ""))
}

func (m Model) renderFooter(width int) string {
	return FooterStyle.Width(width).MaxWidth(width).Render(m.help.View(m.keys))
}
