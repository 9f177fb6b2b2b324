package dashboard

import (
	"time"

	"github.com/c2h5oh/datasize"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/allocview/internal/stress"
)

// Frame rate limits.
const (
	DefaultFrameRate = 60
	MinFrameRate     = 1
	MaxFrameRate     = 240
)

// Model is the Bubble Tea model for the dashboard. Each tickMsg samples the
// metrics once, key messages that arrive between ticks are applied
// immediately, and View draws the current windows.
type Model struct {
	ctrl     *Controller
	keys     keyMap
	help     help.Model
	step     datasize.ByteSize
	interval time.Duration
	source   string
	width    int
	height   int
	showHelp bool
	quitting bool
	err      error
}

// tickMsg signals one sampling period.
type tickMsg time.Time

// NewModel creates a dashboard model driving ctrl.
func NewModel(ctrl *Controller, opts Options) Model {
	rate := opts.FrameRate
	if rate < MinFrameRate || rate > MaxFrameRate {
		rate = DefaultFrameRate
	}
	step := opts.Step
	if step == 0 {
		step = stress.DefaultStep
	}
	return Model{
		ctrl:     ctrl,
		keys:     newKeyMap(),
		help:     help.New(),
		step:     step,
		interval: time.Second / time.Duration(rate),
		source:   opts.Source,
	}
}

// Init schedules the first tick.
func (m Model) Init() tea.Cmd {
	return m.tickCmd()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Help) {
			m.showHelp = !m.showHelp
			m.help.ShowAll = m.showHelp
			return m, nil
		}
		if m.ctrl.Handle(eventForKey(m.keys, msg, m.step)) {
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tickMsg:
		if err := m.ctrl.Tick(); err != nil {
			m.err = err
			m.quitting = true
			return m, tea.Quit
		}
		return m, m.tickCmd()
	}

	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.renderDashboard()
}

// Err returns the error that stopped the dashboard, if any.
func (m Model) Err() error {
	return m.err
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
