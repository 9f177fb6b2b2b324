package dashboard

import (
	"strings"

	"github.com/c2h5oh/datasize"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/allocview/internal/stress"
)

// shiftedDigits are the US-layout shifted digit keys, in '1'..'9','0' order.
const shiftedDigits = "!@#$%^&*()"

var digits = []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "0"}

func altKeys(keys []string) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = "alt+" + k
	}
	return out
}

type keyMap struct {
	Grow   key.Binding
	Double key.Binding
	Fill   key.Binding
	Shrink key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Grow, k.Shrink, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Grow, k.Double, k.Fill},
		{k.Shrink, k.Help, k.Quit},
	}
}

func newKeyMap() keyMap {
	shifted := strings.Split(shiftedDigits, "")
	return keyMap{
		Grow: key.NewBinding(
			key.WithKeys(digits...),
			key.WithHelp("1-0", "alloc 10-100 MiB"),
		),
		Double: key.NewBinding(
			key.WithKeys(append(shifted, altKeys(shifted)...)...),
			key.WithHelp("shift+1-0", "double size"),
		),
		Fill: key.NewBinding(
			key.WithKeys(altKeys(digits)...),
			key.WithHelp("alt+1-0", "alloc and write"),
		),
		Shrink: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "free last"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// eventForKey decodes a key press into a controller event. step is the size
// bound to the '1' key. Keys with no meaning decode to EventNone.
func eventForKey(keys keyMap, msg tea.KeyMsg, step datasize.ByteSize) Event {
	switch {
	case key.Matches(msg, keys.Quit):
		return Event{Kind: EventQuit}
	case key.Matches(msg, keys.Shrink):
		return Event{Kind: EventShrink}
	case key.Matches(msg, keys.Grow, keys.Double, keys.Fill):
		if len(msg.Runes) != 1 {
			return Event{}
		}
		r := msg.Runes[0]
		double := false
		if i := strings.IndexRune(shiftedDigits, r); i >= 0 {
			r = []rune(digits[i])[0]
			double = true
		}
		size, ok := stress.SizeForDigit(r, step, double)
		if !ok {
			return Event{}
		}
		return Event{Kind: EventGrow, Size: size, Fill: msg.Alt}
	}
	return Event{}
}
