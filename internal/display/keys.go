package display

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hammamikhairi/timebar/internal/view"
)

// ── Key bindings ─────────────────────────────────────────────────

type keyMap struct {
	Cycle     key.Binding
	Toggle    key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Cycle:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next view")),
		Toggle:    key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "elapsed/left")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// input maps a key press to the view machine's input symbol.
func (k keyMap) input(msg tea.KeyMsg) view.Input {
	switch {
	case key.Matches(msg, k.ForceQuit):
		return view.ForceQuit
	case key.Matches(msg, k.Quit):
		return view.Quit
	case key.Matches(msg, k.Cycle):
		return view.Cycle
	case key.Matches(msg, k.Toggle):
		return view.Toggle
	default:
		return view.Unrecognized
	}
}

// helpLine renders the bindings that carry help text as
// "tab next view • space elapsed/left • q quit".
func (k keyMap) helpLine() string {
	var parts []string
	for _, b := range []key.Binding{k.Cycle, k.Toggle, k.Quit} {
		h := b.Help()
		if h.Key == "" {
			continue
		}
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}
