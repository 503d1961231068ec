// Package view holds the dashboard's selected view and the show-remaining
// toggle, and moves between them on discrete input symbols.
package view

// View is one of the dashboard's display modes.
type View int

const (
	Main View = iota
	TimeLimits
	TimeBlocks
)

// ring is the fixed cycling order.
var ring = [...]View{Main, TimeLimits, TimeBlocks}

// RingSize is the number of views in the cycle.
const RingSize = len(ring)

// Next returns the view after v, wrapping from the last to the first.
func (v View) Next() View {
	for i, r := range ring {
		if r == v {
			return ring[(i+1)%len(ring)]
		}
	}
	return ring[0]
}

// String returns a short lowercase name, used in logs and flags.
func (v View) String() string {
	switch v {
	case Main:
		return "main"
	case TimeLimits:
		return "limits"
	case TimeBlocks:
		return "blocks"
	default:
		return "unknown"
	}
}

// Title returns the heading shown above the view.
func (v View) Title() string {
	switch v {
	case Main:
		return "Progress"
	case TimeLimits:
		return "Time Limits"
	case TimeBlocks:
		return "Time Blocks"
	default:
		return ""
	}
}

// Parse maps a name accepted by String back to a View.
func Parse(s string) (View, bool) {
	for _, v := range ring {
		if v.String() == s {
			return v, true
		}
	}
	return Main, false
}

// Input is a discrete symbol produced by the key poller.
type Input int

const (
	Unrecognized Input = iota
	Cycle
	Toggle
	Quit
	ForceQuit
)

// String returns a human-readable input name.
func (in Input) String() string {
	switch in {
	case Cycle:
		return "cycle"
	case Toggle:
		return "toggle"
	case Quit:
		return "quit"
	case ForceQuit:
		return "force-quit"
	default:
		return "unrecognized"
	}
}

// State is the session's only cross-tick UI state.
type State struct {
	Current       View
	ShowRemaining bool
}

// NewState returns the initial state: Main, showing elapsed time.
func NewState() State {
	return State{Current: Main}
}

// Apply updates s for one input. changed reports whether the state moved;
// quit asks the driving loop to stop. The machine itself never terminates.
func (s *State) Apply(in Input) (changed, quit bool) {
	switch in {
	case Cycle:
		s.Current = s.Current.Next()
		return true, false
	case Toggle:
		s.ShowRemaining = !s.ShowRemaining
		return true, false
	case Quit, ForceQuit:
		return false, true
	default:
		return false, false
	}
}
