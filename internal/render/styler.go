package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hammamikhairi/timebar/internal/frame"
)

// ── Styles ───────────────────────────────────────────────────────

// Styler maps frame tones to lipgloss styles.
type Styler struct {
	styles map[frame.Tone]lipgloss.Style
}

// NewStyler returns the dashboard palette. The calendar lines keep the
// classic red/blue/green/yellow/magenta sequence.
func NewStyler() *Styler {
	bold := lipgloss.NewStyle().Bold(true)
	return &Styler{styles: map[frame.Tone]lipgloss.Style{
		frame.ToneText:  lipgloss.NewStyle(),
		frame.ToneTitle: bold.Foreground(lipgloss.Color("#94a3b8")),
		frame.ToneTime:  bold.Foreground(lipgloss.Color("1")),
		frame.ToneDate:  bold.Foreground(lipgloss.Color("4")),
		frame.ToneDay:   bold.Foreground(lipgloss.Color("2")),
		frame.ToneWeek:  bold.Foreground(lipgloss.Color("3")),
		frame.ToneYear:  bold.Foreground(lipgloss.Color("5")),

		frame.ToneBlock:  lipgloss.NewStyle().Foreground(lipgloss.Color("#bbf7d0")),
		frame.ToneActive: lipgloss.NewStyle().Foreground(lipgloss.Color("#fde68a")),
		frame.ToneDone:   lipgloss.NewStyle().Foreground(lipgloss.Color("#71717a")),
		frame.ToneMuted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717a")).
			Italic(true),
		frame.ToneOverflow: bold.Foreground(lipgloss.Color("#fca5a5")),
		frame.ToneStatus: lipgloss.NewStyle().
			Background(lipgloss.Color("#27272a")).
			Foreground(lipgloss.Color("#fde68a")),
	}}
}

// PlainStyler renders every tone without escape codes.
func PlainStyler() *Styler {
	return &Styler{styles: map[frame.Tone]lipgloss.Style{}}
}

// Line renders one frame line to a styled string.
func (s *Styler) Line(l frame.Line) string {
	var b strings.Builder
	for _, span := range l {
		st, ok := s.styles[span.Tone]
		if !ok {
			b.WriteString(span.Text)
			continue
		}
		b.WriteString(st.Render(span.Text))
	}
	return b.String()
}
