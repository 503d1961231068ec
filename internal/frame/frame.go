// Package frame builds the dashboard's text output. A Frame is plain data:
// lines of spans tagged with a style role. Styling to terminal escape
// codes happens later in the render package, so two frames compare equal
// exactly when they would draw the same thing.
package frame

import "strings"

// Tone is the style role of a span.
type Tone int

const (
	ToneText Tone = iota
	ToneTitle
	ToneTime
	ToneDate
	ToneDay
	ToneWeek
	ToneYear
	ToneBlock
	ToneActive
	ToneDone
	ToneMuted
	ToneOverflow
	ToneStatus
)

// Span is a run of text in one tone.
type Span struct {
	Text string
	Tone Tone
}

// Line is one terminal row.
type Line []Span

// Frame is the complete output of one render pass.
type Frame []Line

// Text joins a line's spans without styling.
func (l Line) Text() string {
	var b strings.Builder
	for _, s := range l {
		b.WriteString(s.Text)
	}
	return b.String()
}

// Plain returns a line made of a single span.
func Plain(text string, tone Tone) Line {
	return Line{{Text: text, Tone: tone}}
}

// Equal reports whether f and o have the same text and tones, line by line.
func (f Frame) Equal(o Frame) bool {
	if len(f) != len(o) {
		return false
	}
	for i := range f {
		if len(f[i]) != len(o[i]) {
			return false
		}
		for j := range f[i] {
			if f[i][j] != o[i][j] {
				return false
			}
		}
	}
	return true
}

// Clone returns a deep copy so a stored frame can't be changed through
// the caller's slices.
func (f Frame) Clone() Frame {
	out := make(Frame, len(f))
	for i, l := range f {
		out[i] = append(Line(nil), l...)
	}
	return out
}

// String renders the frame as unstyled text, one line per row.
func (f Frame) String() string {
	rows := make([]string, len(f))
	for i, l := range f {
		rows[i] = l.Text()
	}
	return strings.Join(rows, "\n")
}
