// Package bar renders a percentage as a fixed-width glyph bar.
package bar

import (
	"math"
	"strings"
)

// Bar geometry and glyphs.
const (
	Width       = 50
	FilledGlyph = "█"
	EmptyGlyph  = "░"
)

// Bar is a percentage quantised to Width cells.
type Bar struct {
	Filled int
	Empty  int
	// Overflow is set when the input exceeded 100. The bar is drawn full
	// and the caller keeps the true percentage for its text.
	Overflow bool
}

// New quantises p. Cells are round(clamp(p, 0, 100) / 2), rounding half
// away from zero, so 1% fills one cell.
func New(p float32) Bar {
	clamped := math.Min(math.Max(float64(p), 0), 100)
	filled := int(math.Round(clamped / 2))
	return Bar{
		Filled:   filled,
		Empty:    Width - filled,
		Overflow: p > 100,
	}
}

// String draws the bar.
func (b Bar) String() string {
	return strings.Repeat(FilledGlyph, b.Filled) + strings.Repeat(EmptyGlyph, b.Empty)
}
