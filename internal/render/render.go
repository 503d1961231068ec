// Package render draws frames onto a terminal surface, skipping the write
// entirely when the new frame matches the one already on screen.
package render

import (
	"fmt"

	"github.com/hammamikhairi/timebar/internal/frame"
	"github.com/hammamikhairi/timebar/internal/logger"
)

// Surface is the terminal capability the renderer needs.
type Surface interface {
	// Begin moves to the top-left origin and clears what was drawn before.
	Begin() error
	// WriteRow writes already-styled text on the given 0-based row.
	WriteRow(row int, styled string) error
	// Flush makes the rows visible.
	Flush() error
}

// Renderer owns the last drawn frame. It is not safe for concurrent use;
// the driving loop is its only caller.
type Renderer struct {
	surface Surface
	styler  *Styler
	log     *logger.Logger

	last   frame.Frame
	drawn  bool
	writes int
}

// New creates a renderer that has drawn nothing yet.
func New(surface Surface, styler *Styler, log *logger.Logger) *Renderer {
	return &Renderer{
		surface: surface,
		styler:  styler,
		log:     log,
	}
}

// Render draws f unless it equals the last drawn frame, in which case no
// surface call is made. It reports whether anything was written. On error
// the baseline is left untouched so the next call retries the full frame.
func (r *Renderer) Render(f frame.Frame) (bool, error) {
	if r.drawn && f.Equal(r.last) {
		return false, nil
	}

	if err := r.surface.Begin(); err != nil {
		return false, fmt.Errorf("render: begin: %w", err)
	}
	for i, line := range f {
		if err := r.surface.WriteRow(i, r.styler.Line(line)); err != nil {
			return false, fmt.Errorf("render: row %d: %w", i, err)
		}
	}
	if err := r.surface.Flush(); err != nil {
		return false, fmt.Errorf("render: flush: %w", err)
	}

	r.last = f.Clone()
	r.drawn = true
	r.writes++
	r.log.Debug("render: drew %d lines (update #%d)", len(f), r.writes)
	return true, nil
}

// Writes returns how many updates have reached the surface.
func (r *Renderer) Writes() int { return r.writes }

// Last returns a copy of the frame currently on screen.
func (r *Renderer) Last() frame.Frame { return r.last.Clone() }

// Invalidate forgets the baseline so the next Render always draws, e.g.
// after the terminal was resized or cleared by something else.
func (r *Renderer) Invalidate() {
	r.drawn = false
	r.last = nil
}
