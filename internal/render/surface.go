package render

import (
	"bufio"
	"io"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Compile-time interface checks.
var (
	_ Surface = (*Canvas)(nil)
	_ Surface = (*Writer)(nil)
)

// Canvas is an in-memory surface. Rows are staged between Begin and Flush
// and published as one string, which the Bubble Tea view hands to the
// terminal.
type Canvas struct {
	staged    []string
	published string
}

// NewCanvas creates an empty canvas.
func NewCanvas() *Canvas { return &Canvas{} }

func (c *Canvas) Begin() error {
	c.staged = c.staged[:0]
	return nil
}

func (c *Canvas) WriteRow(row int, styled string) error {
	for len(c.staged) <= row {
		c.staged = append(c.staged, "")
	}
	c.staged[row] = styled
	return nil
}

func (c *Canvas) Flush() error {
	c.published = strings.Join(c.staged, "\n")
	return nil
}

// String returns the last flushed content.
func (c *Canvas) String() string { return c.published }

// Writer is a surface over a byte stream. With positioning enabled, Begin
// homes the cursor and erases the screen, and each row clears to the end
// of the line; without it rows are written as plain lines.
type Writer struct {
	w          *bufio.Writer
	positioned bool
}

// NewWriter wraps out. positioned selects cursor control sequences.
func NewWriter(out io.Writer, positioned bool) *Writer {
	return &Writer{w: bufio.NewWriter(out), positioned: positioned}
}

func (w *Writer) Begin() error {
	if !w.positioned {
		return nil
	}
	_, err := w.w.WriteString(ansi.CursorHomePosition + ansi.EraseEntireScreen)
	return err
}

func (w *Writer) WriteRow(row int, styled string) error {
	if row > 0 {
		if err := w.newline(); err != nil {
			return err
		}
	}
	if _, err := w.w.WriteString(styled); err != nil {
		return err
	}
	if w.positioned {
		_, err := w.w.WriteString(ansi.EraseLineRight)
		return err
	}
	return nil
}

func (w *Writer) Flush() error {
	if !w.positioned {
		if err := w.newline(); err != nil {
			return err
		}
	}
	return w.w.Flush()
}

func (w *Writer) newline() error {
	// Raw-mode terminals don't translate \n into a carriage return.
	if w.positioned {
		_, err := w.w.WriteString("\r\n")
		return err
	}
	return w.w.WriteByte('\n')
}
