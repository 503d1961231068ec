package frame

import (
	"fmt"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/hammamikhairi/timebar/internal/bar"
	"github.com/hammamikhairi/timebar/internal/domain"
	"github.com/hammamikhairi/timebar/internal/progress"
	"github.com/hammamikhairi/timebar/internal/view"
)

// Option configures a Composer.
type Option func(*Composer)

// WithFooter appends a muted line, typically key help, under every view.
func WithFooter(text string) Option {
	return func(c *Composer) {
		c.footer = text
	}
}

// Composer turns the view state, the clock reading and the schedule into
// a Frame. Compose only reads; it never changes the schedule.
type Composer struct {
	src    domain.ScheduleSource
	footer string
}

// NewComposer creates a composer over the given schedule.
func NewComposer(src domain.ScheduleSource, opts ...Option) *Composer {
	c := &Composer{src: src}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compose builds the frame for the selected view at now.
func (c *Composer) Compose(state view.State, now time.Time) Frame {
	var f Frame
	switch state.Current {
	case view.TimeLimits:
		f = c.timeLimits(now)
	case view.TimeBlocks:
		f = c.timeBlocks(now)
	default:
		f = c.main(now, state.ShowRemaining)
	}
	if c.footer != "" {
		f = append(f, Line{}, Plain(c.footer, ToneMuted))
	}
	return f
}

// ── Main ─────────────────────────────────────────────────────────

func (c *Composer) main(now time.Time, showRemaining bool) Frame {
	_, week := now.ISOWeek()
	return Frame{
		Plain(fmt.Sprintf("TIME: %02d:%02d", now.Hour(), now.Minute()), ToneTime),
		Plain(fmt.Sprintf("DATE: %02d/%02d/%04d", now.Day(), int(now.Month()), now.Year()), ToneDate),
		calendarLine("Day", now.Weekday().String(), progress.Day(now), showRemaining, ToneDay),
		calendarLine("Week", fmt.Sprintf("W:%02d", week), progress.Week(now), showRemaining, ToneWeek),
		calendarLine("Year", fmt.Sprintf("Y:%04d", now.Year()), progress.Year(now), showRemaining, ToneYear),
	}
}

// calendarLine renders e.g. "Day Progress: [Monday][42%][████░░…]".
func calendarLine(label, tag string, r progress.Result, showRemaining bool, tone Tone) Line {
	pct, framing := r.Percentage, "Progress"
	if showRemaining {
		pct, framing = progress.Invert(r), "Left"
	}
	b := bar.New(pct)
	return Line{
		{Text: fmt.Sprintf("%s %s: [%s][%02.0f%%][", label, framing, tag, pct), Tone: tone},
		{Text: b.String(), Tone: barTone(b, tone)},
		{Text: "]", Tone: tone},
	}
}

func barTone(b bar.Bar, normal Tone) Tone {
	if b.Overflow {
		return ToneOverflow
	}
	return normal
}

// ── Time blocks ──────────────────────────────────────────────────

func (c *Composer) timeBlocks(now time.Time) Frame {
	f := Frame{Plain(view.TimeBlocks.Title(), ToneTitle), Line{}}

	blocks := c.src.TimeBlocks()
	if len(blocks) == 0 {
		return append(f, Plain("No time blocks configured.", ToneMuted))
	}

	width := 0
	for _, b := range blocks {
		width = max(width, runewidth.StringWidth(b.Name))
	}

	for _, blk := range blocks {
		r := progress.Block(now, blk)
		b := bar.New(r.Percentage)
		name := runewidth.FillRight(blk.Name, width)
		span := fmt.Sprintf("[%s-%s]", blk.Start, blk.End)

		var status string
		tone := ToneBlock
		switch {
		case r.Percentage < 0:
			startsIn := r.Remaining - time.Duration(blk.Minutes())*time.Minute
			status = fmt.Sprintf("[--%%] [starts in %s]", progress.FormatLeft(startsIn))
			tone = ToneMuted
		case r.Overflowing:
			status = fmt.Sprintf("[%.0f%%] [%s over]", r.Percentage, progress.FormatLeft(r.Remaining))
			tone = ToneOverflow
		default:
			status = fmt.Sprintf("[%.0f%%] [%s left]", r.Percentage, progress.FormatLeft(r.Remaining))
		}

		f = append(f, Line{
			{Text: fmt.Sprintf("%s %s %s [", name, span, status), Tone: tone},
			{Text: b.String(), Tone: barTone(b, tone)},
			{Text: "]", Tone: tone},
		})
	}
	return f
}

// ── Time limits ──────────────────────────────────────────────────

func (c *Composer) timeLimits(now time.Time) Frame {
	f := Frame{Plain(view.TimeLimits.Title(), ToneTitle), Line{}}

	if len(c.src.Timers()) == 0 {
		return append(f, Plain("No timers configured.", ToneMuted))
	}

	active, completed := c.src.Partition(now)

	f = append(f, Plain("Active Timers", ToneTitle))
	if len(active) == 0 {
		f = append(f, Plain("  none", ToneMuted))
	}
	for _, t := range active {
		r := progress.Timer(now, t)
		b := bar.New(r.Percentage)
		f = append(f,
			Line{
				{Text: fmt.Sprintf("  %s (%s) [%d%%] [", t.Name, t.Target, int(r.Percentage)), Tone: ToneActive},
				{Text: b.String(), Tone: ToneActive},
				{Text: "]", Tone: ToneActive},
			},
			Plain("      "+t.Message, ToneMuted),
		)
	}

	f = append(f, Line{}, Plain("Completed Timers", ToneTitle))
	if len(completed) == 0 {
		f = append(f, Plain("  none", ToneMuted))
	}
	for _, t := range completed {
		f = append(f, Plain(fmt.Sprintf("  %s (%s) - %s", t.Name, t.Target, t.Message), ToneDone))
	}
	return f
}
