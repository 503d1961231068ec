// Package progress converts the current instant and an interval into a
// percentage and the time remaining. Every function is pure and total over
// validated intervals; nothing here clamps. Whether an overrun is an error
// or a visual cue is decided by the caller.
package progress

import (
	"fmt"
	"time"

	"github.com/hammamikhairi/timebar/internal/domain"
)

// Calendar span lengths in minutes. The year is always 365 days long.
const (
	DayMinutes  = domain.MinutesPerDay
	WeekMinutes = 7 * DayMinutes
	YearMinutes = 365 * DayMinutes
)

// Result is the outcome of measuring one interval at one instant.
type Result struct {
	// Percentage is 100 * elapsed / total. It is negative before the
	// interval starts and above 100 once it has been overrun.
	Percentage float32
	// Remaining is total - elapsed, negative on overrun.
	Remaining time.Duration
	// Overflowing reports Percentage > 100.
	Overflowing bool
}

func ratio(elapsed, total int) Result {
	pct := float32(elapsed) / float32(total) * 100
	return Result{
		Percentage:  pct,
		Remaining:   time.Duration(total-elapsed) * time.Minute,
		Overflowing: pct > 100,
	}
}

// Day measures midnight to midnight.
func Day(now time.Time) Result {
	return ratio(int(domain.ClockOf(now)), DayMinutes)
}

// Week measures Sunday 00:00 to the following Sunday 00:00.
func Week(now time.Time) Result {
	elapsed := int(now.Weekday())*DayMinutes + int(domain.ClockOf(now))
	return ratio(elapsed, WeekMinutes)
}

// Year measures from local Jan 1 00:00 over a fixed 365-day span, so the
// last day of a leap year reads slightly above 100.
func Year(now time.Time) Result {
	start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	return ratio(int(now.Sub(start)/time.Minute), YearMinutes)
}

// Block measures a time block. Before the block starts the percentage is
// negative; after it ends the percentage exceeds 100.
func Block(now time.Time, b domain.TimeBlock) Result {
	return ratio(int(domain.ClockOf(now)-b.Start), b.Minutes())
}

// Timer measures a deadline whose span runs from midnight to the target.
// At or past the target the result is exactly 100 with nothing remaining.
func Timer(now time.Time, t domain.Timer) Result {
	cur := domain.ClockOf(now)
	if cur >= t.Target {
		return Result{Percentage: 100}
	}
	return ratio(int(cur), int(t.Target))
}

// Invert returns the share of the interval still to go.
func Invert(r Result) float32 {
	return 100 - r.Percentage
}

// FormatLeft renders a duration as "Hh Mm", flooring to whole minutes.
// Negative durations are formatted by magnitude; callers choose the
// surrounding wording ("left", "over", "starts in").
func FormatLeft(d time.Duration) string {
	if d < 0 {
		d = -d
	}
	m := int(d / time.Minute)
	return fmt.Sprintf("%dh %dm", m/60, m%60)
}
