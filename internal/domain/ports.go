package domain

import (
	"context"
	"time"
)

// Clock provides the current instant. The system implementation returns
// local time; tests pin it.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the host's local clock.
type SystemClock struct{}

// Now returns the current local time.
func (SystemClock) Now() time.Time { return time.Now() }

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

// Now calls f.
func (f ClockFunc) Now() time.Time { return f() }

// Notifier delivers timer completion notices to the user. Implementations
// can play a sound, write to a log, or do nothing.
type Notifier interface {
	Notify(ctx context.Context, timer Timer) error
}

// ScheduleSource exposes the configured intervals to the frame composer.
// Implementations must return intervals in file order.
type ScheduleSource interface {
	TimeBlocks() []TimeBlock
	Timers() []Timer
	Partition(now time.Time) (active, completed []Timer)
}
