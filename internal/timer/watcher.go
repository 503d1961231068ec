// Package timer notices when configured timers reach their deadline.
//
// Timers have no stored state: a timer is active while the clock is before
// its target time of day. The watcher compares consecutive observations
// and reports each active→completed transition exactly once. Crossing
// midnight makes every timer active again, which re-arms it for the next
// day without any date bookkeeping.
package timer

import (
	"fmt"
	"time"

	"github.com/hammamikhairi/timebar/internal/domain"
	"github.com/hammamikhairi/timebar/internal/logger"
	"github.com/hammamikhairi/timebar/internal/registry"
)

// Watcher tracks which timers were active at the last observation.
// Not safe for concurrent use; the driving loop owns it.
type Watcher struct {
	src    domain.ScheduleSource
	log    *logger.Logger
	active []bool
	primed bool
}

// NewWatcher creates a watcher over the given schedule.
func NewWatcher(src domain.ScheduleSource, log *logger.Logger) *Watcher {
	return &Watcher{src: src, log: log}
}

// Observe records the timer states at now and returns the timers that
// completed since the previous call, in file order. The first call only
// records state, so timers already past at startup are not reported.
func (w *Watcher) Observe(now time.Time) []domain.Timer {
	timers := w.src.Timers()
	current := make([]bool, len(timers))
	for i, t := range timers {
		current[i] = registry.IsActive(now, t)
	}

	var fired []domain.Timer
	if w.primed {
		for i, t := range timers {
			if i < len(w.active) && w.active[i] && !current[i] {
				fired = append(fired, t)
				w.log.Info("timer %q reached %s (repeat=%s)", t.Name, t.Target, t.Repeat)
			}
		}
	} else {
		w.log.Debug("watcher: primed with %d timers at %s", len(timers), now.Format("15:04:05"))
	}

	w.active = current
	w.primed = true
	return fired
}

// Message is the status text shown when t completes.
func Message(t domain.Timer) string {
	if t.Message == "" {
		return fmt.Sprintf("[Timer] %s is up.", t.Name)
	}
	return fmt.Sprintf("[Timer] %s is up: %s", t.Name, t.Message)
}
