package timer

import (
	"testing"
	"time"

	"github.com/hammamikhairi/timebar/internal/domain"
	"github.com/hammamikhairi/timebar/internal/logger"
	"github.com/hammamikhairi/timebar/internal/registry"
)

func newTestWatcher() *Watcher {
	log := logger.New(logger.LevelOff, nil)
	reg := registry.New(domain.Schedule{
		Timers: []domain.Timer{
			{Name: "coffee", Target: domain.MustTimeOfDay("08:30"), Message: "refill", Repeat: "daily"},
			{Name: "standup", Target: domain.MustTimeOfDay("10:00"), Message: "join the call", Repeat: "daily"},
			{Name: "also standup", Target: domain.MustTimeOfDay("10:00"), Repeat: "daily"},
		},
	}, log)
	return NewWatcher(reg, log)
}

func clock(h, m, s int) time.Time {
	return time.Date(2024, 6, 3, h, m, s, 0, time.Local)
}

func names(ts []domain.Timer) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = t.Name
	}
	return out
}

func TestWatcherFirstObservationOnlyPrimes(t *testing.T) {
	w := newTestWatcher()
	if fired := w.Observe(clock(12, 0, 0)); len(fired) != 0 {
		t.Fatalf("expected nothing on first observation, got %v", names(fired))
	}
	if fired := w.Observe(clock(12, 0, 1)); len(fired) != 0 {
		t.Fatalf("already-completed timers must not fire, got %v", names(fired))
	}
}

func TestWatcherReportsTransitionOnce(t *testing.T) {
	w := newTestWatcher()
	w.Observe(clock(9, 59, 58))

	if fired := w.Observe(clock(9, 59, 59)); len(fired) != 0 {
		t.Fatalf("fired early: %v", names(fired))
	}

	fired := w.Observe(clock(10, 0, 0))
	if len(fired) != 2 || fired[0].Name != "standup" || fired[1].Name != "also standup" {
		t.Fatalf("expected both 10:00 timers in file order, got %v", names(fired))
	}

	if fired := w.Observe(clock(10, 0, 1)); len(fired) != 0 {
		t.Fatalf("timer reported twice: %v", names(fired))
	}
}

func TestWatcherCatchesSkippedTicks(t *testing.T) {
	w := newTestWatcher()
	w.Observe(clock(7, 0, 0))

	fired := w.Observe(clock(11, 0, 0))
	if len(fired) != 3 {
		t.Fatalf("expected every timer passed since last tick, got %v", names(fired))
	}
}

func TestWatcherRearmsAfterMidnight(t *testing.T) {
	w := newTestWatcher()
	w.Observe(clock(23, 59, 0))

	next := time.Date(2024, 6, 4, 0, 1, 0, 0, time.Local)
	if fired := w.Observe(next); len(fired) != 0 {
		t.Fatalf("midnight must not fire anything, got %v", names(fired))
	}

	fired := w.Observe(time.Date(2024, 6, 4, 8, 30, 0, 0, time.Local))
	if len(fired) != 1 || fired[0].Name != "coffee" {
		t.Fatalf("expected coffee to fire again the next day, got %v", names(fired))
	}
}

func TestMessage(t *testing.T) {
	if got := Message(domain.Timer{Name: "standup", Message: "join"}); got != "[Timer] standup is up: join" {
		t.Fatalf("unexpected message %q", got)
	}
	if got := Message(domain.Timer{Name: "plain"}); got != "[Timer] plain is up." {
		t.Fatalf("unexpected message %q", got)
	}
}
