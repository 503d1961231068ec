// Package registry holds the time blocks and timers loaded at startup.
package registry

import (
	"time"

	"github.com/hammamikhairi/timebar/internal/domain"
	"github.com/hammamikhairi/timebar/internal/logger"
)

// Compile-time interface check.
var _ domain.ScheduleSource = (*Registry)(nil)

// Registry is an immutable, ordered view of the configured schedule.
// File order is display order. Safe for concurrent reads.
type Registry struct {
	blocks []domain.TimeBlock
	timers []domain.Timer
	log    *logger.Logger
}

// New copies the given intervals into a registry.
func New(sched domain.Schedule, log *logger.Logger) *Registry {
	r := &Registry{
		blocks: append([]domain.TimeBlock(nil), sched.TimeBlocks...),
		timers: append([]domain.Timer(nil), sched.Timers...),
		log:    log,
	}
	log.Debug("registry loaded: %d time blocks, %d timers", len(r.blocks), len(r.timers))
	return r
}

// TimeBlocks returns the configured blocks in file order. The returned
// slice is a copy.
func (r *Registry) TimeBlocks() []domain.TimeBlock {
	return append([]domain.TimeBlock(nil), r.blocks...)
}

// Timers returns every configured timer in file order.
func (r *Registry) Timers() []domain.Timer {
	return append([]domain.Timer(nil), r.timers...)
}

// Partition splits timers into those still ahead of now and those whose
// deadline has passed, keeping file order within each group. Only the
// time of day is compared; the date of now is ignored.
func (r *Registry) Partition(now time.Time) (active, completed []domain.Timer) {
	for _, t := range r.timers {
		if IsActive(now, t) {
			active = append(active, t)
		} else {
			completed = append(completed, t)
		}
	}
	r.log.Debug("partitioned timers at %s: active=%d completed=%d",
		now.Format("15:04:05"), len(active), len(completed))
	return active, completed
}

// IsActive reports whether now's time of day is strictly before the
// timer's target. Seconds count, so 13:59:30 is before a 14:00 target.
func IsActive(now time.Time, t domain.Timer) bool {
	secs := now.Hour()*3600 + now.Minute()*60 + now.Second()
	return secs < int(t.Target)*60
}
