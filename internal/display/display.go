// Package display drives the dashboard: it polls keys, feeds them to the
// view state machine, composes a frame every tick and hands it to the
// differential renderer.
//
// [Dashboard.Run] uses Bubble Tea, which owns raw mode, the alternate
// screen and key reading. [Dashboard.RunPlain] is a keyless loop that
// writes straight to a stream, for panes where an alternate screen is
// unwanted.
package display

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hammamikhairi/timebar/internal/domain"
	"github.com/hammamikhairi/timebar/internal/frame"
	"github.com/hammamikhairi/timebar/internal/logger"
	"github.com/hammamikhairi/timebar/internal/render"
	"github.com/hammamikhairi/timebar/internal/timer"
	"github.com/hammamikhairi/timebar/internal/view"
)

// Option configures the dashboard.
type Option func(*Dashboard)

// WithClock replaces the system clock.
func WithClock(c domain.Clock) Option {
	return func(d *Dashboard) {
		d.clock = c
	}
}

// WithNotifier sets what happens when a timer completes.
func WithNotifier(n domain.Notifier) Option {
	return func(d *Dashboard) {
		d.notifier = n
	}
}

// WithInitialState starts on a view other than Main.
func WithInitialState(s view.State) Option {
	return func(d *Dashboard) {
		d.initial = s
	}
}

// WithTeaOptions passes extra options to the Bubble Tea program.
func WithTeaOptions(opts ...tea.ProgramOption) Option {
	return func(d *Dashboard) {
		d.teaOpts = append(d.teaOpts, opts...)
	}
}

// Dashboard wires the schedule, styling and clock into a runnable loop.
type Dashboard struct {
	src      domain.ScheduleSource
	log      *logger.Logger
	interval time.Duration
	clock    domain.Clock
	notifier domain.Notifier
	initial  view.State
	teaOpts  []tea.ProgramOption
	keys     keyMap
}

// New creates a dashboard refreshing every interval.
func New(src domain.ScheduleSource, interval time.Duration, log *logger.Logger, opts ...Option) *Dashboard {
	d := &Dashboard{
		src:      src,
		log:      log,
		interval: interval,
		clock:    domain.SystemClock{},
		initial:  view.NewState(),
		keys:     defaultKeys(),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.notifier == nil {
		d.notifier = noopNotifier{}
	}
	return d
}

func (d *Dashboard) newModel(ctx context.Context, styler *render.Styler) model {
	canvas := render.NewCanvas()
	return model{
		ctx:      ctx,
		state:    d.initial,
		composer: frame.NewComposer(d.src, frame.WithFooter(d.keys.helpLine())),
		renderer: render.New(canvas, styler, d.log),
		canvas:   canvas,
		watcher:  timer.NewWatcher(d.src, d.log),
		notifier: d.notifier,
		clock:    d.clock,
		log:      d.log,
		keys:     d.keys,
		interval: d.interval,
	}
}

// Run starts the interactive dashboard on the alternate screen. Blocks
// until the user quits, ctx is cancelled, or drawing fails.
func (d *Dashboard) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	m := d.newModel(ctx, render.NewStyler())
	opts := append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, d.teaOpts...)

	d.log.Info("dashboard started (refresh=%s, view=%s)", d.interval, d.initial.Current)
	final, err := tea.NewProgram(m, opts...).Run()
	if fm, ok := final.(model); ok {
		d.log.Info("dashboard stopped after %d screen updates", fm.renderer.Writes())
		if fm.err != nil {
			return fm.err
		}
	}
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

// RunPlain redraws the selected view on out until ctx is cancelled. There
// is no key input; cancellation is the only way to stop it.
func (d *Dashboard) RunPlain(ctx context.Context, out io.Writer, styler *render.Styler) error {
	composer := frame.NewComposer(d.src)
	renderer := render.New(render.NewWriter(out, true), styler, d.log)
	watcher := timer.NewWatcher(d.src, d.log)

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	d.log.Info("plain loop started (refresh=%s, view=%s)", d.interval, d.initial.Current)
	for {
		now := d.clock.Now()
		for _, t := range watcher.Observe(now) {
			if err := d.notifier.Notify(ctx, t); err != nil {
				d.log.Warn("notify %q: %v", t.Name, err)
			}
		}
		if _, err := renderer.Render(composer.Compose(d.initial, now)); err != nil {
			return fmt.Errorf("plain loop: %w", err)
		}

		select {
		case <-ctx.Done():
			d.log.Info("plain loop stopped after %d screen updates", renderer.Writes())
			return nil
		case <-ticker.C:
		}
	}
}

// Snapshot renders one frame for the given state to out without any
// cursor control.
func Snapshot(src domain.ScheduleSource, state view.State, now time.Time, out io.Writer, styler *render.Styler, log *logger.Logger) error {
	f := frame.NewComposer(src).Compose(state, now)
	_, err := render.New(render.NewWriter(out, false), styler, log).Render(f)
	return err
}

type noopNotifier struct{}

func (noopNotifier) Notify(context.Context, domain.Timer) error { return nil }
