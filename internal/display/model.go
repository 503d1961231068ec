package display

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hammamikhairi/timebar/internal/domain"
	"github.com/hammamikhairi/timebar/internal/frame"
	"github.com/hammamikhairi/timebar/internal/logger"
	"github.com/hammamikhairi/timebar/internal/render"
	"github.com/hammamikhairi/timebar/internal/timer"
	"github.com/hammamikhairi/timebar/internal/view"
)

// statusTTL is how long a timer completion notice stays on screen.
const statusTTL = 30 * time.Second

// ── Bubble Tea model ─────────────────────────────────────────────

// model is the single owner of the view state and the renderer. Bubble
// Tea calls Update from one goroutine, so neither needs a lock.
type model struct {
	ctx      context.Context
	state    view.State
	composer *frame.Composer
	renderer *render.Renderer
	canvas   *render.Canvas
	watcher  *timer.Watcher
	notifier domain.Notifier
	clock    domain.Clock
	log      *logger.Logger
	keys     keyMap
	interval time.Duration

	status      string
	statusUntil time.Time
	err         error
	quitting    bool
}

// Messages.
type tickMsg time.Time

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m model) Init() tea.Cmd {
	// Draw right away instead of waiting a full interval.
	now := m.clock.Now()
	return tea.Batch(
		func() tea.Msg { return tickMsg(now) },
		tea.SetWindowTitle(windowTitle(m.state.Current)),
	)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		in := m.keys.input(msg)
		changed, quit := m.state.Apply(in)
		if quit {
			m.log.Info("quit requested (%s)", in)
			m.quitting = true
			return m, tea.Quit
		}
		if !changed {
			return m, nil
		}
		m.log.Debug("input %s: view=%s remaining=%t", in, m.state.Current, m.state.ShowRemaining)
		if err := m.redraw(m.clock.Now()); err != nil {
			return m.fail(err)
		}
		return m, tea.SetWindowTitle(windowTitle(m.state.Current))

	case tea.WindowSizeMsg:
		m.renderer.Invalidate()
		if err := m.redraw(m.clock.Now()); err != nil {
			return m.fail(err)
		}
		return m, nil

	case tickMsg:
		now := m.clock.Now()
		cmds := []tea.Cmd{tickCmd(m.interval)}
		for _, t := range m.watcher.Observe(now) {
			m.status = timer.Message(t)
			m.statusUntil = now.Add(statusTTL)
			cmds = append(cmds, notifyCmd(m.ctx, m.notifier, t, m.log))
		}
		if err := m.redraw(now); err != nil {
			return m.fail(err)
		}
		return m, tea.Batch(cmds...)
	}
	return m, nil
}

// redraw composes the current frame and hands it to the renderer, which
// skips the canvas entirely when nothing changed.
func (m *model) redraw(now time.Time) error {
	f := m.composer.Compose(m.state, now)
	if m.status != "" && now.Before(m.statusUntil) {
		f = append(f, frame.Line{}, frame.Plain(" "+m.status+" ", frame.ToneStatus))
	}
	_, err := m.renderer.Render(f)
	return err
}

func (m model) fail(err error) (tea.Model, tea.Cmd) {
	m.log.Error("display: %v", err)
	m.err = err
	m.quitting = true
	return m, tea.Quit
}

func (m model) View() string {
	if m.quitting {
		return ""
	}
	return m.canvas.String()
}

func notifyCmd(ctx context.Context, n domain.Notifier, t domain.Timer, log *logger.Logger) tea.Cmd {
	return func() tea.Msg {
		if err := n.Notify(ctx, t); err != nil {
			log.Warn("notify %q: %v", t.Name, err)
		}
		return nil
	}
}

func windowTitle(v view.View) string {
	return "timebar — " + v.Title()
}
