package display

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hammamikhairi/timebar/internal/domain"
	"github.com/hammamikhairi/timebar/internal/logger"
	"github.com/hammamikhairi/timebar/internal/registry"
	"github.com/hammamikhairi/timebar/internal/render"
	"github.com/hammamikhairi/timebar/internal/view"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

type recordingNotifier struct {
	mu    sync.Mutex
	names []string
}

func (n *recordingNotifier) Notify(_ context.Context, t domain.Timer) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.names = append(n.names, t.Name)
	return nil
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.names)
}

var (
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	keyQ     = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}
	keyCtrlC = tea.KeyMsg{Type: tea.KeyCtrlC}
	keyX     = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}
)

func at(h, m, s int) time.Time {
	return time.Date(2024, 6, 3, h, m, s, 0, time.Local)
}

func newTestDashboard(clock domain.Clock, n domain.Notifier) *Dashboard {
	log := logger.New(logger.LevelOff, nil)
	reg := registry.New(domain.Schedule{
		TimeBlocks: []domain.TimeBlock{
			{Name: "deep work", Start: domain.MustTimeOfDay("09:00"), End: domain.MustTimeOfDay("12:00")},
		},
		Timers: []domain.Timer{
			{Name: "standup", Target: domain.MustTimeOfDay("10:00"), Message: "join the call", Repeat: "daily"},
		},
	}, log)
	return New(reg, time.Millisecond, log, WithClock(clock), WithNotifier(n))
}

func newTestModel(clock domain.Clock, n domain.Notifier) model {
	return newTestDashboard(clock, n).newModel(context.Background(), render.PlainStyler())
}

func update(t *testing.T, m model, msg tea.Msg) (model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(model)
	require.True(t, ok)
	return out, cmd
}

func TestTickDrawsMainView(t *testing.T) {
	clock := &fakeClock{now: at(9, 30, 0)}
	m := newTestModel(clock, &recordingNotifier{})

	m, _ = update(t, m, tickMsg(clock.Now()))
	out := m.View()
	assert.Contains(t, out, "TIME: 09:30")
	assert.Contains(t, out, "Day Progress: [Monday]")
	assert.Contains(t, out, "tab next view • space elapsed/left • q quit")
}

func TestIdleTicksWriteOnce(t *testing.T) {
	clock := &fakeClock{now: at(9, 30, 0)}
	m := newTestModel(clock, &recordingNotifier{})

	m, _ = update(t, m, tickMsg(clock.Now()))
	m, _ = update(t, m, tickMsg(clock.Now()))
	clock.Set(at(9, 30, 40))
	m, _ = update(t, m, tickMsg(clock.Now()))
	assert.Equal(t, 1, m.renderer.Writes(), "same minute, same frame")

	clock.Set(at(9, 31, 0))
	m, _ = update(t, m, tickMsg(clock.Now()))
	assert.Equal(t, 2, m.renderer.Writes())
}

func TestKeysDriveViewState(t *testing.T) {
	clock := &fakeClock{now: at(9, 30, 0)}
	m := newTestModel(clock, &recordingNotifier{})
	m, _ = update(t, m, tickMsg(clock.Now()))

	m, cmd := update(t, m, keyTab)
	assert.NotNil(t, cmd, "title update")
	assert.Equal(t, view.TimeLimits, m.state.Current)
	assert.Contains(t, m.View(), "Active Timers")
	assert.Contains(t, m.View(), "standup (10:00)")

	m, _ = update(t, m, keyTab)
	assert.Equal(t, view.TimeBlocks, m.state.Current)
	assert.Contains(t, m.View(), "deep work [09:00-12:00] [17%] [2h 30m left]")

	m, _ = update(t, m, keyTab)
	assert.Equal(t, view.Main, m.state.Current)

	m, _ = update(t, m, keySpace)
	assert.True(t, m.state.ShowRemaining)
	assert.Contains(t, m.View(), "Day Left: [Monday]")

	writes := m.renderer.Writes()
	m, cmd = update(t, m, keyX)
	assert.Nil(t, cmd)
	assert.Equal(t, writes, m.renderer.Writes(), "unknown keys don't redraw")
}

func TestQuitKeys(t *testing.T) {
	for _, k := range []tea.KeyMsg{keyQ, keyCtrlC} {
		clock := &fakeClock{now: at(9, 30, 0)}
		m := newTestModel(clock, &recordingNotifier{})
		m, _ = update(t, m, tickMsg(clock.Now()))

		m, cmd := update(t, m, k)
		require.NotNil(t, cmd, k.String())
		_, isQuit := cmd().(tea.QuitMsg)
		assert.True(t, isQuit, k.String())
		assert.True(t, m.quitting)
		assert.Equal(t, "", m.View())
	}
}

func TestTimerCompletionShowsStatusAndNotifies(t *testing.T) {
	clock := &fakeClock{now: at(9, 59, 59)}
	notifier := &recordingNotifier{}
	m := newTestModel(clock, notifier)

	m, _ = update(t, m, tickMsg(clock.Now()))
	assert.NotContains(t, m.View(), "[Timer]")

	clock.Set(at(10, 0, 0))
	m, cmd := update(t, m, tickMsg(clock.Now()))
	assert.Contains(t, m.View(), "[Timer] standup is up: join the call")

	runBatch(t, cmd)
	assert.Equal(t, 1, notifier.count())

	// The notice expires.
	clock.Set(at(10, 0, 0).Add(statusTTL))
	m, _ = update(t, m, tickMsg(clock.Now()))
	assert.NotContains(t, m.View(), "[Timer]")
}

// runBatch executes every command in a batch, skipping nothing. Tick
// commands only sleep for the test interval.
func runBatch(t *testing.T, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		return
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			runBatch(t, c)
		}
	}
}

func TestDashboardEndToEnd(t *testing.T) {
	clock := &fakeClock{now: at(9, 30, 0)}
	m := newTestModel(clock, &recordingNotifier{})

	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(100, 30))
	teatest.WaitFor(t, tm.Output(), func(b []byte) bool {
		return bytes.Contains(b, []byte("TIME: 09:30"))
	}, teatest.WithDuration(2*time.Second))

	tm.Send(keyTab)
	teatest.WaitFor(t, tm.Output(), func(b []byte) bool {
		return bytes.Contains(b, []byte("Active Timers"))
	}, teatest.WithDuration(2*time.Second))

	tm.Send(keyQ)
	tm.WaitFinished(t, teatest.WithFinalTimeout(2*time.Second))

	final, ok := tm.FinalModel(t).(model)
	require.True(t, ok)
	assert.True(t, final.quitting)
	assert.Equal(t, view.TimeLimits, final.state.Current)
}

func TestRunPlainStopsOnCancel(t *testing.T) {
	clock := &fakeClock{now: at(9, 30, 0)}
	d := newTestDashboard(clock, &recordingNotifier{})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	var buf bytes.Buffer
	require.NoError(t, d.RunPlain(ctx, &buf, render.PlainStyler()))

	// The clock never moved, so exactly one frame reached the stream.
	assert.Equal(t, 1, strings.Count(buf.String(), "TIME: 09:30"))
}

func TestSnapshot(t *testing.T) {
	d := newTestDashboard(&fakeClock{}, nil)

	var buf bytes.Buffer
	err := Snapshot(d.src, view.State{Current: view.TimeLimits}, at(11, 0, 0), &buf, render.PlainStyler(), d.log)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Completed Timers\n  standup (10:00) - join the call\n")
}
