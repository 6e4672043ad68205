package cli

import (
	"testing"
	"time"

	"github.com/alexanderramin/studysync/internal/pomodoro"
	"github.com/alexanderramin/studysync/internal/teatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPomodoro(t *testing.T, every int) *teatest.Driver {
	t.Helper()
	timer, err := pomodoro.New(pomodoro.Config{
		Focus: 2 * time.Second,
		Short: time.Second,
		Long:  3 * time.Second,
		Every: every,
	})
	require.NoError(t, err)
	d := teatest.New(t, newPomodoroView(timer), teatest.WithSize(80, 20))
	d.DrainInit()
	return d
}

func pomodoroModel(d *teatest.Driver) pomodoroView {
	return d.Model.(pomodoroView)
}

// sendTicks delivers n ticks from the live chain. tea.Tick waits a real second,
// so the driver never fires them itself.
func sendTicks(d *teatest.Driver, n int) {
	for range n {
		d.Send(pomodoroTickMsg{tag: pomodoroModel(d).tag})
	}
}

func TestPomodoroView_StartsReady(t *testing.T) {
	d := newTestPomodoro(t, 2)
	view := stripANSI(d.View())
	assert.Contains(t, view, "POMODORO")
	assert.Contains(t, view, "Ready")
	assert.Contains(t, view, "00:00")
	assert.Contains(t, view, "press space to start")

	sendTicks(d, 3)
	m := pomodoroModel(d)
	assert.Equal(t, pomodoro.Ready, m.timer.Phase(), "ticks before start are ignored")
}

func TestPomodoroView_CountsDownAndSwitches(t *testing.T) {
	d := newTestPomodoro(t, 2)
	d.PressKey(' ')

	view := stripANSI(d.View())
	assert.Contains(t, view, "Focus")
	assert.Contains(t, view, "00:02")
	assert.Contains(t, view, "running")

	sendTicks(d, 1)
	assert.Contains(t, stripANSI(d.View()), "00:01")

	sendTicks(d, 2)
	view = stripANSI(d.View())
	assert.Contains(t, view, "Short Break")
	assert.Contains(t, view, "Focus done, Short Break started")
	assert.Contains(t, view, "Cycles 1")
}

func TestPomodoroView_LongBreakEveryN(t *testing.T) {
	d := newTestPomodoro(t, 2)
	d.PressKey(' ')

	sendTicks(d, 3) // focus → short break
	sendTicks(d, 2) // short break → focus
	sendTicks(d, 3) // focus → long break

	m := pomodoroModel(d)
	assert.Equal(t, pomodoro.LongBreak, m.timer.Phase())
	assert.Equal(t, 2, m.timer.Cycles())
	assert.Contains(t, stripANSI(d.View()), "Long Break")
}

func TestPomodoroView_PauseDropsStaleTicks(t *testing.T) {
	d := newTestPomodoro(t, 2)
	d.PressKey(' ')
	stale := pomodoroModel(d).tag

	d.PressKey(' ')
	assert.Contains(t, stripANSI(d.View()), "paused")

	d.Send(pomodoroTickMsg{tag: stale})
	m := pomodoroModel(d)
	assert.Equal(t, 2*time.Second, m.timer.Remaining())

	// Resuming starts a new chain; the old one stays dead.
	d.PressKey('s')
	d.Send(pomodoroTickMsg{tag: stale})
	m = pomodoroModel(d)
	assert.Equal(t, 2*time.Second, m.timer.Remaining())
	sendTicks(d, 1)
	m = pomodoroModel(d)
	assert.Equal(t, time.Second, m.timer.Remaining())
}

func TestPomodoroView_Reset(t *testing.T) {
	d := newTestPomodoro(t, 2)
	d.PressKey(' ')
	sendTicks(d, 3)
	m := pomodoroModel(d)
	require.Equal(t, 1, m.timer.Cycles())

	d.PressKey('r')
	m = pomodoroModel(d)
	assert.Equal(t, pomodoro.Ready, m.timer.Phase())
	assert.Zero(t, m.timer.Cycles())
	assert.False(t, m.timer.Running())

	view := stripANSI(d.View())
	assert.Contains(t, view, "Cycles 0")
	assert.NotContains(t, view, "Short Break started")
}

func TestPomodoroView_QuitKeys(t *testing.T) {
	for _, press := range []func(*teatest.Driver){
		func(d *teatest.Driver) { d.PressKey('q') },
		func(d *teatest.Driver) { d.PressEsc() },
		func(d *teatest.Driver) { d.PressCtrlC() },
	} {
		d := newTestPomodoro(t, 4)
		press(d)
		assert.True(t, d.Quitting)
	}
}
