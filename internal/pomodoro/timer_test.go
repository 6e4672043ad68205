package pomodoro

import (
	"testing"
	"time"

	"github.com/alexanderramin/studysync/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shortConfig() Config {
	return Config{Focus: 3 * time.Second, Short: time.Second, Long: 2 * time.Second, Every: 2}
}

func newTimer(t *testing.T, cfg Config) *Timer {
	t.Helper()
	tm, err := New(cfg)
	require.NoError(t, err)
	return tm
}

// finishPhase ticks until the phase changes and returns how many ticks it took.
func finishPhase(t *testing.T, tm *Timer) int {
	t.Helper()
	for i := 1; i <= 3600; i++ {
		if tm.Tick() {
			return i
		}
	}
	t.Fatalf("phase %s never ended", tm.Phase())
	return 0
}

func TestTimer_StartEntersFocus(t *testing.T) {
	tm := newTimer(t, shortConfig())
	assert.Equal(t, Ready, tm.Phase())
	assert.Zero(t, tm.Remaining())

	tm.Start()
	assert.Equal(t, Focus, tm.Phase())
	assert.Equal(t, 3*time.Second, tm.Remaining())
	assert.True(t, tm.Running())
}

func TestTimer_FocusThenShortBreak(t *testing.T) {
	tm := newTimer(t, shortConfig())
	tm.Start()

	// Three ticks count down to zero and the fourth hands over.
	assert.Equal(t, 4, finishPhase(t, tm))
	assert.Equal(t, ShortBreak, tm.Phase())
	assert.Equal(t, 1, tm.Cycles())
	assert.Equal(t, time.Second, tm.Remaining())

	finishPhase(t, tm)
	assert.Equal(t, Focus, tm.Phase())
	assert.Equal(t, 1, tm.Cycles(), "breaks do not count as cycles")
}

func TestTimer_LongBreakEveryN(t *testing.T) {
	cfg := shortConfig()
	cfg.Every = 3
	tm := newTimer(t, cfg)
	tm.Start()

	var breaks []Phase
	for range 6 {
		finishPhase(t, tm) // focus ends
		breaks = append(breaks, tm.Phase())
		finishPhase(t, tm) // break ends
		require.Equal(t, Focus, tm.Phase())
	}
	assert.Equal(t, []Phase{ShortBreak, ShortBreak, LongBreak, ShortBreak, ShortBreak, LongBreak}, breaks)
	assert.Equal(t, 6, tm.Cycles())
}

func TestTimer_EveryOneAlwaysLong(t *testing.T) {
	cfg := shortConfig()
	cfg.Every = 1
	tm := newTimer(t, cfg)
	tm.Start()
	finishPhase(t, tm)
	assert.Equal(t, LongBreak, tm.Phase())
	assert.Equal(t, 2*time.Second, tm.Remaining())
}

func TestTimer_PauseHoldsRemaining(t *testing.T) {
	tm := newTimer(t, shortConfig())
	tm.Start()
	tm.Tick()
	tm.Pause()

	assert.False(t, tm.Tick())
	assert.Equal(t, 2*time.Second, tm.Remaining())

	tm.Toggle()
	assert.True(t, tm.Running())
	assert.Equal(t, Focus, tm.Phase(), "resume keeps the phase")
	tm.Tick()
	assert.Equal(t, time.Second, tm.Remaining())

	tm.Toggle()
	assert.False(t, tm.Running())
}

func TestTimer_ResetClearsCycles(t *testing.T) {
	tm := newTimer(t, shortConfig())
	tm.Start()
	finishPhase(t, tm)
	finishPhase(t, tm)
	require.Equal(t, 1, tm.Cycles())

	tm.Reset()
	assert.Equal(t, Ready, tm.Phase())
	assert.Zero(t, tm.Cycles())
	assert.Zero(t, tm.Remaining())
	assert.False(t, tm.Running())
	assert.False(t, tm.Tick())

	// The long-break count starts over after a reset.
	tm.Start()
	finishPhase(t, tm)
	assert.Equal(t, ShortBreak, tm.Phase())
}

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())

	bad := []Config{
		{Focus: 0, Short: time.Minute, Long: time.Minute, Every: 4},
		{Focus: time.Minute, Short: -time.Minute, Long: time.Minute, Every: 4},
		{Focus: time.Minute, Short: time.Minute, Long: time.Millisecond, Every: 4},
		{Focus: time.Minute, Short: time.Minute, Long: time.Minute, Every: 0},
	}
	for _, cfg := range bad {
		_, err := New(cfg)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "%+v", cfg)
	}
}

func TestClock(t *testing.T) {
	assert.Equal(t, "25:00", Clock(25*time.Minute))
	assert.Equal(t, "04:59", Clock(4*time.Minute+59*time.Second))
	assert.Equal(t, "90:00", Clock(90*time.Minute))
	assert.Equal(t, "00:00", Clock(-time.Second))
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "Short Break", ShortBreak.String())
	assert.Equal(t, "Long Break", LongBreak.String())
	assert.Equal(t, "unknown", Phase(9).String())
}
