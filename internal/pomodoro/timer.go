// Package pomodoro is the focus/break countdown behind the pomodoro command.
//
// The Timer is a pure state machine advanced one second per Tick; callers own
// the clock.
package pomodoro

import (
	"fmt"
	"time"

	"github.com/alexanderramin/studysync/internal/domain"
)

type Phase int

const (
	Ready Phase = iota
	Focus
	ShortBreak
	LongBreak
)

var phaseNames = [...]string{
	Ready:      "Ready",
	Focus:      "Focus",
	ShortBreak: "Short Break",
	LongBreak:  "Long Break",
}

func (p Phase) String() string {
	if p < Ready || p > LongBreak {
		return "unknown"
	}
	return phaseNames[p]
}

// Config sets the phase lengths and how many focus cycles earn a long break.
type Config struct {
	Focus time.Duration
	Short time.Duration
	Long  time.Duration
	Every int
}

func DefaultConfig() Config {
	return Config{
		Focus: 25 * time.Minute,
		Short: 5 * time.Minute,
		Long:  15 * time.Minute,
		Every: 4,
	}
}

func (c Config) Validate() error {
	for _, d := range []struct {
		name string
		v    time.Duration
	}{{"focus", c.Focus}, {"short break", c.Short}, {"long break", c.Long}} {
		if d.v < time.Second {
			return fmt.Errorf("%s length %v must be at least 1s: %w", d.name, d.v, domain.ErrInvalidInput)
		}
	}
	if c.Every < 1 {
		return fmt.Errorf("long break interval %d must be at least 1: %w", c.Every, domain.ErrInvalidInput)
	}
	return nil
}

func (c Config) length(p Phase) time.Duration {
	switch p {
	case Focus:
		return c.Focus.Round(time.Second)
	case ShortBreak:
		return c.Short.Round(time.Second)
	case LongBreak:
		return c.Long.Round(time.Second)
	}
	return 0
}

// Timer tracks the current phase, the time left in it and the number of
// completed focus cycles.
type Timer struct {
	cfg       Config
	phase     Phase
	remaining time.Duration
	cycles    int
	running   bool
}

func New(cfg Config) (*Timer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Timer{cfg: cfg}, nil
}

func (t *Timer) Config() Config           { return t.cfg }
func (t *Timer) Phase() Phase             { return t.phase }
func (t *Timer) Remaining() time.Duration { return t.remaining }
func (t *Timer) Cycles() int              { return t.cycles }
func (t *Timer) Running() bool            { return t.running }

func (t *Timer) enter(p Phase) {
	t.phase = p
	t.remaining = t.cfg.length(p)
}

// Start resumes the countdown, entering Focus from Ready.
func (t *Timer) Start() {
	if t.phase == Ready {
		t.enter(Focus)
	}
	t.running = true
}

func (t *Timer) Pause() { t.running = false }

// Toggle starts a paused timer and pauses a running one.
func (t *Timer) Toggle() {
	if t.running {
		t.Pause()
		return
	}
	t.Start()
}

// Reset stops the timer and returns it to Ready with no completed cycles.
func (t *Timer) Reset() {
	t.running = false
	t.cycles = 0
	t.phase = Ready
	t.remaining = 0
}

// Tick advances a running timer by one second. A phase that has reached
// zero hands over on the next tick: Focus goes to a break, counting the
// cycle, and every break goes back to Focus. It reports whether the phase
// changed.
func (t *Timer) Tick() bool {
	if !t.running {
		return false
	}
	if t.remaining > 0 {
		t.remaining -= time.Second
		return false
	}
	if t.phase == Focus {
		t.cycles++
		if t.cycles%t.cfg.Every == 0 {
			t.enter(LongBreak)
		} else {
			t.enter(ShortBreak)
		}
		return true
	}
	t.enter(Focus)
	return true
}

// Clock renders d as MM:SS. Minutes are not wrapped into hours.
func Clock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int(d.Round(time.Second) / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
