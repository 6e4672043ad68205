package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/studysync/internal/cli/formatter"
	"github.com/alexanderramin/studysync/internal/pomodoro"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type pomodoroKeyMap struct {
	Toggle key.Binding
	Reset  key.Binding
	Quit   key.Binding
}

func (k pomodoroKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Reset, k.Quit}
}

func (k pomodoroKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func defaultPomodoroKeys() pomodoroKeyMap {
	return pomodoroKeyMap{
		Toggle: key.NewBinding(key.WithKeys(" ", "s", "enter"), key.WithHelp("space", "start/pause")),
		Reset:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// pomodoroTickMsg carries the tag of the tick chain that produced it. Ticks
// from a chain stopped by pause or reset are dropped.
type pomodoroTickMsg struct {
	tag int
}

func pomodoroTick(tag int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return pomodoroTickMsg{tag: tag}
	})
}

// pomodoroView runs the focus/break countdown.
type pomodoroView struct {
	timer  pomodoro.Timer
	tag    int
	notice string
	keys   pomodoroKeyMap
	help   help.Model
}

func newPomodoroView(timer *pomodoro.Timer) pomodoroView {
	return pomodoroView{
		timer: *timer,
		keys:  defaultPomodoroKeys(),
		help:  help.New(),
	}
}

func (m pomodoroView) Init() tea.Cmd { return nil }

func (m pomodoroView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Toggle):
			m.timer.Toggle()
			m.tag++
			m.notice = ""
			if m.timer.Running() {
				return m, pomodoroTick(m.tag)
			}
		case key.Matches(msg, m.keys.Reset):
			m.timer.Reset()
			m.tag++
			m.notice = ""
		}
	case pomodoroTickMsg:
		if msg.tag != m.tag || !m.timer.Running() {
			return m, nil
		}
		from := m.timer.Phase()
		if m.timer.Tick() {
			m.notice = fmt.Sprintf("%s done, %s started", from, m.timer.Phase())
		}
		return m, pomodoroTick(m.tag)
	}
	return m, nil
}

func phaseStyle(p pomodoro.Phase) lipgloss.Style {
	switch p {
	case pomodoro.Focus:
		return formatter.StyleRed
	case pomodoro.ShortBreak:
		return formatter.StyleGreen
	case pomodoro.LongBreak:
		return formatter.StyleBlue
	}
	return formatter.StyleDim
}

func (m pomodoroView) View() string {
	var b strings.Builder

	phase := m.timer.Phase()
	b.WriteString(formatter.Header("Pomodoro") + "\n\n")
	fmt.Fprintf(&b, "  %s  %s\n", phaseStyle(phase).Bold(true).Render(phase.String()), pomodoro.Clock(m.timer.Remaining()))

	state := "paused"
	switch {
	case phase == pomodoro.Ready:
		state = "press space to start"
	case m.timer.Running():
		state = "running"
	}
	cfg := m.timer.Config()
	fmt.Fprintf(&b, "  %s  %s\n", formatter.Dim(fmt.Sprintf("Cycles %d, long break every %d", m.timer.Cycles(), cfg.Every)), formatter.Dim("("+state+")"))
	if m.notice != "" {
		b.WriteString("  " + formatter.StyleYellow.Render(m.notice) + "\n")
	}

	b.WriteString("\n" + m.help.View(m.keys))
	return b.String()
}
