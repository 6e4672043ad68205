package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/studysync/internal/cli/formatter"
	"github.com/alexanderramin/studysync/internal/domain"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type weekKeyMap struct {
	Prev key.Binding
	Next key.Binding
	Quit key.Binding
}

func (k weekKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Quit}
}

func (k weekKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func defaultWeekKeys() weekKeyMap {
	return weekKeyMap{
		Prev: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev day")),
		Next: key.NewBinding(key.WithKeys("right", "l", "tab"), key.WithHelp("→/l", "next day")),
		Quit: key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// weekView pages through the stored plan one day at a time.
type weekView struct {
	week  [domain.DaysPerWeek][]formatter.BlockRange
	day   domain.Weekday
	keys  weekKeyMap
	help  help.Model
	width int
}

func newWeekView(blocks []*domain.PlanBlock, start domain.Weekday) weekView {
	return weekView{
		week: formatter.MergeBlocks(blocks),
		day:  start,
		keys: defaultWeekKeys(),
		help: help.New(),
	}
}

func (m weekView) Init() tea.Cmd { return nil }

func (m weekView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Prev):
			m.day = (m.day + domain.DaysPerWeek - 1) % domain.DaysPerWeek
		case key.Matches(msg, m.keys.Next):
			m.day = (m.day + 1) % domain.DaysPerWeek
		}
	}
	return m, nil
}

func (m weekView) View() string {
	var b strings.Builder

	tabs := make([]string, 0, domain.DaysPerWeek)
	for _, d := range domain.Weekdays() {
		label := d.String()[:3]
		if len(m.week[d]) > 0 {
			label += "•"
		}
		if d == m.day {
			tabs = append(tabs, formatter.StyleHeader.Render("["+label+"]"))
		} else {
			tabs = append(tabs, formatter.Dim(" "+label+" "))
		}
	}
	b.WriteString(strings.Join(tabs, " ") + "\n\n")

	b.WriteString(formatter.Header(m.day.String()) + "\n")
	ranges := m.week[m.day]
	if len(ranges) == 0 {
		b.WriteString(formatter.Dim("Nothing planned.") + "\n")
	}
	for _, r := range ranges {
		style := formatter.StyleBlue
		if r.Source == domain.SourceTopicPlan {
			style = formatter.StylePurple
		}
		fmt.Fprintf(&b, "%s-%s  %s\n", r.Start, r.End, style.Render(r.Title))
	}

	b.WriteString("\n" + m.help.View(m.keys))
	return b.String()
}
