package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/studysync/internal/contract"
	"github.com/alexanderramin/studysync/internal/domain"
	"github.com/alexanderramin/studysync/internal/topicplan"
	"github.com/charmbracelet/lipgloss"
)

// BlockRange is a run of back-to-back blocks with the same title on one day.
type BlockRange struct {
	Day    domain.Weekday
	Start  domain.Clock
	End    domain.Clock
	Title  string
	Source domain.BlockSource
}

// MergeBlocks groups blocks by day and joins adjacent half hours of the same
// item. Ranges within a day are ordered by start time.
func MergeBlocks(blocks []*domain.PlanBlock) [domain.DaysPerWeek][]BlockRange {
	var week [domain.DaysPerWeek][]BlockRange
	for _, b := range blocks {
		if b.Day < domain.Monday || b.Day > domain.Sunday {
			continue
		}
		week[b.Day] = append(week[b.Day], BlockRange{
			Day: b.Day, Start: b.Start, End: b.End, Title: b.Title, Source: b.Source,
		})
	}
	for d := range week {
		week[d] = joinAdjacent(week[d])
	}
	return week
}

func joinAdjacent(ranges []BlockRange) []BlockRange {
	if len(ranges) == 0 {
		return nil
	}
	sort.SliceStable(ranges, func(i, j int) bool {
		a, b := ranges[i], ranges[j]
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		if a.Source != b.Source {
			return a.Source < b.Source
		}
		return a.Title < b.Title
	})
	// Overlapping plans interleave, so extend the latest run of the same item
	// rather than only the previous range.
	out := make([]BlockRange, 0, len(ranges))
	for _, r := range ranges {
		merged := false
		for i := len(out) - 1; i >= 0; i-- {
			last := &out[i]
			if r.Title == last.Title && r.Source == last.Source && r.Start == last.End {
				last.End = r.End
				merged = true
				break
			}
		}
		if !merged {
			out = append(out, r)
		}
	}
	return out
}

const dayColumnWidth = 24

// FormatWeekColumns lays the plan out as seven day columns.
func FormatWeekColumns(blocks []*domain.PlanBlock) string {
	if len(blocks) == 0 {
		return RenderBox("Week plan", Dim("No plan yet. Run: studysync plan week"))
	}
	week := MergeBlocks(blocks)
	col := lipgloss.NewStyle().Width(dayColumnWidth).MarginRight(1)

	var rows [2][]string
	for d, ranges := range week {
		day := domain.Weekday(d)
		var b strings.Builder
		b.WriteString(StyleHeader.Render(day.String()[:3]) + "\n")
		if len(ranges) == 0 {
			b.WriteString(Dim("free"))
		}
		for _, r := range ranges {
			b.WriteString(formatRange(r, dayColumnWidth) + "\n")
		}
		// Weekdays on the first row, the weekend on the second.
		row := 0
		if day.IsWeekend() {
			row = 1
		}
		rows[row] = append(rows[row], col.Render(strings.TrimRight(b.String(), "\n")))
	}

	top := lipgloss.JoinHorizontal(lipgloss.Top, rows[0]...)
	bottom := lipgloss.JoinHorizontal(lipgloss.Top, rows[1]...)
	return RenderBox("Week plan", top+"\n\n"+bottom)
}

func formatRange(r BlockRange, width int) string {
	times := Dim(r.Start.String() + "-" + r.End.String())
	style := StyleFg
	if r.Source == domain.SourceTopicPlan {
		style = StylePurple
	}
	title := r.Title
	if room := width - 12; room > 3 && lipgloss.Width(title) > room {
		title = string([]rune(title)[:room-1]) + "…"
	}
	return times + " " + style.Render(title)
}

// FormatPlanSummary reports how much of the request was booked and what did
// not fit.
func FormatPlanSummary(resp *contract.PlanWeekResponse) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Booked %s of %s requested (week capacity %s).",
		Bold(FormatUnits(resp.PlacedUnits)), FormatUnits(resp.RequestedUnits), FormatUnits(resp.Capacity))
	if resp.FullyPlaced() {
		b.WriteString("\n" + StyleGreen.Render("Everything fits this week."))
		return b.String()
	}
	b.WriteString("\n" + StyleYellow.Render("Not enough room for:"))
	for _, s := range resp.Shortfalls {
		fmt.Fprintf(&b, "\n  %s %s", s.Label, Dim(fmt.Sprintf("%s of %s unplaced", FormatUnits(s.Missing()), FormatUnits(s.Requested))))
	}
	return b.String()
}

// FormatTopicPlan renders a generated topic plan.
func FormatTopicPlan(p topicplan.Plan) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s   %s %s   %s %s\n",
		Dim("Type"), StylePurple.Render(p.Type.String()),
		Dim("Total"), FormatHours(float64(p.TotalHours)),
		Dim("Due"), DueDate(p.Due))

	b.WriteString("\n" + Header("Outline") + "\n")
	for _, o := range p.Outline {
		b.WriteString("  • " + o + "\n")
	}
	b.WriteString("\n" + Header("Key questions") + "\n")
	for _, q := range p.KeyQuestions {
		b.WriteString("  ? " + q + "\n")
	}
	b.WriteString("\n" + Header("Steps") + "\n")
	for i, s := range p.Steps {
		fmt.Fprintf(&b, "%2d. %s %s\n", i+1, s.Text, Dim(FormatHours(s.Duration)))
	}
	b.WriteString("\n" + Header("Search queries") + "\n")
	for _, q := range p.Queries {
		b.WriteString("  " + Dim(q) + "\n")
	}
	return RenderBox("Topic plan: "+p.Topic, strings.TrimRight(b.String(), "\n"))
}
