package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/studysync/internal/contract"
	"github.com/alexanderramin/studysync/internal/domain"
	"github.com/alexanderramin/studysync/internal/topicplan"
)

// FormatAssignmentList renders assignments as a table inside a box.
func FormatAssignmentList(assignments []*domain.Assignment, now time.Time, soon time.Duration) string {
	if len(assignments) == 0 {
		return RenderBox("Assignments", Dim("No assignments yet. Add one with: studysync assignment add"))
	}
	headers := []string{"ID", "ASSIGNMENT", "DUE", "", "EFFORT", "STATUS"}
	rows := make([][]string, 0, len(assignments))
	for _, a := range assignments {
		due := Dim(RelativeDue(a.Due, now))
		if a.IsOpen() {
			due = DueStyle(a.Due, now, soon).Render(RelativeDue(a.Due, now))
		}
		effort := Dim("--")
		if a.EffortHours > 0 {
			effort = FormatHours(a.EffortHours)
		}
		rows = append(rows, []string{
			TruncID(a.ID),
			Bold(a.Label()),
			DueDate(a.Due),
			due,
			effort,
			StatusPill(a.Status),
		})
	}
	return RenderBox("Assignments", RenderTable(headers, rows))
}

// FormatAssignment renders one assignment with its attached plan, if any.
func FormatAssignment(a *domain.Assignment, now time.Time) string {
	var b strings.Builder
	b.WriteString(Bold(a.Label()) + "\n\n")
	fmt.Fprintf(&b, "%s  %s\n", Dim("ID       "), a.ID)
	fmt.Fprintf(&b, "%s  %s (%s)\n", Dim("DUE      "), DueDate(a.Due), RelativeDue(a.Due, now))
	fmt.Fprintf(&b, "%s  %s\n", Dim("STATUS   "), StatusPill(a.Status))
	if a.EffortHours > 0 {
		fmt.Fprintf(&b, "%s  %s\n", Dim("EFFORT   "), FormatHours(a.EffortHours))
	}
	fmt.Fprintf(&b, "%s  %s\n", Dim("REMINDERS"), reminderFlags(a.Reminders))

	if p := a.Plan; p != nil {
		b.WriteString("\n" + Header("Plan: "+p.Topic) + "\n")
		fmt.Fprintf(&b, "%s %s   %s %s\n", Dim("Type"), planType(p.Type), Dim("Total"), FormatHours(float64(p.TotalHours)))
		for i, s := range p.Steps {
			fmt.Fprintf(&b, "%2d. %s %s\n", i+1, s.Text, Dim(FormatHours(s.Duration)))
		}
	}
	return RenderBox("Assignment", strings.TrimRight(b.String(), "\n"))
}

// planType styles a stored plan type, flagging names this version does not
// know.
func planType(stored string) string {
	t, ok := topicplan.ParseTopicType(stored)
	if !ok {
		return StyleYellow.Render(domain.CoalesceStr(stored, "?") + " (unknown)")
	}
	return StylePurple.Render(t.String())
}

func reminderFlags(r domain.Reminders) string {
	var on []string
	if r.H24 {
		on = append(on, "24h")
	}
	if r.H6 {
		on = append(on, "6h")
	}
	if r.H1 {
		on = append(on, "1h")
	}
	if len(on) == 0 {
		return Dim("off")
	}
	return strings.Join(on, ", ")
}

// FormatProgress renders the progress summary and per-assignment bars.
func FormatProgress(resp *contract.ProgressResponse) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Total %s   Submitted %s   In progress %s   Due soon %s\n",
		Bold(fmt.Sprint(resp.Total)),
		StyleGreen.Render(fmt.Sprint(resp.Submitted)),
		StyleYellow.Render(fmt.Sprint(resp.InProgress)),
		StyleRed.Render(fmt.Sprint(resp.DueSoon)),
	)
	b.WriteString(RenderProgress(resp.Percent, 30))

	if len(resp.Items) > 0 {
		rows := make([][]string, 0, len(resp.Items))
		for _, it := range resp.Items {
			label := it.Label
			if it.DueSoon {
				label = StyleRed.Render(label)
			}
			rows = append(rows, []string{label, DueDate(it.Due), RenderProgress(it.Progress, 10)})
		}
		b.WriteString("\n\n" + RenderTable([]string{"ASSIGNMENT", "DUE", "PROGRESS"}, rows))
	}
	return RenderBox("Progress", strings.TrimRight(b.String(), "\n"))
}
