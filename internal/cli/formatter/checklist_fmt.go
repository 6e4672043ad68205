package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/studysync/internal/domain"
)

// FormatChecklist renders tasks with checkboxes and a completion bar.
func FormatChecklist(tasks []*domain.ChecklistTask) string {
	if len(tasks) == 0 {
		return RenderBox("Checklist", Dim("Nothing to do."))
	}
	stats := domain.Summarize(tasks)

	var b strings.Builder
	for _, t := range tasks {
		if t.Done {
			fmt.Fprintf(&b, "%s %s %s\n", TruncID(t.ID), StyleGreen.Render("[x]"), Dim(t.Text))
			continue
		}
		fmt.Fprintf(&b, "%s [ ] %s\n", TruncID(t.ID), t.Text)
	}
	fmt.Fprintf(&b, "\n%d/%d done  %s", stats.Done, stats.Total, RenderProgress(stats.Done*100/stats.Total, 20))
	return RenderBox("Checklist", b.String())
}
