package formatter

import (
	"time"

	"github.com/alexanderramin/studysync/internal/contract"
)

// FormatReminders lists upcoming reminders, soonest first.
func FormatReminders(reminders []contract.Reminder, now time.Time) string {
	if len(reminders) == 0 {
		return RenderBox("Reminders", Dim("No reminders coming up."))
	}
	rows := make([][]string, 0, len(reminders))
	for _, r := range reminders {
		rows = append(rows, []string{
			DueDate(r.At),
			RelativeDue(r.At, now),
			r.Label,
			Dim(formatLead(r.Lead) + " before " + DueDate(r.Due)),
		})
	}
	return RenderBox("Reminders", RenderTable([]string{"WHEN", "", "ASSIGNMENT", "DEADLINE"}, rows))
}

func formatLead(d time.Duration) string {
	return FormatHours(d.Hours())
}
