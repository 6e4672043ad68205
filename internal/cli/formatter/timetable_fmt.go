package formatter

import (
	"strings"

	"github.com/alexanderramin/studysync/internal/contract"
)

// FormatTimetable renders the weekly timetable, skipping empty days.
func FormatTimetable(week []contract.DaySessions) string {
	var b strings.Builder
	for _, day := range week {
		if len(day.Sessions) == 0 {
			continue
		}
		b.WriteString(StyleHeader.Render(day.Day.String()) + "\n")
		for _, s := range day.Sessions {
			focus := s.Focus
			if focus == "" {
				focus = Dim("study")
			}
			b.WriteString("  " + Dim(s.Start.String()+"-"+s.End.String()) + "  " + focus + "  " + TruncID(s.ID) + "\n")
		}
	}
	if b.Len() == 0 {
		return RenderBox("Timetable", Dim("No sessions. Add one with: studysync timetable add"))
	}
	return RenderBox("Timetable", strings.TrimRight(b.String(), "\n"))
}
