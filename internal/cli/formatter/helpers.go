package formatter

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		Padding(1, 2)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// RelativeDue describes how far a deadline is from now, in hours when it is
// close and days otherwise.
func RelativeDue(due, now time.Time) string {
	diff := due.Sub(now)
	hours := int(math.Round(math.Abs(diff.Hours())))
	days := int(math.Round(math.Abs(diff.Hours()) / 24))

	switch {
	case diff >= 0 && hours < 1:
		return "due now"
	case diff >= 0 && hours < 48:
		return fmt.Sprintf("in %dh", hours)
	case diff >= 0:
		return fmt.Sprintf("in %dd", days)
	case hours < 48:
		return fmt.Sprintf("%dh overdue", max(1, hours))
	default:
		return fmt.Sprintf("%dd overdue", days)
	}
}

// DueDate formats an absolute deadline like "Mon Jun 16 17:00".
func DueDate(t time.Time) string {
	return t.Local().Format("Mon Jan 2 15:04")
}

// FormatHours renders a duration in hours without trailing zeros, e.g. "1.5h".
func FormatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64) + "h"
}

// FormatUnits renders half-hour units as hours.
func FormatUnits(units int) string {
	return FormatHours(float64(units) / 2)
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}
