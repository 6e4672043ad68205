// Package calendar exports assignment deadlines as iCalendar data and
// exchanges them with classmates through share codes.
package calendar

import (
	"strings"
	"time"

	"github.com/alexanderramin/studysync/internal/domain"
)

const (
	ProdID          = "-//StudySync//Deadlines//EN"
	eventDesc       = "Assignment deadline"
	icsTimeLayout   = "20060102T150405Z"
	icsLineEnding   = "\r\n"
	uidDomainSuffix = "@studysync"
)

// BuildICS renders one VEVENT per assignment. stamp is used for DTSTAMP.
func BuildICS(assignments []*domain.Assignment, stamp time.Time) string {
	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:" + ProdID,
	}
	dtStamp := FormatTime(stamp)
	for _, a := range assignments {
		dtStart := FormatTime(a.Due)
		uid := a.ID
		if uid == "" {
			uid = a.Title + "-" + dtStart + uidDomainSuffix
		}
		lines = append(lines,
			"BEGIN:VEVENT",
			"UID:"+uid,
			"DTSTAMP:"+dtStamp,
			"DTSTART:"+dtStart,
			"SUMMARY:"+EscapeText(a.Label()),
			"DESCRIPTION:"+EscapeText(eventDesc),
			"END:VEVENT",
		)
	}
	lines = append(lines, "END:VCALENDAR")
	return strings.Join(lines, icsLineEnding)
}

// FormatTime renders t in UTC as YYYYMMDDTHHMMSSZ.
func FormatTime(t time.Time) string {
	return t.UTC().Format(icsTimeLayout)
}

var textEscaper = strings.NewReplacer(
	`\`, `\\`,
	"\r\n", `\n`,
	"\n", `\n`,
	"\r", `\n`,
	",", `\,`,
	";", `\;`,
)

// EscapeText escapes an iCalendar TEXT value.
func EscapeText(s string) string {
	return textEscaper.Replace(s)
}
