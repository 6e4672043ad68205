package contract

import "github.com/alexanderramin/studysync/internal/domain"

// DaySessions is one day of the timetable.
type DaySessions struct {
	Day      domain.Weekday
	Sessions []*domain.TimetableSession
}
