package testutil

import (
	"time"

	"github.com/alexanderramin/studysync/internal/domain"
	"github.com/google/uuid"
)

// Assignment options
type AssignmentOption func(*domain.Assignment)

func WithCourse(c string) AssignmentOption {
	return func(a *domain.Assignment) {
		a.Course = c
	}
}

func WithDue(d time.Time) AssignmentOption {
	return func(a *domain.Assignment) {
		a.Due = d
	}
}

func WithEffort(hours float64) AssignmentOption {
	return func(a *domain.Assignment) {
		a.EffortHours = hours
	}
}

func WithStatus(s domain.AssignmentStatus) AssignmentOption {
	return func(a *domain.Assignment) {
		a.Status = s
	}
}

func WithReminders(r domain.Reminders) AssignmentOption {
	return func(a *domain.Assignment) {
		a.Reminders = r
	}
}

func WithPlan(p *domain.AttachedPlan) AssignmentOption {
	return func(a *domain.Assignment) {
		a.Plan = p
	}
}

// NewTestAssignment builds an assignment due in three days.
func NewTestAssignment(title string, opts ...AssignmentOption) *domain.Assignment {
	now := time.Now().UTC().Truncate(time.Second)
	a := &domain.Assignment{
		ID:          uuid.New().String(),
		Title:       title,
		Due:         now.Add(72 * time.Hour),
		EffortHours: domain.DefaultEffortHours,
		Reminders:   domain.DefaultReminders(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func NewTestTask(text string, done bool) *domain.ChecklistTask {
	now := time.Now().UTC().Truncate(time.Second)
	return &domain.ChecklistTask{
		ID:        uuid.New().String(),
		Text:      text,
		Done:      done,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func NewTestSession(day domain.Weekday, start, end, focus string) *domain.TimetableSession {
	s := &domain.TimetableSession{
		ID:        uuid.New().String(),
		Day:       day,
		Focus:     focus,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	s.Start, _ = domain.ParseClock(start)
	s.End, _ = domain.ParseClock(end)
	return s
}

func NewTestBlock(day domain.Weekday, start domain.Clock, title string, source domain.BlockSource) *domain.PlanBlock {
	return &domain.PlanBlock{
		ID:        uuid.New().String(),
		Day:       day,
		Start:     start,
		End:       start.Add(30),
		Title:     title,
		Source:    source,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
}
