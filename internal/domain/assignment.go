package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"
)

// DefaultEffortHours is used when an assignment carries no effort estimate.
const DefaultEffortHours = 2.0

// Reminders selects which pre-deadline reminders fire for an assignment.
type Reminders struct {
	H24 bool `json:"h24"`
	H6  bool `json:"h6"`
	H1  bool `json:"h1"`
}

// DefaultReminders enables every reminder.
func DefaultReminders() Reminders {
	return Reminders{H24: true, H6: true, H1: true}
}

// PlanStep is one weighted step of an attached topic plan.
type PlanStep struct {
	Text     string  `json:"text"`
	Duration float64 `json:"duration"`
}

// AttachedPlan is the stored snapshot of a topic plan linked to an assignment.
type AttachedPlan struct {
	Topic        string     `json:"topic"`
	Type         string     `json:"type"`
	TotalHours   int        `json:"totalHours"`
	Outline      []string   `json:"outline"`
	KeyQuestions []string   `json:"keyQuestions"`
	Steps        []PlanStep `json:"steps"`
	Queries      []string   `json:"queries"`
}

type Assignment struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Course      string           `json:"course,omitempty"`
	Due         time.Time        `json:"due"`
	EffortHours float64          `json:"effort"`
	Status      AssignmentStatus `json:"status"`
	Reminders   Reminders        `json:"reminders"`
	Plan        *AttachedPlan    `json:"aiPlan,omitempty"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// UnmarshalJSON enables every reminder when the payload has no reminders
// object.
func (a *Assignment) UnmarshalJSON(b []byte) error {
	type plain Assignment
	aux := struct {
		*plain
		Reminders *Reminders `json:"reminders"`
	}{plain: (*plain)(a)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	a.Reminders = DefaultReminders()
	if aux.Reminders != nil {
		a.Reminders = *aux.Reminders
	}
	return nil
}

// Validate checks the fields a caller must supply before an assignment is stored.
func (a *Assignment) Validate() error {
	if strings.TrimSpace(a.Title) == "" {
		return fmt.Errorf("title is required: %w", ErrInvalidInput)
	}
	if a.Due.IsZero() {
		return fmt.Errorf("due date is required: %w", ErrInvalidInput)
	}
	if a.EffortHours < 0 || math.IsNaN(a.EffortHours) || math.IsInf(a.EffortHours, 0) {
		return fmt.Errorf("effort %v must be a non-negative number: %w", a.EffortHours, ErrInvalidInput)
	}
	if !ValidAssignmentStatuses[a.Status] {
		return fmt.Errorf("status %q: %w", a.Status, ErrInvalidInput)
	}
	return nil
}

// Label is the display text for planned blocks: "Course: Title" or just "Title".
func (a *Assignment) Label() string {
	if a.Course != "" {
		return a.Course + ": " + a.Title
	}
	return a.Title
}

// Effort returns the effort estimate, falling back when none was recorded.
func (a *Assignment) Effort(fallback float64) float64 {
	if a.EffortHours > 0 {
		return a.EffortHours
	}
	if fallback > 0 {
		return fallback
	}
	return DefaultEffortHours
}

// Units converts effort to half-hour units, never less than one.
func (a *Assignment) Units(fallback float64) int {
	units := int(math.Round(a.Effort(fallback) * 2))
	if units < 1 {
		return 1
	}
	return units
}

// IsOpen reports whether the assignment still needs work.
func (a *Assignment) IsOpen() bool {
	return a.Status != StatusSubmitted
}

// DueWithin reports whether an open assignment falls due within window of now.
// Overdue assignments count as due.
func (a *Assignment) DueWithin(now time.Time, window time.Duration) bool {
	return a.IsOpen() && a.Due.Sub(now) < window
}

// Progress is a coarse completion percentage derived from status.
func (a *Assignment) Progress() int {
	switch a.Status {
	case StatusSubmitted:
		return 100
	case StatusInProgress:
		return 50
	default:
		return 5
	}
}

// Start moves the assignment to in_progress.
func (a *Assignment) Start(now time.Time) error {
	switch a.Status {
	case StatusInProgress:
		return nil
	case StatusSubmitted:
		return fmt.Errorf("cannot start submitted assignment %q: %w", a.Title, ErrInvalidTransition)
	}
	a.Status = StatusInProgress
	a.UpdatedAt = now
	return nil
}

// Submit marks the assignment submitted. Submitting twice is a no-op.
func (a *Assignment) Submit(now time.Time) {
	if a.Status == StatusSubmitted {
		return
	}
	a.Status = StatusSubmitted
	a.UpdatedAt = now
}

// ReminderTimes returns the enabled reminder instants in chronological order.
// Submitted assignments have none.
func (a *Assignment) ReminderTimes() []time.Time {
	if !a.IsOpen() {
		return nil
	}
	var out []time.Time
	if a.Reminders.H24 {
		out = append(out, a.Due.Add(-24*time.Hour))
	}
	if a.Reminders.H6 {
		out = append(out, a.Due.Add(-6*time.Hour))
	}
	if a.Reminders.H1 {
		out = append(out, a.Due.Add(-time.Hour))
	}
	return out
}

// MergeKey identifies the same deadline across shared calendars.
func (a *Assignment) MergeKey() string {
	return strings.ToLower(a.Course) + "|" + strings.ToLower(a.Title) + "|" + a.Due.UTC().Format(time.RFC3339)
}
