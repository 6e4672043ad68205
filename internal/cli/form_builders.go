package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
)

// assignmentInput collects the fields of a new assignment as typed.
type assignmentInput struct {
	Title  string
	Course string
	Due    string
	Effort string
	Remind []string
}

// Reminder option values for the multi-select.
const (
	remind24h = "24h"
	remind6h  = "6h"
	remind1h  = "1h"
)

// assignmentForm returns a themed form for a new assignment. Fields already
// filled in by flags are shown pre-populated.
func assignmentForm(in *assignmentInput) *huh.Form {
	if len(in.Remind) == 0 {
		in.Remind = []string{remind24h, remind6h, remind1h}
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Placeholder("Essay draft").
				Value(&in.Title).
				Validate(validateRequired("title")),
			huh.NewInput().
				Title("Course (optional)").
				Placeholder("HIST 210").
				Value(&in.Course),
			dueInput("Due (YYYY-MM-DD HH:MM)", &in.Due),
			effortInput("Effort in hours (blank for default)", &in.Effort),
			huh.NewMultiSelect[string]().
				Title("Reminders").
				Options(
					huh.NewOption("24 hours before", remind24h),
					huh.NewOption("6 hours before", remind6h),
					huh.NewOption("1 hour before", remind1h),
				).
				Value(&in.Remind),
		),
	).WithTheme(studysyncHuhTheme()).WithShowHelp(false)
}

// dueInput returns a huh.Input for a required deadline.
func dueInput(title string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder("2025-06-30 17:00").
		Value(value).
		Validate(validateDue)
}

// effortInput returns a huh.Input for an optional non-negative hour count.
func effortInput(title string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder("2").
		Value(value).
		Validate(validateOptionalHours)
}

// confirmForm creates a yes/no confirmation.
func confirmForm(title string, result *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(result),
		),
	).WithTheme(studysyncHuhTheme()).WithShowHelp(false)
}

func validateRequired(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

func validateDue(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("due date is required")
	}
	if _, err := parseDue(s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD HH:MM")
	}
	return nil
}

// validateOptionalHours accepts empty or a non-negative number.
func validateOptionalHours(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 {
		return fmt.Errorf("enter a non-negative number of hours")
	}
	return nil
}
