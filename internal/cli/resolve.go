package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/studysync/internal/service"
)

// resolvePrefix matches input against ids: exact match first, then a unique
// prefix.
func resolvePrefix(kind, input string, ids []string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("%s ID is required", kind)
	}

	for _, id := range ids {
		if id == input {
			return id, nil
		}
	}

	var matches []string
	for _, id := range ids {
		if strings.HasPrefix(id, input) {
			matches = append(matches, id)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%s not found: %q", kind, input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%s ID prefix %q is ambiguous (%d matches)", kind, input, len(matches))
	}
}

func resolveAssignmentID(ctx context.Context, app *App, input string) (string, error) {
	assignments, err := app.Assignments.List(ctx, service.AssignmentFilter{})
	if err != nil {
		return "", err
	}
	ids := make([]string, len(assignments))
	for i, a := range assignments {
		ids[i] = a.ID
	}
	return resolvePrefix("assignment", input, ids)
}

func resolveTaskID(ctx context.Context, app *App, input string) (string, error) {
	tasks, err := app.Checklist.List(ctx)
	if err != nil {
		return "", err
	}
	ids := make([]string, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
	}
	return resolvePrefix("task", input, ids)
}

func resolveSessionID(ctx context.Context, app *App, input string) (string, error) {
	week, err := app.Timetable.Week(ctx)
	if err != nil {
		return "", err
	}
	var ids []string
	for _, day := range week {
		for _, s := range day.Sessions {
			ids = append(ids, s.ID)
		}
	}
	return resolvePrefix("session", input, ids)
}
