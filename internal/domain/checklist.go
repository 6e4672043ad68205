package domain

import (
	"fmt"
	"strings"
	"time"
)

// ChecklistTask is a free-standing to-do item.
type ChecklistTask struct {
	ID        string
	Text      string
	Done      bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (t *ChecklistTask) Validate() error {
	if strings.TrimSpace(t.Text) == "" {
		return fmt.Errorf("task text is required: %w", ErrInvalidInput)
	}
	return nil
}

// SetDone records the completion state.
func (t *ChecklistTask) SetDone(done bool, now time.Time) {
	if t.Done == done {
		return
	}
	t.Done = done
	t.UpdatedAt = now
}

// ChecklistStats summarises a checklist.
type ChecklistStats struct {
	Done  int
	Total int
}

// Summarize counts completed tasks.
func Summarize(tasks []*ChecklistTask) ChecklistStats {
	stats := ChecklistStats{Total: len(tasks)}
	for _, t := range tasks {
		if t.Done {
			stats.Done++
		}
	}
	return stats
}
