package service

import (
	"time"

	"github.com/alexanderramin/studysync/internal/domain"
	"github.com/alexanderramin/studysync/internal/scheduler"
	"github.com/google/uuid"
)

func resolveNow(now *time.Time) time.Time {
	if now != nil {
		return *now
	}
	return time.Now().UTC()
}

// assignmentWorkItems converts open assignments to scheduler input keyed by
// due date.
func assignmentWorkItems(assignments []*domain.Assignment, defaultEffort float64) []scheduler.WorkItem {
	items := make([]scheduler.WorkItem, 0, len(assignments))
	for _, a := range assignments {
		if !a.IsOpen() {
			continue
		}
		items = append(items, scheduler.WorkItem{
			ID:            a.ID,
			Label:         a.Label(),
			RequiredUnits: a.Units(defaultEffort),
			PriorityKey:   a.Due.UnixNano(),
		})
	}
	return items
}

func requestedUnits(items []scheduler.WorkItem) int {
	n := 0
	for _, it := range items {
		n += max(1, it.RequiredUnits)
	}
	return n
}

// toPlanBlocks prepares placed blocks for storage. Seq is assigned on append.
func toPlanBlocks(placed []scheduler.PlacedBlock, source domain.BlockSource, now time.Time) []*domain.PlanBlock {
	blocks := make([]*domain.PlanBlock, len(placed))
	for i, p := range placed {
		blocks[i] = &domain.PlanBlock{
			ID:        uuid.New().String(),
			Day:       p.Day,
			Start:     p.Start,
			End:       p.End,
			Title:     p.Label,
			Source:    source,
			ItemID:    p.ItemID,
			CreatedAt: now,
		}
	}
	return blocks
}
