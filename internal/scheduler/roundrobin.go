package scheduler

// RoundRobin lays items out back to back from Monday 09:00 with a cursor that
// carries over between items and wraps from Sunday back to Monday. It neither
// reads nor sets Occupied, so it can overlap other plans and itself. Items are
// placed in input order.
type RoundRobin struct{}

func (RoundRobin) Place(items []WorkItem, grid *WeekGrid) Placement {
	var out Placement
	if grid.Capacity() == 0 {
		for _, item := range items {
			out.Shortfalls = append(out.Shortfalls, Shortfall{
				ItemID:    item.ID,
				Label:     item.Label,
				Requested: item.units(),
			})
		}
		return out
	}

	day, slot := 0, 0
	for _, item := range items {
		for remaining := item.units(); remaining > 0; remaining-- {
			// Skip empty days so the cursor always lands on a real slot.
			for len(grid.Days[day].Slots) == 0 {
				day = (day + 1) % len(grid.Days)
			}
			out.Blocks = append(out.Blocks, placeAt(item, grid.Days[day].Slots[slot]))
			slot++
			if slot == len(grid.Days[day].Slots) {
				slot = 0
				day = (day + 1) % len(grid.Days)
			}
		}
	}
	return out
}
