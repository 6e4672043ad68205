package scheduler

// FirstFit books items in deadline order into the first free slots of the
// week, scanning Monday to Sunday and each day in time order. Slots are
// exclusive: once booked they are skipped by later items. Items that do not
// fit are reported as shortfalls; nothing rolls over to another week.
//
// Placement never looks at how close a slot is to an item's due date, so a
// low-priority item may land after its deadline when earlier days are full.
type FirstFit struct{}

func (FirstFit) Place(items []WorkItem, grid *WeekGrid) Placement {
	var out Placement
	for _, item := range SortByPriority(items) {
		requested := item.units()
		remaining := requested

		for d := range grid.Days {
			if remaining == 0 {
				break
			}
			slots := grid.Days[d].Slots
			for s := range slots {
				if remaining == 0 {
					break
				}
				if slots[s].Occupied {
					continue
				}
				slots[s].Occupied = true
				out.Blocks = append(out.Blocks, placeAt(item, slots[s]))
				remaining--
			}
		}

		if remaining > 0 {
			out.Shortfalls = append(out.Shortfalls, Shortfall{
				ItemID:    item.ID,
				Label:     item.Label,
				Requested: requested,
				Placed:    requested - remaining,
			})
		}
	}
	return out
}
