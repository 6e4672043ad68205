package scheduler

// Strategy places work items into a week grid.
type Strategy interface {
	Place(items []WorkItem, grid *WeekGrid) Placement
}

// Plan runs the strategy against a freshly built grid.
func Plan(s Strategy, items []WorkItem) Placement {
	return s.Place(items, NewWeekGrid())
}
