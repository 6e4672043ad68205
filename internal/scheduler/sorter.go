package scheduler

import "sort"

// SortByPriority returns a copy of items ordered by ascending PriorityKey.
// Ties keep their input order.
func SortByPriority(items []WorkItem) []WorkItem {
	sorted := make([]WorkItem, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].PriorityKey < sorted[j].PriorityKey
	})
	return sorted
}
