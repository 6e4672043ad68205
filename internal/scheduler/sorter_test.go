package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortByPriority_Ascending(t *testing.T) {
	items := []WorkItem{
		{ID: "late", PriorityKey: 300},
		{ID: "early", PriorityKey: 100},
		{ID: "mid", PriorityKey: 200},
	}

	sorted := SortByPriority(items)

	assert.Equal(t, []string{"early", "mid", "late"}, ids(sorted))
	assert.Equal(t, "late", items[0].ID, "input slice is not reordered")
}

func TestSortByPriority_StableTies(t *testing.T) {
	items := []WorkItem{
		{ID: "b", PriorityKey: 5},
		{ID: "a", PriorityKey: 5},
		{ID: "first", PriorityKey: 1},
		{ID: "c", PriorityKey: 5},
	}

	assert.Equal(t, []string{"first", "b", "a", "c"}, ids(SortByPriority(items)))
}

func ids(items []WorkItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}
