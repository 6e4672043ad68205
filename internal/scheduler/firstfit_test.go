package scheduler

import (
	"testing"
	"time"

	"github.com/alexanderramin/studysync/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirstFit_EndToEndMondayScenario(t *testing.T) {
	monday := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	wednesday := monday.AddDate(0, 0, 2)

	items := []WorkItem{
		{ID: "wed", Label: "Essay", RequiredUnits: 2, PriorityKey: wednesday.Unix()},
		{ID: "mon", Label: "Quiz prep", RequiredUnits: 2, PriorityKey: monday.Unix()},
	}

	p := Plan(FirstFit{}, items)

	require.Len(t, p.Blocks, 4)
	assert.Empty(t, p.Shortfalls)

	want := []struct{ id, start, end string }{
		{"mon", "09:00", "09:30"},
		{"mon", "09:30", "10:00"},
		{"wed", "10:00", "10:30"},
		{"wed", "10:30", "11:00"},
	}
	for i, w := range want {
		b := p.Blocks[i]
		assert.Equal(t, domain.Monday, b.Day, "block %d", i)
		assert.Equal(t, w.id, b.ItemID, "block %d", i)
		assert.Equal(t, w.start, b.Start.String(), "block %d", i)
		assert.Equal(t, w.end, b.End.String(), "block %d", i)
	}
	assert.Equal(t, "Quiz prep", p.Blocks[0].Label)
}

func TestFirstFit_SpansDays(t *testing.T) {
	p := Plan(FirstFit{}, []WorkItem{{ID: "big", RequiredUnits: 30}})

	require.Len(t, p.Blocks, 30)
	assert.Equal(t, domain.Monday, p.Blocks[23].Day)
	assert.Equal(t, "20:30", p.Blocks[23].Start.String())
	assert.Equal(t, domain.Tuesday, p.Blocks[24].Day)
	assert.Equal(t, "09:00", p.Blocks[24].Start.String())
}

func TestFirstFit_ClampsUnitsToOne(t *testing.T) {
	p := Plan(FirstFit{}, []WorkItem{{ID: "zero", RequiredUnits: 0}, {ID: "neg", RequiredUnits: -3}})

	require.Len(t, p.Blocks, 2)
	assert.Equal(t, "zero", p.Blocks[0].ItemID)
	assert.Equal(t, "neg", p.Blocks[1].ItemID)
}

func TestFirstFit_SkipsOccupiedSlots(t *testing.T) {
	g := NewWeekGrid()
	g.Days[domain.Monday].Slots[0].Occupied = true
	g.Days[domain.Monday].Slots[2].Occupied = true

	p := FirstFit{}.Place([]WorkItem{{ID: "a", RequiredUnits: 2}}, g)

	require.Len(t, p.Blocks, 2)
	assert.Equal(t, "09:30", p.Blocks[0].Start.String())
	assert.Equal(t, "10:30", p.Blocks[1].Start.String())
}

func TestFirstFit_MarksGridOccupied(t *testing.T) {
	g := NewWeekGrid()
	FirstFit{}.Place([]WorkItem{{ID: "a", RequiredUnits: 5}}, g)
	assert.Equal(t, g.Capacity()-5, g.Free())
}

func TestFirstFit_ExhaustionIsPartialNotError(t *testing.T) {
	capacity := NewWeekGrid().Capacity()
	items := []WorkItem{
		{ID: "first", RequiredUnits: capacity - 3, PriorityKey: 1},
		{ID: "second", RequiredUnits: 10, PriorityKey: 2},
		{ID: "third", RequiredUnits: 4, PriorityKey: 3},
	}

	p := Plan(FirstFit{}, items)

	assert.Equal(t, capacity, p.PlacedUnits())
	require.Len(t, p.Shortfalls, 2)
	assert.Equal(t, Shortfall{ItemID: "second", Requested: 10, Placed: 3}, p.Shortfalls[0])
	assert.Equal(t, Shortfall{ItemID: "third", Requested: 4, Placed: 0}, p.Shortfalls[1])
	assert.Equal(t, 11, p.MissingUnits())

	last := p.Blocks[len(p.Blocks)-1]
	assert.Equal(t, domain.Sunday, last.Day)
	assert.Equal(t, "18:30", last.Start.String())
}

func TestFirstFit_EmptyInput(t *testing.T) {
	p := Plan(FirstFit{}, nil)
	assert.Empty(t, p.Blocks)
	assert.Empty(t, p.Shortfalls)
}
