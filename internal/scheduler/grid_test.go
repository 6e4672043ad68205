package scheduler

import (
	"testing"

	"github.com/alexanderramin/studysync/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWeekGrid_Shape(t *testing.T) {
	g := NewWeekGrid()

	for _, day := range domain.Weekdays() {
		slots := g.Days[day].Slots
		assert.Equal(t, day, g.Days[day].Day)

		wantLen, wantStart, wantEnd := 24, "09:00", "21:00"
		if day.IsWeekend() {
			wantLen, wantStart, wantEnd = 16, "11:00", "19:00"
		}
		require.Len(t, slots, wantLen, "day=%s", day)
		assert.Equal(t, wantStart, slots[0].Start.String(), "day=%s", day)
		assert.Equal(t, wantEnd, slots[len(slots)-1].End.String(), "day=%s", day)

		for i, s := range slots {
			assert.Equal(t, day, s.Day)
			assert.False(t, s.Occupied)
			assert.Equal(t, s.Start.Add(SlotMinutes), s.End, "slot %d is half an hour", i)
			if i > 0 {
				assert.Equal(t, slots[i-1].End, s.Start, "day=%s slot %d is contiguous", day, i)
			}
		}
	}
}

func TestNewWeekGrid_Capacity(t *testing.T) {
	g := NewWeekGrid()
	assert.Equal(t, 5*24+2*16, g.Capacity())
	assert.Equal(t, g.Capacity(), g.Free())
}

func TestNewWeekGrid_FreshEachCall(t *testing.T) {
	a := NewWeekGrid()
	a.Days[domain.Monday].Slots[0].Occupied = true

	b := NewWeekGrid()
	assert.False(t, b.Days[domain.Monday].Slots[0].Occupied, "grids must not share slots")
	assert.Equal(t, a.Capacity()-1, a.Free())
}

func TestTrimWeekend_ShortListUntouched(t *testing.T) {
	short := buildDaySlots(domain.Saturday, domain.NewClock(9, 0), domain.NewClock(12, 0))
	require.Len(t, short, 6)
	assert.Len(t, trimWeekend(short), 6)

	exact := buildDaySlots(domain.Sunday, domain.NewClock(9, 0), domain.NewClock(13, 0))
	assert.Empty(t, trimWeekend(exact))
}
