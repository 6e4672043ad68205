package scheduler

import "github.com/alexanderramin/studysync/internal/domain"

// Availability window shared by every day of the week.
const (
	SlotMinutes = 30

	// WeekendTrim is the number of slots dropped from each end of a weekend day.
	WeekendTrim = 4
)

var (
	DayStart = domain.NewClock(9, 0)
	DayEnd   = domain.NewClock(21, 0)
)

// TimeSlot is one bookable half-hour cell.
type TimeSlot struct {
	Day      domain.Weekday
	Start    domain.Clock
	End      domain.Clock
	Occupied bool
}

// DaySlots holds one day's slots in time order.
type DaySlots struct {
	Day   domain.Weekday
	Slots []TimeSlot
}

// WeekGrid is the availability grid for a single scheduling run, Monday first.
// A grid is owned by exactly one run and is never reused.
type WeekGrid struct {
	Days [domain.DaysPerWeek]DaySlots
}

// NewWeekGrid builds a fresh, unoccupied grid. Weekdays span DayStart to DayEnd;
// Saturday and Sunday lose WeekendTrim slots at each end.
func NewWeekGrid() *WeekGrid {
	g := &WeekGrid{}
	for _, day := range domain.Weekdays() {
		slots := buildDaySlots(day, DayStart, DayEnd)
		if day.IsWeekend() {
			slots = trimWeekend(slots)
		}
		g.Days[day] = DaySlots{Day: day, Slots: slots}
	}
	return g
}

func buildDaySlots(day domain.Weekday, start, end domain.Clock) []TimeSlot {
	var slots []TimeSlot
	for t := start; t.Add(SlotMinutes) <= end; t = t.Add(SlotMinutes) {
		slots = append(slots, TimeSlot{Day: day, Start: t, End: t.Add(SlotMinutes)})
	}
	return slots
}

// trimWeekend drops WeekendTrim slots from both ends. Lists too short to
// survive the trim are left untouched.
func trimWeekend(slots []TimeSlot) []TimeSlot {
	if len(slots) < 2*WeekendTrim {
		return slots
	}
	return slots[WeekendTrim : len(slots)-WeekendTrim]
}

// Capacity is the total number of slots in the grid.
func (g *WeekGrid) Capacity() int {
	n := 0
	for _, d := range g.Days {
		n += len(d.Slots)
	}
	return n
}

// Free is the number of slots not yet occupied.
func (g *WeekGrid) Free() int {
	n := 0
	for _, d := range g.Days {
		for _, s := range d.Slots {
			if !s.Occupied {
				n++
			}
		}
	}
	return n
}
