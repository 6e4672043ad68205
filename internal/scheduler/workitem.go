package scheduler

import "github.com/alexanderramin/studysync/internal/domain"

// WorkItem is a unit of schedulable work measured in half-hour units.
type WorkItem struct {
	ID            string
	Label         string
	RequiredUnits int
	// PriorityKey orders items; lower sorts first.
	PriorityKey int64
}

// units clamps RequiredUnits to at least one.
func (w WorkItem) units() int {
	if w.RequiredUnits < 1 {
		return 1
	}
	return w.RequiredUnits
}

// PlacedBlock is a single booked half hour.
type PlacedBlock struct {
	ItemID string
	Day    domain.Weekday
	Start  domain.Clock
	End    domain.Clock
	Label  string
}

func placeAt(item WorkItem, slot TimeSlot) PlacedBlock {
	return PlacedBlock{
		ItemID: item.ID,
		Day:    slot.Day,
		Start:  slot.Start,
		End:    slot.End,
		Label:  item.Label,
	}
}

// Shortfall records an item that could not be fully placed.
type Shortfall struct {
	ItemID    string
	Label     string
	Requested int
	Placed    int
}

// Missing is the number of units left unplaced.
func (s Shortfall) Missing() int { return s.Requested - s.Placed }

// Placement is the outcome of one scheduling run.
type Placement struct {
	// Blocks are in booking order.
	Blocks     []PlacedBlock
	Shortfalls []Shortfall
}

// PlacedUnits is the number of half hours booked.
func (p Placement) PlacedUnits() int { return len(p.Blocks) }

// MissingUnits sums every shortfall.
func (p Placement) MissingUnits() int {
	n := 0
	for _, s := range p.Shortfalls {
		n += s.Missing()
	}
	return n
}
