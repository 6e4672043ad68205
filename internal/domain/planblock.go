package domain

import "time"

// PlanBlock is a persisted half-hour placement in the weekly plan.
type PlanBlock struct {
	ID        string
	Seq       int
	Day       Weekday
	Start     Clock
	End       Clock
	Title     string
	Source    BlockSource
	ItemID    string
	CreatedAt time.Time
}
