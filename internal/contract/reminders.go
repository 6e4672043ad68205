package contract

import "time"

type Reminder struct {
	AssignmentID string
	Label        string
	Due          time.Time
	At           time.Time
	// Lead is how long before the deadline the reminder fires.
	Lead time.Duration
}

type RemindersRequest struct {
	Now     *time.Time
	Horizon time.Duration
}

func NewRemindersRequest() RemindersRequest {
	return RemindersRequest{Horizon: 7 * 24 * time.Hour}
}
