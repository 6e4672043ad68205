package domain

import (
	"fmt"
	"time"
)

// TimetableSession is a recurring weekly study session.
type TimetableSession struct {
	ID        string
	Day       Weekday
	Start     Clock
	End       Clock
	Focus     string
	CreatedAt time.Time
}

func (s *TimetableSession) Validate() error {
	if s.Day < Monday || s.Day > Sunday {
		return fmt.Errorf("day %d out of range: %w", int(s.Day), ErrInvalidInput)
	}
	if s.End <= s.Start {
		return fmt.Errorf("session must end after it starts (%s-%s): %w", s.Start, s.End, ErrInvalidInput)
	}
	return nil
}
