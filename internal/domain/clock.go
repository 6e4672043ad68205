package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Weekday is a day of the planning week. Monday is the first day.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// DaysPerWeek is the number of days in a planning week.
const DaysPerWeek = 7

var weekdayNames = [DaysPerWeek]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// Weekdays returns every day of the week, Monday first.
func Weekdays() []Weekday {
	days := make([]Weekday, DaysPerWeek)
	for i := range days {
		days[i] = Weekday(i)
	}
	return days
}

func (d Weekday) String() string {
	if d < Monday || d > Sunday {
		return fmt.Sprintf("Weekday(%d)", int(d))
	}
	return weekdayNames[d]
}

// IsWeekend reports whether d is Saturday or Sunday.
func (d Weekday) IsWeekend() bool {
	return d == Saturday || d == Sunday
}

// ParseWeekday accepts a full or three-letter day name, case-insensitive.
func ParseWeekday(s string) (Weekday, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	if needle == "" {
		return 0, fmt.Errorf("day is required: %w", ErrInvalidInput)
	}
	for i, name := range weekdayNames {
		lower := strings.ToLower(name)
		if needle == lower || needle == lower[:3] {
			return Weekday(i), nil
		}
	}
	return 0, fmt.Errorf("unknown day %q: %w", s, ErrInvalidInput)
}

// Clock is a wall-clock time of day in minutes since midnight.
type Clock int

// NewClock builds a Clock from hours and minutes.
func NewClock(hour, minute int) Clock {
	return Clock(hour*60 + minute)
}

// Hour returns the hour component.
func (c Clock) Hour() int { return int(c) / 60 }

// Minute returns the minute component.
func (c Clock) Minute() int { return int(c) % 60 }

// Add returns c shifted by the given number of minutes.
func (c Clock) Add(minutes int) Clock { return c + Clock(minutes) }

// String formats the clock as zero-padded "HH:MM".
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

// ParseClock parses a "HH:MM" wall-clock time between 00:00 and 24:00.
func ParseClock(s string) (Clock, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return 0, fmt.Errorf("time %q must be HH:MM: %w", s, ErrInvalidInput)
	}
	hour, err := strconv.Atoi(hh)
	if err != nil {
		return 0, fmt.Errorf("time %q has a bad hour: %w", s, ErrInvalidInput)
	}
	minute, err := strconv.Atoi(mm)
	if err != nil || len(mm) != 2 {
		return 0, fmt.Errorf("time %q has a bad minute: %w", s, ErrInvalidInput)
	}
	if hour < 0 || minute < 0 || minute > 59 || hour > 24 || (hour == 24 && minute != 0) {
		return 0, fmt.Errorf("time %q is out of range: %w", s, ErrInvalidInput)
	}
	return NewClock(hour, minute), nil
}
