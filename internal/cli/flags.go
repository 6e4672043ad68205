package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/studysync/internal/domain"
	"github.com/spf13/pflag"
)

var dueLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04",
	"2006-01-02T15:04",
}

// parseDue accepts RFC3339, "YYYY-MM-DD HH:MM" or a bare date. Bare dates are
// due at 23:59 local time.
func parseDue(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dueLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	if d, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return d.Add(23*time.Hour + 59*time.Minute), nil
	}
	return time.Time{}, fmt.Errorf("invalid due date %q (use YYYY-MM-DD or \"YYYY-MM-DD HH:MM\")", s)
}

// timeValue is a pflag.Value holding an optional deadline.
type timeValue struct {
	t *time.Time
}

var _ pflag.Value = (*timeValue)(nil)

func (v *timeValue) String() string {
	if v.t == nil || v.t.IsZero() {
		return ""
	}
	return v.t.Format("2006-01-02 15:04")
}

func (v *timeValue) Set(s string) error {
	t, err := parseDue(s)
	if err != nil {
		return err
	}
	*v.t = t
	return nil
}

func (v *timeValue) Type() string { return "datetime" }

// weekdayValue is a pflag.Value for a day name such as "mon" or "Tuesday".
type weekdayValue struct {
	day *domain.Weekday
	set bool
}

func (v *weekdayValue) String() string {
	if !v.set {
		return ""
	}
	return v.day.String()
}

func (v *weekdayValue) Set(s string) error {
	d, err := domain.ParseWeekday(s)
	if err != nil {
		return err
	}
	*v.day = d
	v.set = true
	return nil
}

func (v *weekdayValue) Type() string { return "day" }

// clockValue is a pflag.Value for an "HH:MM" wall-clock time.
type clockValue struct {
	clock *domain.Clock
}

func (v *clockValue) String() string { return v.clock.String() }

func (v *clockValue) Set(s string) error {
	c, err := domain.ParseClock(s)
	if err != nil {
		return err
	}
	*v.clock = c
	return nil
}

func (v *clockValue) Type() string { return "HH:MM" }

func dueFlag(fs *pflag.FlagSet, target *time.Time, usage string) {
	fs.Var(&timeValue{t: target}, "due", usage)
}

func weekdayFlag(fs *pflag.FlagSet, target *domain.Weekday, name, usage string) {
	fs.Var(&weekdayValue{day: target}, name, usage)
}

func clockFlag(fs *pflag.FlagSet, target *domain.Clock, name, usage string) {
	fs.Var(&clockValue{clock: target}, name, usage)
}

// nowFlag lets scripted runs pin the clock used for planning.
func nowFlag(fs *pflag.FlagSet, target *time.Time) {
	fs.Var(&timeValue{t: target}, "now", "Plan as if it were this time (YYYY-MM-DD HH:MM)")
	_ = fs.MarkHidden("now")
}
