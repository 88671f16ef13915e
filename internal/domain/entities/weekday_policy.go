package entities

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrInvalidWeekdayPolicy = errors.New("invalid weekday policy")

// WeekdayPolicy partitions the week into auto days, whose overrides are
// reverted by the weekly job, and manual days that stay under operator control.
//
// Every weekday belongs to exactly one side.
type WeekdayPolicy struct {
	manual [7]bool
}

// weekOrder lists days Monday first, which is how the admin UI presents them.
var weekOrder = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

func NewWeekdayPolicy(auto, manual []time.Weekday) (WeekdayPolicy, error) {
	var seen [7]int
	var p WeekdayPolicy
	for _, d := range auto {
		if d < time.Sunday || d > time.Saturday {
			return WeekdayPolicy{}, fmt.Errorf("%w: unknown weekday %d", ErrInvalidWeekdayPolicy, int(d))
		}
		seen[d]++
	}
	for _, d := range manual {
		if d < time.Sunday || d > time.Saturday {
			return WeekdayPolicy{}, fmt.Errorf("%w: unknown weekday %d", ErrInvalidWeekdayPolicy, int(d))
		}
		seen[d]++
		p.manual[d] = true
	}
	for _, d := range weekOrder {
		switch seen[d] {
		case 0:
			return WeekdayPolicy{}, fmt.Errorf("%w: %s is neither auto nor manual", ErrInvalidWeekdayPolicy, d)
		case 1:
		default:
			return WeekdayPolicy{}, fmt.Errorf("%w: %s is listed more than once", ErrInvalidWeekdayPolicy, d)
		}
	}
	return p, nil
}

// DefaultWeekdayPolicy is Monday–Thursday auto, Friday–Sunday manual.
func DefaultWeekdayPolicy() WeekdayPolicy {
	p, _ := NewWeekdayPolicy(
		[]time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday},
		[]time.Weekday{time.Friday, time.Saturday, time.Sunday},
	)
	return p
}

func (p WeekdayPolicy) IsManual(d time.Weekday) bool { return p.manual[d] }

func (p WeekdayPolicy) IsAuto(d time.Weekday) bool { return !p.manual[d] }

func (p WeekdayPolicy) AutoDays() []time.Weekday {
	return p.filter(false)
}

func (p WeekdayPolicy) ManualDays() []time.Weekday {
	return p.filter(true)
}

// ReminderDays are the auto days immediately followed by a manual day: the
// operator is reminded on them to review the upcoming manually-controlled rates.
func (p WeekdayPolicy) ReminderDays() []time.Weekday {
	var out []time.Weekday
	for _, d := range weekOrder {
		next := (d + 1) % 7
		if !p.manual[d] && p.manual[next] {
			out = append(out, d)
		}
	}
	return out
}

func (p WeekdayPolicy) IsReminderDay(d time.Weekday) bool {
	for _, r := range p.ReminderDays() {
		if r == d {
			return true
		}
	}
	return false
}

func (p WeekdayPolicy) filter(manual bool) []time.Weekday {
	out := make([]time.Weekday, 0, 7)
	for _, d := range weekOrder {
		if p.manual[d] == manual {
			out = append(out, d)
		}
	}
	return out
}

// ParseWeekday accepts full or three-letter English day names, any case.
func ParseWeekday(raw string) (time.Weekday, error) {
	name := strings.ToLower(strings.TrimSpace(raw))
	for _, d := range weekOrder {
		full := strings.ToLower(d.String())
		if name == full || name == full[:3] {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown weekday %q", ErrInvalidWeekdayPolicy, raw)
}

func ParseWeekdays(raw []string) ([]time.Weekday, error) {
	out := make([]time.Weekday, 0, len(raw))
	for _, r := range raw {
		d, err := ParseWeekday(r)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}
