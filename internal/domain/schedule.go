// Package domain defines the core types and interfaces for the progress
// dashboard. All other packages depend on domain; domain depends on nothing.
package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MinutesPerDay is the length of a calendar day in minutes.
const MinutesPerDay = 24 * 60

// TimeOfDay is a wall-clock time expressed as minutes since midnight.
type TimeOfDay int

// ParseTimeOfDay parses a 24h "HH:MM" string.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || len(hh) == 0 || len(hh) > 2 || len(mm) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}
	return TimeOfDay(h*60 + m), nil
}

// MustTimeOfDay is like ParseTimeOfDay but panics on malformed input.
// Intended for tests and constants.
func MustTimeOfDay(s string) TimeOfDay {
	t, err := ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return t
}

// ClockOf returns the time-of-day of t, truncated to the minute.
func ClockOf(t time.Time) TimeOfDay {
	return TimeOfDay(t.Hour()*60 + t.Minute())
}

// Hour returns the hour component.
func (t TimeOfDay) Hour() int { return int(t) / 60 }

// Minute returns the minute component.
func (t TimeOfDay) Minute() int { return int(t) % 60 }

// String formats the time as "HH:MM".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// TimeBlock is a named span of the day with an explicit start and end.
type TimeBlock struct {
	Name  string
	Start TimeOfDay
	End   TimeOfDay
}

// Minutes returns the nominal length of the block.
func (b TimeBlock) Minutes() int { return int(b.End - b.Start) }

// Validate checks that the block spans a positive number of minutes.
func (b TimeBlock) Validate() error {
	if b.End <= b.Start {
		return fmt.Errorf("time block %q (%s-%s): %w", b.Name, b.Start, b.End, ErrEmptySpan)
	}
	return nil
}

// Timer is a daily deadline. Its progress runs from midnight to Target.
type Timer struct {
	Name    string
	Target  TimeOfDay
	Message string
	Repeat  string
}
