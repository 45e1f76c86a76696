package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MinutesPerDay is the length of the clock face TimeOfDay lives on.
const MinutesPerDay = 24 * 60

// Day is the full circle for duration arithmetic.
const Day = 24 * time.Hour

// TimeOfDay is a local wall-clock time with minute resolution,
// stored as minutes since midnight in [0, MinutesPerDay).
type TimeOfDay int

// NewTimeOfDay builds a TimeOfDay from an hour (0-23) and a minute (0-59).
func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %02d:%02d out of range", ErrInvalidTimeFormat, hour, minute)
	}
	return TimeOfDay(hour*60 + minute), nil
}

// MustTimeOfDay is like NewTimeOfDay but panics on invalid input.
// Intended for constants and tests.
func MustTimeOfDay(hour, minute int) TimeOfDay {
	t, err := NewTimeOfDay(hour, minute)
	if err != nil {
		panic(err)
	}
	return t
}

// TimeOfDayFrom drops the date, seconds and sub-second part of t.
func TimeOfDayFrom(t time.Time) TimeOfDay {
	return TimeOfDay(t.Hour()*60 + t.Minute())
}

// ParseTimeOfDay parses "HH:MM" (24-hour). The input is split on ':' and
// both parts must be unsigned integers in range.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	s = strings.TrimSpace(s)
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: %q must be HH:MM", ErrInvalidTimeFormat, s)
	}

	hour, err := strconv.ParseUint(parts[0], 10, 16)
	if err != nil {
		return 0, fmt.Errorf("%w: hour %q is not a number", ErrInvalidTimeFormat, parts[0])
	}
	minute, err := strconv.ParseUint(parts[1], 10, 16)
	if err != nil {
		return 0, fmt.Errorf("%w: minute %q is not a number", ErrInvalidTimeFormat, parts[1])
	}

	return NewTimeOfDay(int(hour), int(minute))
}

// Hour returns the hour component (0-23).
func (t TimeOfDay) Hour() int {
	return int(t) / 60
}

// Minute returns the minute component (0-59).
func (t TimeOfDay) Minute() int {
	return int(t) % 60
}

// String formats the time as HH:MM.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// Add moves t by d around the clock. Sub-minute parts of d are dropped.
func (t TimeOfDay) Add(d time.Duration) TimeOfDay {
	m := (int(t) + int(d/time.Minute)) % MinutesPerDay
	if m < 0 {
		m += MinutesPerDay
	}
	return TimeOfDay(m)
}

// On returns the instant t on the calendar day of ref, in ref's location.
func (t TimeOfDay) On(ref time.Time) time.Time {
	y, mo, d := ref.Date()
	return time.Date(y, mo, d, t.Hour(), t.Minute(), 0, 0, ref.Location())
}

// MarshalText implements encoding.TextMarshaler.
func (t TimeOfDay) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *TimeOfDay) UnmarshalText(text []byte) error {
	parsed, err := ParseTimeOfDay(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// DurationFrom returns the forward distance from a to b on a 24-hour clock.
// When b is not after a the distance wraps through midnight, so
// DurationFrom(a, a) is a full Day. The result is in (0, Day].
func DurationFrom(a, b TimeOfDay) time.Duration {
	diff := int(b) - int(a)
	if b <= a {
		diff += MinutesPerDay
	}
	return time.Duration(diff) * time.Minute
}

// Elapsed is DurationFrom with a == b reading as zero. The result is in
// [0, Day).
func Elapsed(a, b TimeOfDay) time.Duration {
	d := DurationFrom(a, b)
	if d == Day {
		return 0
	}
	return d
}
