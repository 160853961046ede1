package types

import (
	"fmt"
	"time"
)

const timeLayout = "15:04"

// TimeString represents a time of day in "HH:MM" format
type TimeString struct {
	hour   int
	minute int
}

// NewTimeString creates a TimeString from a time.Time (date part is discarded)
func NewTimeString(t time.Time) TimeString {
	return TimeString{hour: t.Hour(), minute: t.Minute()}
}

// NewTimeStringFromString parses a "HH:MM" string into a TimeString
func NewTimeStringFromString(s string) (TimeString, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return TimeString{}, fmt.Errorf("invalid time %q: expected HH:MM", s)
	}
	return TimeString{hour: t.Hour(), minute: t.Minute()}, nil
}

// String returns the "HH:MM" representation
func (t TimeString) String() string {
	return fmt.Sprintf("%02d:%02d", t.hour, t.minute)
}

// Minutes returns the number of minutes since midnight
func (t TimeString) Minutes() int {
	return t.hour*60 + t.minute
}

// IsBefore returns true if t is strictly before other
func (t TimeString) IsBefore(other TimeString) bool {
	return t.Minutes() < other.Minutes()
}

// IsAfter returns true if t is strictly after other
func (t TimeString) IsAfter(other TimeString) bool {
	return t.Minutes() > other.Minutes()
}

// AddMinutes returns a new TimeString shifted forward by the given minutes
// Returns an error if the result crosses midnight
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	total := t.Minutes() + minutes
	if total < 0 || total >= 24*60 {
		return TimeString{}, fmt.Errorf("time %s + %dmin leaves the day", t, minutes)
	}
	return TimeString{hour: total / 60, minute: total % 60}, nil
}
