package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/sulfurea/SPA-BookingService/pkg/types"
)

// TimeSlot represents a specific bookable date+time combination
// Identity is the date+time pair; produced fresh on every availability query
type TimeSlot struct {
	ID        string
	Date      time.Time // date only, time-of-day carried separately
	Time      types.TimeString
	Available bool
	Price     *float64 // set only when the slot is available
}

// NewSlotID builds the canonical slot identifier, e.g. "slot-2026-05-10-1400"
func NewSlotID(date time.Time, t types.TimeString) string {
	return fmt.Sprintf("slot-%s-%s", date.Format(DateFormat), strings.ReplaceAll(t.String(), ":", ""))
}

// AvailabilityResult represents the ordered outcome of one availability query
// Message is set when nothing is bookable; a provider-supplied message takes
// precedence over the default one
type AvailabilityResult struct {
	Slots   []TimeSlot
	Message string
}

// AvailableSlots returns only the bookable subset, preserving order
func (r *AvailabilityResult) AvailableSlots() []TimeSlot {
	out := make([]TimeSlot, 0, len(r.Slots))
	for _, s := range r.Slots {
		if s.Available {
			out = append(out, s)
		}
	}
	return out
}

// HasAvailability returns true if at least one slot is bookable
func (r *AvailabilityResult) HasAvailability() bool {
	for _, s := range r.Slots {
		if s.Available {
			return true
		}
	}
	return false
}
