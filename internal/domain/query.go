package domain

import "time"

// BookingQuery represents the guest's availability search: a date range,
// a guest count and an optional experience filter
type BookingQuery struct {
	Start          time.Time
	End            time.Time
	Guests         int
	ExperienceType string // experience slug, empty = no filter
}

// Days returns the number of calendar days covered by the range, inclusive
func (q *BookingQuery) Days() int {
	start := time.Date(q.Start.Year(), q.Start.Month(), q.Start.Day(), 0, 0, 0, 0, q.Start.Location())
	end := time.Date(q.End.Year(), q.End.Month(), q.End.Day(), 0, 0, 0, 0, q.End.Location())
	return int(end.Sub(start).Hours()/24) + 1
}

// HasValidRange returns true if both endpoints are set and end is not before start
func (q *BookingQuery) HasValidRange() bool {
	return !q.Start.IsZero() && !q.End.IsZero() && !q.End.Before(q.Start)
}

// ClampGuests clamps a guest count into [minGuests, maxGuests]
func ClampGuests(guests, minGuests, maxGuests int) int {
	if guests < minGuests {
		return minGuests
	}
	if guests > maxGuests {
		return maxGuests
	}
	return guests
}
