package domain

import "time"

// HoldRequest represents a request to reserve a slot for a short expiry window
type HoldRequest struct {
	SlotID         string
	Guests         int
	ExperienceType string
	ContactName    *string
	ContactEmail   *string
	ContactPhone   *string
}

// Hold represents a time-limited reservation placeholder returned by the backend
type Hold struct {
	HoldID    string
	ExpiresAt time.Time
	Summary   string
}

// IsExpired returns true if the hold window has passed
func (h *Hold) IsExpired(now time.Time) bool {
	return now.After(h.ExpiresAt)
}
