package domain

// Offer represents a bundled or discounted package combining experiences and/or lodging
// Reference data, immutable after startup
type Offer struct {
	Slug          string
	Name          string
	Description   string
	Includes      []string
	Price         *float64
	OriginalPrice *float64
	ValidUntil    string // YYYY-MM-DD, empty = no expiry published
	Enabled       bool
}
