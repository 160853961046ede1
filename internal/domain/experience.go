package domain

// Experience represents a bookable spa treatment or path shown to guests
// Reference data, loaded once at startup and never mutated
type Experience struct {
	Slug             string
	Name             string
	Category         string
	Duration         string
	ShortDescription string
	Description      string
	Includes         []string
	Benefits         []string
	IdealFor         []string
	Expectations     []string // ordered, step by step
	FAQ              []FAQPair
	Price            *float64
	Enabled          bool
}

// FAQPair represents a question/answer pair attached to an experience or the site
type FAQPair struct {
	Question string
	Answer   string
}

// IsBookable returns true if the experience can be selected in the wizard
func (e *Experience) IsBookable() bool {
	return e.Enabled
}
