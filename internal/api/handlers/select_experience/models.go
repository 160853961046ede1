package select_experience

// SelectExperienceRequest HTTP request model
type SelectExperienceRequest struct {
	Slug string `json:"slug"`
}
