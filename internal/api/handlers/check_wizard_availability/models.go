package check_wizard_availability

// CheckAvailabilityRequest HTTP request model
type CheckAvailabilityRequest struct {
	Start string `json:"start"` // YYYY-MM-DD
	End   string `json:"end"`   // YYYY-MM-DD
}
