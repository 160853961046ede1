package adjust_guests

// AdjustGuestsRequest HTTP request model
// Delta +1/-1 от кнопок счётчика, но принимается любое целое
type AdjustGuestsRequest struct {
	Delta int `json:"delta"`
}
