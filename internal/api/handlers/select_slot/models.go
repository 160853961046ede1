package select_slot

// SelectSlotRequest HTTP request model
type SelectSlotRequest struct {
	SlotID string `json:"slotId"`
}
