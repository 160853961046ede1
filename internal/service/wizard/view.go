package wizard

import (
	"github.com/sulfurea/SPA-BookingService/internal/domain"
)

// HTTP представление состояния визарда, общее для всех операций

// StateResponse снимок сессии в JSON
type StateResponse struct {
	SessionID      string               `json:"sessionId"`
	Step           int                  `json:"step"`
	StepName       string               `json:"stepName"`
	Experience     *ExperienceSelection `json:"experience,omitempty"`
	StartDate      string               `json:"startDate,omitempty"`
	EndDate        string               `json:"endDate,omitempty"`
	Guests         int                  `json:"guests"`
	Availability   *AvailabilityView    `json:"availability,omitempty"`
	SelectedSlotID string               `json:"selectedSlotId,omitempty"`
}

// ExperienceSelection выбранная esperienza
type ExperienceSelection struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
}

// AvailabilityView результат проверки доступности
type AvailabilityView struct {
	Slots   []SlotView `json:"slots"`
	Message string     `json:"message,omitempty"`
}

// SlotView один временной слот
type SlotView struct {
	ID        string   `json:"id"`
	Date      string   `json:"date"`
	Time      string   `json:"time"`
	Available bool     `json:"available"`
	Price     *float64 `json:"price,omitempty"`
}

// ToResponse конвертирует снимок состояния в HTTP представление
func (s *State) ToResponse() *StateResponse {
	resp := &StateResponse{
		SessionID:      s.ID,
		Step:           int(s.Step),
		StepName:       s.Step.String(),
		StartDate:      s.StartDate,
		EndDate:        s.EndDate,
		Guests:         s.Guests,
		SelectedSlotID: s.SelectedSlotID,
	}

	if s.ExperienceSlug != "" {
		resp.Experience = &ExperienceSelection{Slug: s.ExperienceSlug, Name: s.ExperienceName}
	}

	if s.Availability != nil {
		view := &AvailabilityView{
			Slots:   make([]SlotView, len(s.Availability.Slots)),
			Message: s.Availability.Message,
		}
		for i, slot := range s.Availability.Slots {
			view.Slots[i] = SlotView{
				ID:        slot.ID,
				Date:      slot.Date.Format(domain.DateFormat),
				Time:      slot.Time.String(),
				Available: slot.Available,
				Price:     slot.Price,
			}
		}
		resp.Availability = view
	}

	return resp
}
