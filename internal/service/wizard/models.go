package wizard

import (
	"github.com/sulfurea/SPA-BookingService/internal/domain"
	"github.com/sulfurea/SPA-BookingService/internal/service/handoff"
)

// Limits бизнес-ограничения из конфигурации
type Limits struct {
	MinGuests      int
	MaxGuests      int
	MaxAdvanceDays int
}

// State снимок состояния сессии визарда
// Снимок копируется под блокировкой сессии, его можно читать без синхронизации
type State struct {
	ID             string
	Step           domain.WizardStep
	ExperienceSlug string
	ExperienceName string
	StartDate      string
	EndDate        string
	Guests         int
	Availability   *domain.AvailabilityResult
	SelectedSlotID string
}

// SelectedSlot возвращает выбранный слот из результатов, если он есть
func (s *State) SelectedSlot() *domain.TimeSlot {
	if s.SelectedSlotID == "" || s.Availability == nil {
		return nil
	}
	for i := range s.Availability.Slots {
		if s.Availability.Slots[i].ID == s.SelectedSlotID {
			return &s.Availability.Slots[i]
		}
	}
	return nil
}

// ConfirmResult результат подтверждения заявки
// Запись в систему не создаётся, бронь завершается живым контактом
type ConfirmResult struct {
	Links   *handoff.Links
	Summary string
}
