package domain

import "time"

// Default booking limits, used when the configuration omits them
const (
	DefaultMinGuests       = 1
	DefaultMaxGuests       = 10
	DefaultMaxAdvanceDays  = 90
	DefaultMinAdvanceHours = 2
)

// Mock backend behaviour, mirrors the gestionale contract the real backend implements
const (
	// MockAvailabilityProbability вероятность того, что слот доступен
	MockAvailabilityProbability = 0.7

	// MockPriceMin / MockPriceMax границы случайной цены доступного слота (EUR)
	MockPriceMin = 40
	MockPriceMax = 70

	// MockDelayMin / MockDelayMax искусственная задержка, имитирующая сеть
	MockDelayMin = 800 * time.Millisecond
	MockDelayMax = 1400 * time.Millisecond

	// HoldTTL время жизни hold-а
	HoldTTL = 15 * time.Minute
)

// SlotTimes фиксированные времена слотов, по одному слоту на каждое время в каждый день диапазона
var SlotTimes = []string{"09:00", "10:30", "12:00", "14:00", "15:30", "17:00", "18:30"}

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Wizard steps, strictly forward-advancing except explicit back transitions
type WizardStep int

const (
	StepExperienceSelection WizardStep = 1
	StepDateAndGuests       WizardStep = 2
	StepAvailabilityResults WizardStep = 3
)

// String returns the human-readable step label
func (s WizardStep) String() string {
	switch s {
	case StepExperienceSelection:
		return "experience_selection"
	case StepDateAndGuests:
		return "date_and_guests"
	case StepAvailabilityResults:
		return "availability_results"
	default:
		return "unknown"
	}
}
