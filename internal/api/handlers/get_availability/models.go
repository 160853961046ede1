package get_availability

import (
	"time"

	"github.com/sulfurea/SPA-BookingService/internal/domain"
	checkAvailability "github.com/sulfurea/SPA-BookingService/internal/usecase/check_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Slots   []Slot `json:"slots"`
	Message string `json:"message,omitempty"`
}

// Slot модель временного слота
type Slot struct {
	ID        string   `json:"id"`
	Date      string   `json:"date"`
	Time      string   `json:"time"`
	Available bool     `json:"available"`
	Price     *float64 `json:"price,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *AvailabilityResponse {
	slots := make([]Slot, len(resp.Result.Slots))
	for i, s := range resp.Result.Slots {
		slots[i] = Slot{
			ID:        s.ID,
			Date:      s.Date.Format(domain.DateFormat),
			Time:      s.Time.String(),
			Available: s.Available,
			Price:     s.Price,
		}
	}

	return &AvailabilityResponse{
		Slots:   slots,
		Message: resp.Result.Message,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(startStr, endStr string, guests int, experienceType string) (*checkAvailability.Request, error) {
	start, err := time.Parse(domain.DateFormat, startStr)
	if err != nil {
		return nil, err
	}
	end, err := time.Parse(domain.DateFormat, endStr)
	if err != nil {
		return nil, err
	}

	return &checkAvailability.Request{
		Start:          start,
		End:            end,
		Guests:         guests,
		ExperienceType: experienceType,
	}, nil
}
