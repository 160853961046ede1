package gestionale

import (
	"fmt"
	"time"

	"github.com/sulfurea/SPA-BookingService/internal/domain"
	"github.com/sulfurea/SPA-BookingService/pkg/types"
)

// availabilityResponse модель ответа GET /availability
type availabilityResponse struct {
	Slots   []slotModel `json:"slots"`
	Message string      `json:"message,omitempty"`
}

// slotModel модель слота в ответе gestionale
type slotModel struct {
	ID        string   `json:"id"`
	Date      string   `json:"date"` // YYYY-MM-DD
	Time      string   `json:"time"` // HH:MM
	Available bool     `json:"available"`
	Price     *float64 `json:"price,omitempty"`
}

// offerModel модель offerta в ответе GET /offers
type offerModel struct {
	Slug          string   `json:"slug"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Price         *float64 `json:"price"`
	OriginalPrice *float64 `json:"originalPrice,omitempty"`
	ValidUntil    string   `json:"validUntil"`
}

// holdRequestModel модель запроса POST /hold
type holdRequestModel struct {
	SlotID         string  `json:"slotId"`
	Guests         int     `json:"guests"`
	ExperienceType string  `json:"experienceType"`
	ContactName    *string `json:"contactName,omitempty"`
	ContactEmail   *string `json:"contactEmail,omitempty"`
	ContactPhone   *string `json:"contactPhone,omitempty"`
}

// holdResponseModel модель ответа POST /hold
type holdResponseModel struct {
	HoldID    string `json:"holdId"`
	ExpiresAt string `json:"expiresAt"` // ISO-8601
	Summary   string `json:"summary"`
}

func (r *availabilityResponse) toDomain() (*domain.AvailabilityResult, error) {
	slots := make([]domain.TimeSlot, len(r.Slots))
	for i, s := range r.Slots {
		date, err := time.Parse(domain.DateFormat, s.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: bad slot date %q", ErrInvalidResponse, s.Date)
		}
		ts, err := types.NewTimeStringFromString(s.Time)
		if err != nil {
			return nil, fmt.Errorf("%w: bad slot time %q", ErrInvalidResponse, s.Time)
		}
		slots[i] = domain.TimeSlot{
			ID:        s.ID,
			Date:      date,
			Time:      ts,
			Available: s.Available,
			Price:     s.Price,
		}
	}
	return &domain.AvailabilityResult{Slots: slots, Message: r.Message}, nil
}

func (m *offerModel) toDomain() domain.Offer {
	return domain.Offer{
		Slug:          m.Slug,
		Name:          m.Name,
		Description:   m.Description,
		Price:         m.Price,
		OriginalPrice: m.OriginalPrice,
		ValidUntil:    m.ValidUntil,
		Enabled:       true,
	}
}

func (m *holdResponseModel) toDomain() (*domain.Hold, error) {
	expiresAt, err := time.Parse(time.RFC3339, m.ExpiresAt)
	if err != nil {
		return nil, fmt.Errorf("%w: bad hold expiry %q", ErrInvalidResponse, m.ExpiresAt)
	}
	return &domain.Hold{
		HoldID:    m.HoldID,
		ExpiresAt: expiresAt,
		Summary:   m.Summary,
	}, nil
}

func toHoldRequestModel(req *domain.HoldRequest) holdRequestModel {
	return holdRequestModel{
		SlotID:         req.SlotID,
		Guests:         req.Guests,
		ExperienceType: req.ExperienceType,
		ContactName:    req.ContactName,
		ContactEmail:   req.ContactEmail,
		ContactPhone:   req.ContactPhone,
	}
}
