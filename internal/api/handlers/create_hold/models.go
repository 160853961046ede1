package create_hold

import (
	"time"

	"github.com/sulfurea/SPA-BookingService/internal/domain"
	createHold "github.com/sulfurea/SPA-BookingService/internal/usecase/create_hold"
)

// CreateHoldRequest HTTP request model
type CreateHoldRequest struct {
	SlotID         string  `json:"slotId"`
	Guests         int     `json:"guests"`
	ExperienceType string  `json:"experienceType"`
	ContactName    *string `json:"contactName,omitempty"`
	ContactEmail   *string `json:"contactEmail,omitempty"`
	ContactPhone   *string `json:"contactPhone,omitempty"`
}

// HoldResponse HTTP response model
type HoldResponse struct {
	HoldID    string `json:"holdId"`
	ExpiresAt string `json:"expiresAt"`
	Summary   string `json:"summary"`
}

// ToUseCaseRequest конвертирует HTTP request в запрос use case
func (r *CreateHoldRequest) ToUseCaseRequest() *createHold.Request {
	return &createHold.Request{
		SlotID:         r.SlotID,
		Guests:         r.Guests,
		ExperienceType: r.ExperienceType,
		ContactName:    r.ContactName,
		ContactEmail:   r.ContactEmail,
		ContactPhone:   r.ContactPhone,
	}
}

// FromDomainHold конвертирует доменный hold в HTTP response
func FromDomainHold(hold *domain.Hold) *HoldResponse {
	return &HoldResponse{
		HoldID:    hold.HoldID,
		ExpiresAt: hold.ExpiresAt.Format(time.RFC3339),
		Summary:   hold.Summary,
	}
}
