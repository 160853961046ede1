package get_offers

import (
	"github.com/sulfurea/SPA-BookingService/internal/domain"
)

// OffersResponse HTTP response model
type OffersResponse struct {
	Offers []Offer `json:"offers"`
}

// Offer модель offerta
type Offer struct {
	Slug          string   `json:"slug"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Includes      []string `json:"includes,omitempty"`
	Price         *float64 `json:"price,omitempty"`
	OriginalPrice *float64 `json:"originalPrice,omitempty"`
	ValidUntil    string   `json:"validUntil,omitempty"`
}

// FromDomainList конвертирует доменные offerte в HTTP response
func FromDomainList(offers []domain.Offer) *OffersResponse {
	out := make([]Offer, len(offers))
	for i, o := range offers {
		out[i] = Offer{
			Slug:          o.Slug,
			Name:          o.Name,
			Description:   o.Description,
			Includes:      o.Includes,
			Price:         o.Price,
			OriginalPrice: o.OriginalPrice,
			ValidUntil:    o.ValidUntil,
		}
	}
	return &OffersResponse{Offers: out}
}
