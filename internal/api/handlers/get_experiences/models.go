package get_experiences

import (
	"github.com/sulfurea/SPA-BookingService/internal/domain"
)

// ExperiencesResponse HTTP response model
type ExperiencesResponse struct {
	Experiences []Experience `json:"experiences"`
}

// Experience модель esperienza для витрины
type Experience struct {
	Slug             string    `json:"slug"`
	Name             string    `json:"name"`
	Category         string    `json:"category"`
	Duration         string    `json:"duration"`
	ShortDescription string    `json:"shortDescription"`
	Description      string    `json:"description"`
	Includes         []string  `json:"includes,omitempty"`
	Benefits         []string  `json:"benefits,omitempty"`
	IdealFor         []string  `json:"idealFor,omitempty"`
	Expectations     []string  `json:"expectations,omitempty"`
	FAQ              []FAQItem `json:"faq,omitempty"`
	Price            *float64  `json:"price,omitempty"`
}

// FAQItem пара вопрос/ответ
type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// FromDomainList конвертирует доменные esperienze в HTTP response
func FromDomainList(experiences []domain.Experience) *ExperiencesResponse {
	out := make([]Experience, len(experiences))
	for i, e := range experiences {
		faq := make([]FAQItem, len(e.FAQ))
		for j, f := range e.FAQ {
			faq[j] = FAQItem{Question: f.Question, Answer: f.Answer}
		}
		out[i] = Experience{
			Slug:             e.Slug,
			Name:             e.Name,
			Category:         e.Category,
			Duration:         e.Duration,
			ShortDescription: e.ShortDescription,
			Description:      e.Description,
			Includes:         e.Includes,
			Benefits:         e.Benefits,
			IdealFor:         e.IdealFor,
			Expectations:     e.Expectations,
			FAQ:              faq,
			Price:            e.Price,
		}
	}
	return &ExperiencesResponse{Experiences: out}
}
