package catalog

import "github.com/sulfurea/SPA-BookingService/internal/domain"

// fileModel TOML-модель файла каталога
type fileModel struct {
	Experiences []experienceModel `toml:"experiences"`
	Offers      []offerModel      `toml:"offers"`
	FAQ         []faqModel        `toml:"faq"`
}

type experienceModel struct {
	Slug             string     `toml:"slug"`
	Name             string     `toml:"name"`
	Category         string     `toml:"category"`
	Duration         string     `toml:"duration"`
	ShortDescription string     `toml:"short_description"`
	Description      string     `toml:"description"`
	Includes         []string   `toml:"includes"`
	Benefits         []string   `toml:"benefits"`
	IdealFor         []string   `toml:"ideal_for"`
	Expectations     []string   `toml:"expectations"`
	FAQ              []faqModel `toml:"faq"`
	Price            *float64   `toml:"price"`
	Enabled          bool       `toml:"enabled"`
}

type offerModel struct {
	Slug          string   `toml:"slug"`
	Name          string   `toml:"name"`
	Description   string   `toml:"description"`
	Includes      []string `toml:"includes"`
	Price         *float64 `toml:"price"`
	OriginalPrice *float64 `toml:"original_price"`
	ValidUntil    string   `toml:"valid_until"`
	Enabled       bool     `toml:"enabled"`
}

type faqModel struct {
	Question string `toml:"question"`
	Answer   string `toml:"answer"`
}

func (m *experienceModel) toDomain() domain.Experience {
	return domain.Experience{
		Slug:             m.Slug,
		Name:             m.Name,
		Category:         m.Category,
		Duration:         m.Duration,
		ShortDescription: m.ShortDescription,
		Description:      m.Description,
		Includes:         m.Includes,
		Benefits:         m.Benefits,
		IdealFor:         m.IdealFor,
		Expectations:     m.Expectations,
		FAQ:              toDomainFAQ(m.FAQ),
		Price:            m.Price,
		Enabled:          m.Enabled,
	}
}

func (m *offerModel) toDomain() domain.Offer {
	return domain.Offer{
		Slug:          m.Slug,
		Name:          m.Name,
		Description:   m.Description,
		Includes:      m.Includes,
		Price:         m.Price,
		OriginalPrice: m.OriginalPrice,
		ValidUntil:    m.ValidUntil,
		Enabled:       m.Enabled,
	}
}

func toDomainFAQ(models []faqModel) []domain.FAQPair {
	out := make([]domain.FAQPair, len(models))
	for i, m := range models {
		out[i] = domain.FAQPair{Question: m.Question, Answer: m.Answer}
	}
	return out
}
