package catalog

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/sulfurea/SPA-BookingService/internal/domain"
)

// Catalog хранилище справочных данных (esperienze, offerte, FAQ)
// Загружается один раз при старте, после этого только читается
type Catalog struct {
	experiences []domain.Experience
	offers      []domain.Offer
	faq         []domain.FAQPair
	bySlug      map[string]*domain.Experience
}

// Load читает каталог из TOML файла
func Load(path string) (*Catalog, error) {
	var model fileModel
	if _, err := toml.DecodeFile(path, &model); err != nil {
		return nil, fmt.Errorf("%w: failed to decode %s: %v", ErrInvalidCatalog, path, err)
	}

	return build(&model)
}

func build(model *fileModel) (*Catalog, error) {
	c := &Catalog{
		experiences: make([]domain.Experience, 0, len(model.Experiences)),
		offers:      make([]domain.Offer, 0, len(model.Offers)),
		faq:         toDomainFAQ(model.FAQ),
		bySlug:      make(map[string]*domain.Experience, len(model.Experiences)),
	}

	for _, m := range model.Experiences {
		if m.Slug == "" || m.Name == "" {
			return nil, fmt.Errorf("%w: experience requires slug and name", ErrInvalidCatalog)
		}
		if _, ok := c.bySlug[m.Slug]; ok {
			return nil, fmt.Errorf("%w: duplicate experience slug %q", ErrInvalidCatalog, m.Slug)
		}
		c.experiences = append(c.experiences, m.toDomain())
		c.bySlug[m.Slug] = &c.experiences[len(c.experiences)-1]
	}

	for _, m := range model.Offers {
		if m.Slug == "" || m.Name == "" {
			return nil, fmt.Errorf("%w: offer requires slug and name", ErrInvalidCatalog)
		}
		c.offers = append(c.offers, m.toDomain())
	}

	return c, nil
}

// Experiences возвращает все esperienze в порядке каталога
func (c *Catalog) Experiences() []domain.Experience {
	return c.experiences
}

// EnabledExperiences возвращает только включённые esperienze
func (c *Catalog) EnabledExperiences() []domain.Experience {
	out := make([]domain.Experience, 0, len(c.experiences))
	for _, e := range c.experiences {
		if e.Enabled {
			out = append(out, e)
		}
	}
	return out
}

// ExperienceBySlug возвращает esperienza по slug
func (c *Catalog) ExperienceBySlug(slug string) (*domain.Experience, error) {
	e, ok := c.bySlug[slug]
	if !ok {
		return nil, ErrExperienceNotFound
	}
	return e, nil
}

// EnabledExperienceBySlug возвращает esperienza по slug, только если она включена
func (c *Catalog) EnabledExperienceBySlug(slug string) (*domain.Experience, error) {
	e, err := c.ExperienceBySlug(slug)
	if err != nil {
		return nil, err
	}
	if !e.Enabled {
		return nil, ErrExperienceNotFound
	}
	return e, nil
}

// Offers возвращает все offerte
func (c *Catalog) Offers() []domain.Offer {
	return c.offers
}

// EnabledOffers возвращает только включённые offerte
func (c *Catalog) EnabledOffers() []domain.Offer {
	out := make([]domain.Offer, 0, len(c.offers))
	for _, o := range c.offers {
		if o.Enabled {
			out = append(out, o)
		}
	}
	return out
}

// FAQ возвращает общий FAQ сайта
func (c *Catalog) FAQ() []domain.FAQPair {
	return c.faq
}
