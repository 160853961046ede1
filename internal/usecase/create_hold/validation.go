package create_hold

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sulfurea/SPA-BookingService/internal/catalog"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, limits Limits, experiences ExperienceCatalog) error {
	if strings.TrimSpace(req.SlotID) == "" {
		return fmt.Errorf("%w: slotId is required", ErrInvalidInput)
	}

	if req.Guests < limits.MinGuests || req.Guests > limits.MaxGuests {
		return fmt.Errorf("%w: guests must be between %d and %d",
			ErrInvalidInput, limits.MinGuests, limits.MaxGuests)
	}

	if strings.TrimSpace(req.ExperienceType) == "" {
		return fmt.Errorf("%w: experienceType is required", ErrInvalidInput)
	}

	if _, err := experiences.EnabledExperienceBySlug(req.ExperienceType); err != nil {
		if errors.Is(err, catalog.ErrExperienceNotFound) {
			return ErrExperienceNotFound
		}
		return fmt.Errorf("%w: failed to resolve experience: %v", ErrProviderUnavailable, err)
	}

	return nil
}
