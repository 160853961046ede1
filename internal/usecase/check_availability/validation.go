package check_availability

import (
	"errors"
	"fmt"
	"time"

	"github.com/sulfurea/SPA-BookingService/internal/catalog"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, limits Limits, now time.Time, experiences ExperienceCatalog) error {
	if req.Start.IsZero() || req.End.IsZero() {
		return fmt.Errorf("%w: both start and end dates are required", ErrInvalidInput)
	}

	if dateOnly(req.End).Before(dateOnly(req.Start)) {
		return ErrInvalidDateRange
	}

	if req.Guests < limits.MinGuests || req.Guests > limits.MaxGuests {
		return fmt.Errorf("%w: guests must be between %d and %d",
			ErrInvalidInput, limits.MinGuests, limits.MaxGuests)
	}

	if err := validateDates(req, limits, now); err != nil {
		return err
	}

	// Фильтр по esperienza опционален, но если указан - должен быть известным и включённым
	if req.ExperienceType != "" {
		if _, err := experiences.EnabledExperienceBySlug(req.ExperienceType); err != nil {
			if errors.Is(err, catalog.ErrExperienceNotFound) {
				return ErrExperienceNotFound
			}
			return fmt.Errorf("%w: failed to resolve experience: %v", ErrInternal, err)
		}
	}

	return nil
}

// validateDates проверяет, что период попадает в бронируемое окно
func validateDates(req *Request, limits Limits, now time.Time) error {
	today := dateOnly(now)

	if dateOnly(req.Start).Before(today) {
		return ErrDateInPast
	}

	if limits.MaxAdvanceDays > 0 {
		maxDate := today.AddDate(0, 0, limits.MaxAdvanceDays)
		if dateOnly(req.End).After(maxDate) {
			return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, limits.MaxAdvanceDays)
		}
	}

	return nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
