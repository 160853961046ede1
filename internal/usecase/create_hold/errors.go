package create_hold

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrExperienceNotFound возвращается, когда указана неизвестная esperienza
	ErrExperienceNotFound = errors.New("experience not found")

	// ErrProviderUnavailable возвращается при любой ошибке внешней системы
	ErrProviderUnavailable = errors.New("hold provider unavailable")
)
