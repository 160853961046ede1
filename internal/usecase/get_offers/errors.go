package get_offers

import "errors"

var (
	// ErrProviderUnavailable возвращается при любой ошибке внешней системы
	ErrProviderUnavailable = errors.New("offers provider unavailable")
)
