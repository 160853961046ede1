package gestionale

import "errors"

var (
	// ErrAPIError возвращается при любом не-2xx ответе gestionale
	// Детали статуса не различаются: для гостя это всегда одна и та же generic ошибка
	ErrAPIError = errors.New("gestionale client: api error")

	// ErrInvalidResponse возвращается при некорректном ответе от gestionale
	ErrInvalidResponse = errors.New("gestionale client: invalid response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("gestionale client: internal error")
)
