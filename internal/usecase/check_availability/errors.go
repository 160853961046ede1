package check_availability

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidDateRange возвращается, когда конец периода раньше начала
	ErrInvalidDateRange = errors.New("invalid date range")

	// ErrDateInPast возвращается, когда период начинается в прошлом
	ErrDateInPast = errors.New("date range starts in the past")

	// ErrDateTooFarInFuture возвращается, когда период превышает ограничение maxAdvanceDays
	ErrDateTooFarInFuture = errors.New("date is too far in the future")

	// ErrExperienceNotFound возвращается, когда фильтр указывает на неизвестную esperienza
	ErrExperienceNotFound = errors.New("experience not found")

	// ErrProviderUnavailable возвращается при любой ошибке внешней системы
	// Транзиентные и постоянные ошибки не различаются: retry не предусмотрен
	ErrProviderUnavailable = errors.New("availability provider unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
