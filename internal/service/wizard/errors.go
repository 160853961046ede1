package wizard

import "errors"

var (
	// ErrSessionNotFound возвращается для неизвестного или истёкшего ID сессии
	ErrSessionNotFound = errors.New("wizard session not found")

	// ErrExperienceNotFound возвращается при выборе неизвестной esperienza
	ErrExperienceNotFound = errors.New("experience not found")

	// ErrInvalidTransition возвращается, когда операция недопустима на текущем шаге
	ErrInvalidTransition = errors.New("operation not allowed at current step")

	// ErrMissingDates возвращается, когда проверка доступности запрошена без обеих дат
	ErrMissingDates = errors.New("both start and end dates are required")

	// ErrInvalidDate возвращается при дате не в формате YYYY-MM-DD
	ErrInvalidDate = errors.New("invalid date format, expected YYYY-MM-DD")

	// ErrSlotNotFound возвращается при выборе слота, которого нет в результатах
	ErrSlotNotFound = errors.New("slot not found in availability results")

	// ErrSlotUnavailable возвращается при выборе занятого слота
	ErrSlotUnavailable = errors.New("slot is not available")

	// ErrNoSlotSelected возвращается при подтверждении без выбранного слота
	ErrNoSlotSelected = errors.New("no slot selected")
)
