package submit_contact

import "errors"

var (
	// ErrValidation возвращается, когда форма не проходит валидацию
	// Детали по полям лежат в ValidationError.Fields
	ErrValidation = errors.New("contact form validation failed")

	// ErrSendFailed возвращается при сбое доставки сообщения
	ErrSendFailed = errors.New("failed to send contact message")
)

// ValidationError ошибка валидации с сообщениями по каждому полю
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return ErrValidation.Error()
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
