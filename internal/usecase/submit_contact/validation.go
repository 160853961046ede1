package submit_contact

import (
	"regexp"
	"strings"
)

// Сообщения валидации показываются пользователю как есть
const (
	msgNameRequired  = "Inserisci il tuo nome"
	msgEmailRequired = "Inserisci la tua email"
	msgEmailInvalid  = "Inserisci un indirizzo email valido"
	msgBodyRequired  = "Scrivi un messaggio"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// validateMessage валидирует форму и собирает ошибки по всем полям сразу
func validateMessage(msg *Message) *ValidationError {
	fields := make(map[string]string)

	if strings.TrimSpace(msg.Name) == "" {
		fields["name"] = msgNameRequired
	}

	email := strings.TrimSpace(msg.Email)
	if email == "" {
		fields["email"] = msgEmailRequired
	} else if !emailPattern.MatchString(email) {
		fields["email"] = msgEmailInvalid
	}

	if strings.TrimSpace(msg.Body) == "" {
		fields["message"] = msgBodyRequired
	}

	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}
