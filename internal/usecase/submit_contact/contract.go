package submit_contact

import "context"

// ContactSender интерфейс доставки сообщения контактной формы
type ContactSender interface {
	Send(ctx context.Context, msg *Message) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
