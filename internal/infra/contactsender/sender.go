package contactsender

import (
	"context"
	"time"

	"github.com/sulfurea/SPA-BookingService/internal/usecase/submit_contact"
)

const sendDelay = 1200 * time.Millisecond

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Debug(format string, v ...interface{})
}

// Sender имитация доставки сообщений контактной формы
// Реального почтового канала нет: сообщение логируется и считается доставленным
type Sender struct {
	log Logger

	sleep func(time.Duration)
}

// New создает новый Sender
func New(log Logger) *Sender {
	return &Sender{log: log, sleep: time.Sleep}
}

// Send имитирует отправку сообщения с фиксированной задержкой
func (s *Sender) Send(ctx context.Context, msg *submit_contact.Message) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	s.sleep(sendDelay)

	s.log.Info("contactsender: message from %q <%s>, context=%s", msg.Name, msg.Email, msg.Context)
	s.log.Debug("contactsender: body: %s", msg.Body)
	return nil
}
