package submit_contact

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// UseCase use case отправки контактной формы
// При сбое доставки пользователь получает mailto-ссылку как запасной канал
type UseCase struct {
	sender       ContactSender
	contactEmail string
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(sender ContactSender, contactEmail string, logger Logger) *UseCase {
	return &UseCase{
		sender:       sender,
		contactEmail: contactEmail,
		logger:       logger,
	}
}

// Execute выполняет use case отправки сообщения
func (uc *UseCase) Execute(ctx context.Context, msg *Message) (*Result, error) {
	if vErr := validateMessage(msg); vErr != nil {
		uc.logger.Warn("SubmitContact: validation failed for %d field(s)", len(vErr.Fields))
		return nil, vErr
	}

	if err := uc.sender.Send(ctx, msg); err != nil {
		uc.logger.Error("SubmitContact: send failed: %v", err)
		return &Result{MailtoLink: uc.mailtoLink(msg)}, fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	uc.logger.Info("SubmitContact: message delivered, context=%s", msg.Context)
	return &Result{}, nil
}

// mailtoLink собирает mailto-ссылку с предзаполненными темой и телом
func (uc *UseCase) mailtoLink(msg *Message) string {
	subject := "Richiesta informazioni dal sito"
	body := msg.Body
	if strings.TrimSpace(msg.Name) != "" {
		body = fmt.Sprintf("%s\n\n%s", msg.Body, msg.Name)
	}

	params := url.Values{}
	params.Set("subject", subject)
	params.Set("body", body)

	return fmt.Sprintf("mailto:%s?%s", uc.contactEmail, params.Encode())
}
