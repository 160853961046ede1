package submit_contact

import (
	"context"

	submitContact "github.com/sulfurea/SPA-BookingService/internal/usecase/submit_contact"
)

type SubmitContactUseCase interface {
	Execute(ctx context.Context, msg *submitContact.Message) (*submitContact.Result, error)
}

type Tracker interface {
	Track(ctx context.Context, name string, props map[string]interface{})
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
