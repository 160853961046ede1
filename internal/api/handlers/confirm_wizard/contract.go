package confirm_wizard

import (
	"context"

	"github.com/sulfurea/SPA-BookingService/internal/service/wizard"
)

type WizardService interface {
	Confirm(ctx context.Context, id string) (*wizard.ConfirmResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
