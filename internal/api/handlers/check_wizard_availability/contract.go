package check_wizard_availability

import (
	"context"

	"github.com/sulfurea/SPA-BookingService/internal/service/wizard"
)

type WizardService interface {
	CheckAvailability(ctx context.Context, id, start, end string) (*wizard.State, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
