package adjust_guests

import (
	"context"

	"github.com/sulfurea/SPA-BookingService/internal/service/wizard"
)

type WizardService interface {
	AdjustGuests(ctx context.Context, id string, delta int) (*wizard.State, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
