package select_experience

import (
	"context"

	"github.com/sulfurea/SPA-BookingService/internal/service/wizard"
)

type WizardService interface {
	SelectExperience(ctx context.Context, id, slug string) (*wizard.State, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
