package create_hold

import (
	"context"

	"github.com/sulfurea/SPA-BookingService/internal/domain"
	createHold "github.com/sulfurea/SPA-BookingService/internal/usecase/create_hold"
)

type CreateHoldUseCase interface {
	Execute(ctx context.Context, req *createHold.Request) (*domain.Hold, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
