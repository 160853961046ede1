package get_offers

import (
	"context"

	"github.com/sulfurea/SPA-BookingService/internal/domain"
)

type GetOffersUseCase interface {
	Execute(ctx context.Context, start, end string) ([]domain.Offer, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
