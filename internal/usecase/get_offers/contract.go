package get_offers

import (
	"context"

	"github.com/sulfurea/SPA-BookingService/internal/domain"
)

// OffersProvider интерфейс внешнего источника offerte
type OffersProvider interface {
	GetOffers(ctx context.Context, start, end string) ([]domain.Offer, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
