package get_offers

import (
	"context"
	"fmt"

	"github.com/sulfurea/SPA-BookingService/internal/domain"
)

// UseCase use case получения текущих offerte
// Списочная операция без фильтрации: ответ провайдера отдаётся как есть
type UseCase struct {
	provider OffersProvider
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(provider OffersProvider, logger Logger) *UseCase {
	return &UseCase{provider: provider, logger: logger}
}

// Execute выполняет use case получения offerte за период
func (uc *UseCase) Execute(ctx context.Context, start, end string) ([]domain.Offer, error) {
	offers, err := uc.provider.GetOffers(ctx, start, end)
	if err != nil {
		uc.logger.Error("GetOffers: provider request failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}

	uc.logger.Info("GetOffers: %d offers returned", len(offers))
	return offers, nil
}
