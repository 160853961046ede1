package create_hold

import (
	"context"
	"fmt"

	"github.com/sulfurea/SPA-BookingService/internal/domain"
)

// UseCase use case создания hold на слот
// Операция полностью специфицирована контрактом gestionale, но ни один
// шаг визарда её не вызывает: подтверждение уходит по телефону/WhatsApp
type UseCase struct {
	provider    HoldProvider
	experiences ExperienceCatalog
	limits      Limits
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	provider HoldProvider,
	experiences ExperienceCatalog,
	limits Limits,
	logger Logger,
) *UseCase {
	return &UseCase{
		provider:    provider,
		experiences: experiences,
		limits:      limits,
		logger:      logger,
	}
}

// Execute выполняет use case создания hold
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.Hold, error) {
	uc.logger.Info("CreateHold: slot=%s, guests=%d, type=%s", req.SlotID, req.Guests, req.ExperienceType)

	if err := validateRequest(req, uc.limits, uc.experiences); err != nil {
		uc.logger.Warn("CreateHold: validation failed: %v", err)
		return nil, err
	}

	hold, err := uc.provider.CreateHold(ctx, &domain.HoldRequest{
		SlotID:         req.SlotID,
		Guests:         req.Guests,
		ExperienceType: req.ExperienceType,
		ContactName:    req.ContactName,
		ContactEmail:   req.ContactEmail,
		ContactPhone:   req.ContactPhone,
	})
	if err != nil {
		uc.logger.Error("CreateHold: provider request failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}

	uc.logger.Info("CreateHold: hold_id=%s, expires_at=%s", hold.HoldID, hold.ExpiresAt.Format("2006-01-02T15:04:05Z07:00"))
	return hold, nil
}
