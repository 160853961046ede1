package check_availability

import (
	"context"
	"fmt"

	"github.com/sulfurea/SPA-BookingService/internal/domain"
)

// msgDefaultNoAvailability сообщение по умолчанию при отсутствии доступности
// Сообщение от backend-а (если есть) имеет приоритет
const msgDefaultNoAvailability = "Prova a selezionare date diverse o contattaci direttamente per verificare."

// UseCase use case проверки доступности слотов
type UseCase struct {
	provider     AvailabilityProvider
	experiences  ExperienceCatalog
	limits       Limits
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	provider AvailabilityProvider,
	experiences ExperienceCatalog,
	limits Limits,
	logger Logger,
) *UseCase {
	return &UseCase{
		provider:     provider,
		experiences:  experiences,
		limits:       limits,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case проверки доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: start=%s, end=%s, guests=%d, type=%s",
		req.Start.Format(domain.DateFormat), req.End.Format(domain.DateFormat),
		req.Guests, req.ExperienceType)

	// 1. Валидация входных данных
	if err := validateRequest(req, uc.limits, uc.timeProvider.Now(), uc.experiences); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	query := domain.BookingQuery{
		Start:          req.Start,
		End:            req.End,
		Guests:         req.Guests,
		ExperienceType: req.ExperienceType,
	}

	// 2. Один запрос к провайдеру, без retry
	result, err := uc.provider.GetAvailability(ctx, &query)
	if err != nil {
		uc.logger.Error("CheckAvailability: provider request failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}

	// 3. Если ничего не доступно и backend не прислал сообщение - подставляем дефолтное
	if !result.HasAvailability() && result.Message == "" {
		result.Message = msgDefaultNoAvailability
	}

	uc.logger.Info("CheckAvailability: %d slots (%d available) for %s..%s",
		len(result.Slots), len(result.AvailableSlots()),
		req.Start.Format(domain.DateFormat), req.End.Format(domain.DateFormat))

	return &Response{Query: query, Result: result}, nil
}
