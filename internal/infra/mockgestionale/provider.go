package mockgestionale

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/sulfurea/SPA-BookingService/internal/domain"
	"github.com/sulfurea/SPA-BookingService/pkg/types"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// msgNoAvailability сообщение mock backend-а при полном отсутствии доступности
const msgNoAvailability = "Nessuna disponibilità in queste date. Prova date vicine o contattaci direttamente."

// Provider mock-реализация gestionale: генерирует случайную доступность
// с искусственной задержкой вместо реальных сетевых вызовов
// Используется, когда base_url gestionale не сконфигурирован
type Provider struct {
	log Logger

	// Подменяются в тестах для детерминизма и скорости
	rnd   *rand.Rand
	sleep func(time.Duration)
	now   func() time.Time
}

// NewProvider создает новый mock provider
func NewProvider(log Logger) *Provider {
	return &Provider{
		log:   log,
		rnd:   rand.New(rand.NewSource(time.Now().UnixNano())),
		sleep: time.Sleep,
		now:   time.Now,
	}
}

// GetAvailability генерирует по одному слоту на каждое фиксированное время
// для каждого календарного дня диапазона; каждый слот независимо доступен
// с вероятностью MockAvailabilityProbability
func (p *Provider) GetAvailability(_ context.Context, query *domain.BookingQuery) (*domain.AvailabilityResult, error) {
	p.simulateLatency()

	slotTimes := make([]types.TimeString, 0, len(domain.SlotTimes))
	for _, s := range domain.SlotTimes {
		ts, err := types.NewTimeStringFromString(s)
		if err != nil {
			return nil, fmt.Errorf("mockgestionale: bad slot time constant %q: %w", s, err)
		}
		slotTimes = append(slotTimes, ts)
	}

	start := dateOnly(query.Start)
	end := dateOnly(query.End)

	slots := make([]domain.TimeSlot, 0, len(slotTimes)*query.Days())
	for current := start; !current.After(end); current = current.AddDate(0, 0, 1) {
		for _, ts := range slotTimes {
			slot := domain.TimeSlot{
				ID:        domain.NewSlotID(current, ts),
				Date:      current,
				Time:      ts,
				Available: p.rnd.Float64() < domain.MockAvailabilityProbability,
			}
			if slot.Available {
				price := math.Floor(p.rnd.Float64()*(domain.MockPriceMax-domain.MockPriceMin)) + domain.MockPriceMin
				slot.Price = &price
			}
			slots = append(slots, slot)
		}
	}

	result := &domain.AvailabilityResult{Slots: slots}
	if !result.HasAvailability() {
		result.Message = msgNoAvailability
	}

	p.log.Info("Mock availability: %d slots generated for %s..%s",
		len(slots), query.Start.Format(domain.DateFormat), query.End.Format(domain.DateFormat))
	return result, nil
}

// GetOffers возвращает фиксированный набор промо-offerte
func (p *Provider) GetOffers(_ context.Context, _, _ string) ([]domain.Offer, error) {
	p.sleep(500 * time.Millisecond)

	offers := make([]domain.Offer, len(mockOffers))
	copy(offers, mockOffers)
	return offers, nil
}

// CreateHold создает hold с истечением через HoldTTL
func (p *Provider) CreateHold(_ context.Context, req *domain.HoldRequest) (*domain.Hold, error) {
	p.sleep(600 * time.Millisecond)

	hold := &domain.Hold{
		HoldID:    "hold-" + uuid.NewString(),
		ExpiresAt: p.now().Add(domain.HoldTTL),
		Summary:   fmt.Sprintf("Prenotazione in attesa per %d persona/e", req.Guests),
	}

	p.log.Info("Mock hold created: hold_id=%s, slot=%s, guests=%d", hold.HoldID, req.SlotID, req.Guests)
	return hold, nil
}

// simulateLatency имитирует сетевую задержку 800-1400ms
func (p *Provider) simulateLatency() {
	jitter := time.Duration(p.rnd.Int63n(int64(domain.MockDelayMax - domain.MockDelayMin)))
	p.sleep(domain.MockDelayMin + jitter)
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
