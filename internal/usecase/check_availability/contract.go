package check_availability

import (
	"context"
	"time"

	"github.com/sulfurea/SPA-BookingService/internal/domain"
)

// AvailabilityProvider интерфейс внешней системы доступности
// Реализуется либо HTTP клиентом gestionale, либо mock backend-ом;
// выбор делается один раз при старте сервиса
type AvailabilityProvider interface {
	GetAvailability(ctx context.Context, query *domain.BookingQuery) (*domain.AvailabilityResult, error)
}

// ExperienceCatalog интерфейс каталога esperienze
type ExperienceCatalog interface {
	EnabledExperienceBySlug(slug string) (*domain.Experience, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
