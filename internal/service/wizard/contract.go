package wizard

import (
	"context"
	"time"

	"github.com/sulfurea/SPA-BookingService/internal/domain"
	"github.com/sulfurea/SPA-BookingService/internal/service/handoff"
	check "github.com/sulfurea/SPA-BookingService/internal/usecase/check_availability"
)

// AvailabilityChecker интерфейс проверки доступности
// Повторно используется вся валидация запроса и дефолтное сообщение
type AvailabilityChecker interface {
	Execute(ctx context.Context, req *check.Request) (*check.Response, error)
}

// ExperienceCatalog интерфейс каталога esperienze
type ExperienceCatalog interface {
	EnabledExperienceBySlug(slug string) (*domain.Experience, error)
}

// HandoffBuilder интерфейс сборки ссылок подтверждения
type HandoffBuilder interface {
	BuildLinks(intent *handoff.BookingIntent) *handoff.Links
}

// Tracker интерфейс аналитики, сбои внутри трекера не видны сервису
type Tracker interface {
	Track(ctx context.Context, name string, props map[string]interface{})
}

// SessionsGauge интерфейс метрики активных сессий
type SessionsGauge interface {
	Inc()
	Dec()
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
