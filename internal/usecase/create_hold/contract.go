package create_hold

import (
	"context"

	"github.com/sulfurea/SPA-BookingService/internal/domain"
)

// HoldProvider интерфейс внешней системы, создающей hold на слот
type HoldProvider interface {
	CreateHold(ctx context.Context, req *domain.HoldRequest) (*domain.Hold, error)
}

// ExperienceCatalog интерфейс каталога esperienze
type ExperienceCatalog interface {
	EnabledExperienceBySlug(slug string) (*domain.Experience, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
