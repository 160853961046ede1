package get_experiences

import (
	"github.com/sulfurea/SPA-BookingService/internal/domain"
)

type ExperienceCatalog interface {
	EnabledExperiences() []domain.Experience
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
