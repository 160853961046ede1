package check_availability

import (
	"time"

	"github.com/sulfurea/SPA-BookingService/internal/domain"
)

// Request модель запроса на проверку доступности
type Request struct {
	Start          time.Time // Начало периода (только дата)
	End            time.Time // Конец периода (только дата)
	Guests         int       // Количество гостей
	ExperienceType string    // Slug esperienza (опционально, "" = без фильтра)
}

// Response модель ответа с результатом доступности
type Response struct {
	Query  domain.BookingQuery        // Эхо валидированного запроса
	Result *domain.AvailabilityResult // Слоты + опциональное сообщение
}

// Limits бизнес-ограничения бронирования из конфигурации
type Limits struct {
	MinGuests      int
	MaxGuests      int
	MaxAdvanceDays int
}
