package create_hold

// Request модель запроса на создание hold
type Request struct {
	SlotID         string
	Guests         int
	ExperienceType string
	ContactName    *string
	ContactEmail   *string
	ContactPhone   *string
}

// Limits бизнес-ограничения из конфигурации
type Limits struct {
	MinGuests int
	MaxGuests int
}
