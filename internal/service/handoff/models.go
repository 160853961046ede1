package handoff

// Links каналы завершения заявки
// Бронирование подтверждается только живым контактом, поэтому финальный
// шаг визарда отдаёт ссылки вместо записи в систему
type Links struct {
	Tel      string `json:"tel"`
	WhatsApp string `json:"whatsapp"`
	Mailto   string `json:"mailto"`
}

// BookingIntent данные заявки для предзаполнения сообщения
type BookingIntent struct {
	ExperienceName string
	Guests         int
	Date           string // YYYY-MM-DD
	Time           string // HH:MM
}
