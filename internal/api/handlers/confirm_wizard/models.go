package confirm_wizard

import (
	"github.com/sulfurea/SPA-BookingService/internal/service/wizard"
)

// ConfirmResponse HTTP response model
// Ссылки ведут на живые каналы: телефон, WhatsApp, email
type ConfirmResponse struct {
	Summary string `json:"summary"`
	Links   Links  `json:"links"`
}

// Links каналы завершения заявки
type Links struct {
	Tel      string `json:"tel"`
	WhatsApp string `json:"whatsapp"`
	Mailto   string `json:"mailto"`
}

// FromConfirmResult конвертирует результат сервиса в HTTP response
func FromConfirmResult(res *wizard.ConfirmResult) *ConfirmResponse {
	return &ConfirmResponse{
		Summary: res.Summary,
		Links: Links{
			Tel:      res.Links.Tel,
			WhatsApp: res.Links.WhatsApp,
			Mailto:   res.Links.Mailto,
		},
	}
}
