package handoff

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/sulfurea/SPA-BookingService/internal/domain"
	"github.com/sulfurea/SPA-BookingService/pkg/itdate"
)

// Service собирает ссылки tel/WhatsApp/mailto с предзаполненным текстом заявки
type Service struct {
	phone    string
	whatsapp string
	email    string
	logger   Logger
}

// NewService создает новый сервис handoff-ссылок
func NewService(phone, whatsapp, email string, logger Logger) *Service {
	return &Service{
		phone:    phone,
		whatsapp: whatsapp,
		email:    email,
		logger:   logger,
	}
}

// BuildLinks собирает все три канала для заявки
func (s *Service) BuildLinks(intent *BookingIntent) *Links {
	text := s.intentText(intent)

	links := &Links{
		Tel:      s.telLink(),
		WhatsApp: s.whatsAppLink(text),
		Mailto:   s.mailtoLink(text),
	}

	s.logger.Info("BuildLinks: links built for %q, guests=%d", intent.ExperienceName, intent.Guests)
	return links
}

// intentText составляет человекочитаемый текст заявки на итальянском
func (s *Service) intentText(intent *BookingIntent) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Vorrei prenotare %s per %d persone", intent.ExperienceName, intent.Guests)

	if intent.Date != "" {
		if day, err := time.Parse(domain.DateFormat, intent.Date); err == nil {
			fmt.Fprintf(&b, " il %s", itdate.Format(day))
		} else {
			s.logger.Warn("intentText: unparseable date %q, using raw value", intent.Date)
			fmt.Fprintf(&b, " il %s", intent.Date)
		}
	}
	if intent.Time != "" {
		fmt.Fprintf(&b, " alle %s", intent.Time)
	}
	b.WriteString(".")

	return b.String()
}

// telLink возвращает tel:-ссылку без пробелов в номере
func (s *Service) telLink() string {
	return "tel:" + strings.ReplaceAll(s.phone, " ", "")
}

// whatsAppLink возвращает ссылку wa.me с предзаполненным сообщением
// В номере остаются только цифры, без "+" и разделителей
func (s *Service) whatsAppLink(text string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s.whatsapp)

	return fmt.Sprintf("https://wa.me/%s?text=%s", digits, url.QueryEscape(text))
}

// mailtoLink возвращает mailto-ссылку с темой и телом
func (s *Service) mailtoLink(text string) string {
	params := url.Values{}
	params.Set("subject", "Richiesta di prenotazione")
	params.Set("body", text)

	return fmt.Sprintf("mailto:%s?%s", s.email, params.Encode())
}
