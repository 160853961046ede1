package submit_contact

// Message модель сообщения контактной формы
type Message struct {
	Name    string
	Email   string
	Phone   string // опционально
	Body    string
	Context string // откуда пришла форма: "contatti", "wizard-fallback"
}

// Result результат обработки формы
type Result struct {
	// MailtoLink fallback-ссылка для ручной отправки при сбое доставки
	MailtoLink string
}
