package tracking

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Имена событий аналитики
const (
	EventAvailabilityCheck = "booking_availability_check"
	EventBookingSubmit     = "booking_submit"
	EventContactSubmit     = "contact_form_submit"
)

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

// Tracker отправляет события аналитики
// Аналитика никогда не ломает основной сценарий: Track не возвращает
// ошибку, сбои доставки только логируются
type Tracker struct {
	endpoint   string
	httpClient *http.Client
	log        Logger

	now func() time.Time
}

// New создает новый Tracker
// Пустой endpoint означает, что события только пишутся в debug-лог
func New(endpoint string, log Logger) *Tracker {
	return &Tracker{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: 5 * time.Second},
		log:        log,
		now:        time.Now,
	}
}

type event struct {
	Name       string                 `json:"name"`
	Properties map[string]interface{} `json:"properties,omitempty"`
	Timestamp  string                 `json:"timestamp"`
}

// Track отправляет событие с произвольными свойствами
func (t *Tracker) Track(ctx context.Context, name string, props map[string]interface{}) {
	ev := event{
		Name:       name,
		Properties: props,
		Timestamp:  t.now().UTC().Format(time.RFC3339),
	}

	if t.endpoint == "" {
		t.log.Debug("tracking: event %s %v", name, props)
		return
	}

	if err := t.send(ctx, &ev); err != nil {
		t.log.Warn("tracking: failed to deliver event %s: %v", name, err)
	}
}

func (t *Tracker) send(ctx context.Context, ev *event) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return nil
}
