package gestionale

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/sulfurea/SPA-BookingService/internal/domain"
)

// Client HTTP клиент для внешней системы бронирования ("gestionale")
// Клиент намеренно не задаёт собственный timeout: контракт не даёт гарантии
// ответа, и зависший запрос ограничен только write timeout-ом нашего сервера
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента gestionale
// Пустой apiKey означает неаутентифицированные запросы
func NewClient(baseURL string, apiKey string, log Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{},
		log:        log,
	}
}

// GetAvailability запрашивает доступность слотов за период
// GET /availability?start=...&end=...&guests=...&type=...
func (c *Client) GetAvailability(ctx context.Context, query *domain.BookingQuery) (*domain.AvailabilityResult, error) {
	params := url.Values{}
	params.Set("start", query.Start.Format(domain.DateFormat))
	params.Set("end", query.End.Format(domain.DateFormat))
	params.Set("guests", strconv.Itoa(query.Guests))
	params.Set("type", query.ExperienceType)

	var response availabilityResponse
	if err := c.doGet(ctx, "/availability?"+params.Encode(), &response); err != nil {
		return nil, err
	}

	result, err := response.toDomain()
	if err != nil {
		return nil, err
	}

	c.log.Info("Gestionale availability: %d slots for %s..%s",
		len(result.Slots), query.Start.Format(domain.DateFormat), query.End.Format(domain.DateFormat))
	return result, nil
}

// GetOffers запрашивает текущие offerte
// GET /offers?start=...&end=...
func (c *Client) GetOffers(ctx context.Context, start, end string) ([]domain.Offer, error) {
	params := url.Values{}
	params.Set("start", start)
	params.Set("end", end)

	var response []offerModel
	if err := c.doGet(ctx, "/offers?"+params.Encode(), &response); err != nil {
		return nil, err
	}

	offers := make([]domain.Offer, len(response))
	for i, m := range response {
		offers[i] = m.toDomain()
	}
	return offers, nil
}

// CreateHold создает hold на слот
// POST /hold
func (c *Client) CreateHold(ctx context.Context, req *domain.HoldRequest) (*domain.Hold, error) {
	body, err := json.Marshal(toHoldRequestModel(req))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal hold request: %v", ErrInternal, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/hold", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	c.setHeaders(httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, c.apiError(resp)
	}

	var response holdResponseModel
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	hold, err := response.toDomain()
	if err != nil {
		return nil, err
	}

	c.log.Info("Gestionale hold created: hold_id=%s, expires_at=%s", hold.HoldID, response.ExpiresAt)
	return hold, nil
}

// doGet выполняет GET запрос и декодирует JSON ответ в out
func (c *Client) doGet(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.apiError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	return nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
}

func (c *Client) apiError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)
	c.log.Warn("Gestionale API error: status=%d, body=%s", resp.StatusCode, string(body))
	return fmt.Errorf("%w: status %d", ErrAPIError, resp.StatusCode)
}
