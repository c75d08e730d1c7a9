package scheduler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	endpointAvailableWeekdays = "available-weekdays"
	endpointAvailableSlots    = "available-slots"
	endpointBookAppointment   = "book-appointment"
	endpointCreateAppointment = "create-appointment"

	maxErrorBodyBytes = 64 << 10
)

// Client клиент внешнего API расписаний (available-weekdays, available-slots, book/create-appointment).
// Повторных попыток клиент не делает: каждый вызов это ровно один HTTP запрос
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
	metrics    Metrics
}

// NewClient создает новый экземпляр клиента.
// baseURL указывает на префикс роутера бронирований, например http://scheduler:8000/api/bookings
func NewClient(baseURL string, timeout time.Duration, log Logger, metrics Metrics) *Client {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		log:     log,
		metrics: metrics,
	}
}

// GetAvailableWeekdays возвращает дни недели, на которые провайдер принимает бронирования
func (c *Client) GetAvailableWeekdays(ctx context.Context, providerID string) ([]string, error) {
	query := url.Values{}
	query.Set("user_id", providerID)

	var resp AvailableWeekdaysResponse
	if err := c.get(ctx, endpointAvailableWeekdays, query, &resp); err != nil {
		return nil, err
	}

	return resp.AvailableWeekdays, nil
}

// GetAvailableSlots возвращает свободные слоты провайдера на дату (порядок сохраняется как есть)
func (c *Client) GetAvailableSlots(ctx context.Context, providerID, date string) ([]string, error) {
	query := url.Values{}
	query.Set("user_id", providerID)
	query.Set("date", date)

	var resp AvailableSlotsResponse
	if err := c.get(ctx, endpointAvailableSlots, query, &resp); err != nil {
		return nil, err
	}

	if resp.AvailableSlots == nil {
		return []string{}, nil
	}
	return resp.AvailableSlots, nil
}

// BookAppointment отправляет бронирование слота
func (c *Client) BookAppointment(ctx context.Context, req *BookAppointmentRequest) error {
	return c.post(ctx, endpointBookAppointment, req)
}

// CreateAppointment публикует недельную доступность провайдера
func (c *Client) CreateAppointment(ctx context.Context, req *CreateAppointmentRequest) error {
	return c.post(ctx, endpointCreateAppointment, req)
}

func (c *Client) get(ctx context.Context, endpoint string, query url.Values, out interface{}) error {
	target := fmt.Sprintf("%s/%s?%s", c.baseURL, endpoint, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.do(endpoint, req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		serverErr := readServerError(resp)
		if serverErr.IsClientError() {
			return fmt.Errorf("%w: %w", ErrProviderNotFound, serverErr)
		}
		return fmt.Errorf("%w: %w", ErrUnavailable, serverErr)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode %s response: %v", ErrInvalidResponse, endpoint, err)
	}

	return nil
}

func (c *Client) post(ctx context.Context, endpoint string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/"+endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.do(endpoint, req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	serverErr := readServerError(resp)
	c.log.Warn("Scheduler %s rejected: %v", endpoint, serverErr)
	return serverErr
}

func (c *Client) do(endpoint string, req *http.Request) (*http.Response, error) {
	started := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.ObserveSchedulerRequest(endpoint, "error", time.Since(started).Seconds())
		c.log.Error("Scheduler %s request failed: %v", endpoint, err)
		return nil, fmt.Errorf("%w: %s: %v", ErrUnavailable, endpoint, err)
	}

	c.metrics.ObserveSchedulerRequest(endpoint, strconv.Itoa(resp.StatusCode), time.Since(started).Seconds())
	return resp, nil
}

// readServerError достает detail из тела ошибки.
// FastAPI отдает detail строкой, а для ошибок валидации списком; список игнорируется
func readServerError(resp *http.Response) *ServerError {
	serverErr := &ServerError{StatusCode: resp.StatusCode}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
	if err != nil || len(raw) == 0 {
		return serverErr
	}

	var body struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(raw, &body); err != nil || len(body.Detail) == 0 {
		return serverErr
	}

	var detail string
	if err := json.Unmarshal(body.Detail, &detail); err == nil {
		serverErr.Detail = detail
	}

	return serverErr
}
