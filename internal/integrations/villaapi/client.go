package villaapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const maxErrorBodyLen = 512

// Options настройки клиента
type Options struct {
	Timeout            time.Duration
	BreakerMaxFailures uint32
	BreakerOpenTimeout time.Duration
}

// rawResponse ответ API до разбора конверта
type rawResponse struct {
	status int
	body   []byte
}

// Client клиент для работы с API виллы
type Client struct {
	baseURL    string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker[*rawResponse]
	metrics    Metrics
	log        Logger
}

// NewClient создает новый экземпляр клиента API виллы
func NewClient(baseURL string, opts Options, metrics Metrics, log Logger) *Client {
	if opts.BreakerMaxFailures == 0 {
		opts.BreakerMaxFailures = 5
	}
	if opts.BreakerOpenTimeout == 0 {
		opts.BreakerOpenTimeout = 30 * time.Second
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout:   opts.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		metrics: metrics,
		log:     log,
	}

	maxFailures := opts.BreakerMaxFailures
	c.breaker = gobreaker.NewCircuitBreaker[*rawResponse](gobreaker.Settings{
		Name:    "villa-api",
		Timeout: opts.BreakerOpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		// Отмена запроса вызывающей стороной не говорит о здоровье API
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("Circuit breaker %s: %s -> %s", name, from, to)
		},
	})

	return c
}

// ListRooms получает каталог номеров
func (c *Client) ListRooms(ctx context.Context) ([]Room, error) {
	env, err := c.call(ctx, "list_rooms", http.MethodGet, "/rooms", nil)
	if err != nil {
		return nil, err
	}

	var rooms []Room
	if err := decodeData(env, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

// CheckAvailability проверяет доступность номеров на даты проживания
func (c *Client) CheckAvailability(ctx context.Context, req AvailabilityRequest) ([]Room, error) {
	env, err := c.call(ctx, "check_availability", http.MethodPost, "/rooms/check-availability", req)
	if err != nil {
		return nil, err
	}

	var data availabilityData
	if err := decodeData(env, &data); err != nil {
		return nil, err
	}
	if data.AvailableRooms == nil {
		return []Room{}, nil
	}
	return data.AvailableRooms, nil
}

// ListServices получает каталог дополнительных услуг
func (c *Client) ListServices(ctx context.Context) ([]Service, error) {
	env, err := c.call(ctx, "list_services", http.MethodGet, "/services", nil)
	if err != nil {
		return nil, err
	}

	var services []Service
	if err := decodeData(env, &services); err != nil {
		return nil, err
	}
	return services, nil
}

// CreateBooking создаёт бронирование и возвращает выданный сервером код
func (c *Client) CreateBooking(ctx context.Context, req CreateBookingRequest) (*CreatedBooking, error) {
	env, err := c.call(ctx, "create_booking", http.MethodPost, "/bookings", req)
	if err != nil {
		return nil, err
	}

	var data bookingData[CreatedBooking]
	if err := decodeData(env, &data); err != nil {
		return nil, err
	}
	if data.Booking.BookingCode == "" {
		return nil, fmt.Errorf("%w: booking_code is missing", ErrInvalidResponse)
	}
	return &data.Booking, nil
}

// GetBooking получает детализацию бронирования по коду
func (c *Client) GetBooking(ctx context.Context, code string) (*BookingDetail, error) {
	env, err := c.call(ctx, "get_booking", http.MethodGet, "/bookings/"+url.PathEscape(code), nil)
	if err != nil {
		if errors.Is(err, ErrRejected) {
			return nil, fmt.Errorf("%w: %v", ErrBookingNotFound, err)
		}
		return nil, err
	}

	var data bookingData[BookingDetail]
	if err := decodeData(env, &data); err != nil {
		return nil, err
	}
	if data.Booking.BookingCode == "" {
		return nil, ErrBookingNotFound
	}
	return &data.Booking, nil
}

// call выполняет запрос через circuit breaker и разбирает конверт ответа
func (c *Client) call(ctx context.Context, operation, method, path string, payload interface{}) (*envelope, error) {
	start := time.Now()

	resp, err := c.breaker.Execute(func() (*rawResponse, error) {
		return c.do(ctx, method, path, payload)
	})
	if err != nil {
		c.observe(operation, "error", start)
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			c.log.Warn("VillaAPI %s %s: circuit breaker rejected request", method, path)
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		c.log.Error("VillaAPI %s %s failed: %v", method, path, err)
		return nil, err
	}

	env, err := c.parse(resp)
	if err != nil {
		c.observe(operation, outcomeFor(err), start)
		return nil, err
	}

	c.observe(operation, "ok", start)
	return env, nil
}

// do выполняет HTTP-запрос. Ошибки транспорта и 5xx считаются отказами для circuit breaker.
func (c *Client) do(ctx context.Context, method, path string, payload interface{}) (*rawResponse, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("%w: %v", ctxErr, err)
		}
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", ErrUnavailable, err)
	}

	if resp.StatusCode >= http.StatusInternalServerError {
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrUnavailable, resp.StatusCode, truncate(data))
	}

	return &rawResponse{status: resp.StatusCode, body: data}, nil
}

// parse разбирает конверт и статус-код ответа
func (c *Client) parse(resp *rawResponse) (*envelope, error) {
	var env envelope
	decodeErr := json.Unmarshal(resp.body, &env)

	// Обработка статус-кодов
	switch {
	case resp.status == http.StatusOK || resp.status == http.StatusCreated:
		// Продолжаем обработку
	case resp.status == http.StatusNotFound:
		return nil, &RejectedError{Status: resp.status, Message: "not found"}
	case resp.status == http.StatusBadRequest || resp.status == http.StatusUnprocessableEntity || resp.status == http.StatusConflict:
		if decodeErr == nil && env.errorMessage() != "" {
			return nil, &RejectedError{Status: resp.status, Message: env.errorMessage()}
		}
		return nil, &RejectedError{Status: resp.status, Message: fmt.Sprintf("status %d", resp.status)}
	default:
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.status, truncate(resp.body))
	}

	if decodeErr != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, decodeErr)
	}
	if !env.Success {
		msg := env.errorMessage()
		if msg == "" {
			msg = "success=false"
		}
		return nil, &RejectedError{Status: resp.status, Message: msg}
	}
	return &env, nil
}

func (c *Client) observe(operation, outcome string, start time.Time) {
	if c.metrics != nil {
		c.metrics.ObserveUpstream(operation, outcome, time.Since(start))
	}
}

func decodeData(env *envelope, v interface{}) error {
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return fmt.Errorf("%w: data is missing", ErrInvalidResponse)
	}
	if err := json.Unmarshal(env.Data, v); err != nil {
		return fmt.Errorf("%w: failed to decode data: %v", ErrInvalidResponse, err)
	}
	return nil
}

func outcomeFor(err error) string {
	if errors.Is(err, ErrRejected) {
		return "rejected"
	}
	return "error"
}

func truncate(body []byte) string {
	if len(body) > maxErrorBodyLen {
		return string(body[:maxErrorBodyLen]) + "..."
	}
	return string(body)
}
