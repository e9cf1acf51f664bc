package transport

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"garmentflow/pkg/retrier"
	"garmentflow/pkg/retrier/backoff_adapter"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 1 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

// тело ошибки обрезается, провайдеры иногда отдают html страницы
const maxErrorBody = 512

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Executor выполняет запрос к внешнему провайдеру с ретраями и метриками.
type Executor struct {
	service string
	client  HTTPClient
	retrier retrier.Retrier
}

func NewExecutor(service string, client HTTPClient) *Executor {
	return &Executor{
		service: service,
		client:  client,
		retrier: backoff_adapter.New(retrier.Config{
			InitialInterval: initialInterval,
			MaxInterval:     maxInterval,
			MaxElapsedTime:  maxElapsedTime,
			Randomization:   randomization,
			Multiplier:      multiplier,
			ShouldRetry:     IsRetryable,
		}),
	}
}

// Do собирает запрос заново на каждую попытку и передает успешный (2xx)
// ответ в decode. Тело ответа закрывается здесь.
func (e *Executor) Do(
	ctx context.Context,
	method string,
	newRequest func(ctx context.Context) (*http.Request, error),
	decode func(resp *http.Response) error,
) error {
	var attempt uint64
	start := time.Now()

	err := e.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++

		req, err := newRequest(ctx)
		if err != nil {
			return fmt.Errorf("build request: %w", err)
		}

		resp, err := e.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
			return &StatusError{Code: resp.StatusCode, Body: string(body)}
		}

		return decode(resp)
	})

	code := statusLabel(err)
	GatewayRequestDuration.WithLabelValues(e.service, method, code).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(e.service, method, code).Inc()
	}

	return err
}
