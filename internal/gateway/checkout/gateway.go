package checkout

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"garmentflow/internal/entities"
	"garmentflow/internal/gateway/transport"
	"garmentflow/internal/pkg/config"
	"garmentflow/internal/service/payment"
)

const (
	serviceName = "checkout-provider"

	sessionsPath = "/v1/checkout/sessions"

	// провайдер подставляет id сессии в success url сам
	sessionIDPlaceholder = "session_id={CHECKOUT_SESSION_ID}"
)

type CheckoutGateway struct {
	executor   executor
	baseURL    string
	secretKey  string
	successURL string
	cancelURL  string
}

func New(client transport.HTTPClient, cfg *config.Checkout) *CheckoutGateway {
	return &CheckoutGateway{
		executor:   transport.NewExecutor(serviceName, client),
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		secretKey:  cfg.SecretKey,
		successURL: withSessionPlaceholder(cfg.SuccessURL),
		cancelURL:  cfg.CancelURL,
	}
}

func (g *CheckoutGateway) CreateSession(ctx context.Context, request entities.CheckoutRequest) (*entities.ProviderCheckout, error) {
	body := toSessionForm(request, g.successURL, g.cancelURL).Encode()
	key := idempotencyKey(request.OrderID)

	var resp sessionResponse
	err := g.executor.Do(ctx, "CreateSession",
		func(ctx context.Context) (*http.Request, error) {
			req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+sessionsPath, strings.NewReader(body))
			if err != nil {
				return nil, err
			}
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			// один ключ на все попытки: провайдер не заведет вторую сессию после обрыва ответа
			req.Header.Set("Idempotency-Key", key)
			g.authorize(req)
			return req, nil
		},
		decodeJSON(&resp),
	)
	if err != nil {
		return nil, translateError(fmt.Errorf("gateway checkout, create session for order %s: %w", request.OrderID, err))
	}

	if resp.ID == "" || resp.URL == "" {
		return nil, fmt.Errorf("%w: provider returned incomplete session", payment.ErrUpstreamUnavailable)
	}

	return toProviderCheckout(&resp), nil
}

func (g *CheckoutGateway) GetSession(ctx context.Context, sessionID string) (*entities.ProviderSessionStatus, error) {
	endpoint := g.baseURL + sessionsPath + "/" + url.PathEscape(sessionID)

	var resp sessionResponse
	err := g.executor.Do(ctx, "GetSession",
		func(ctx context.Context) (*http.Request, error) {
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
			if err != nil {
				return nil, err
			}
			g.authorize(req)
			return req, nil
		},
		decodeJSON(&resp),
	)
	if err != nil {
		if transport.IsStatus(err, http.StatusNotFound) {
			return nil, fmt.Errorf("%w: %s", payment.ErrSessionNotFound, sessionID)
		}
		return nil, translateError(fmt.Errorf("gateway checkout, get session %s: %w", sessionID, err))
	}

	return toSessionStatus(&resp), nil
}

func (g *CheckoutGateway) authorize(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+g.secretKey)
}

// idempotencyKey привязан к заказу и к вызову: после истечения сессии
// следующий вызов получает новый ключ и новую сессию.
func idempotencyKey(orderID string) string {
	return "checkout-" + orderID + "-" + uuid.NewString()
}

func decodeJSON(dst *sessionResponse) func(resp *http.Response) error {
	return func(resp *http.Response) error {
		if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
			return fmt.Errorf("decode session: %w", err)
		}
		return nil
	}
}

// translateError помечает недоступность провайдера, остальное остается внутренней ошибкой.
func translateError(err error) error {
	if transport.IsRetryable(err) {
		return fmt.Errorf("%w: %w", payment.ErrUpstreamUnavailable, err)
	}
	return err
}

func withSessionPlaceholder(successURL string) string {
	if successURL == "" || strings.Contains(successURL, "{CHECKOUT_SESSION_ID}") {
		return successURL
	}
	if strings.Contains(successURL, "?") {
		return successURL + "&" + sessionIDPlaceholder
	}
	return successURL + "?" + sessionIDPlaceholder
}
