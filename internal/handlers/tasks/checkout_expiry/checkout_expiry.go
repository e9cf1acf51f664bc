package checkout_expiry

import (
	"context"
	"time"

	"garmentflow/pkg/logger"
)

// CheckoutExpiry закрывает открытые checkout-сессии с истекшим сроком,
// чтобы по ним больше нельзя было подтвердить оплату.
type CheckoutExpiry struct {
	log      handlerLogger
	service  Service
	interval time.Duration
}

func NewCheckoutExpiry(log handlerLogger, service Service, interval time.Duration) *CheckoutExpiry {
	return &CheckoutExpiry{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (c *CheckoutExpiry) TTL() time.Duration {
	return c.interval
}

func (c *CheckoutExpiry) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, c.interval)
	defer cancel()

	expired, err := c.service.ExpireSessions(ctxWithTimeout)

	if expired > 0 {
		c.log.With(
			logger.NewField("expired_sessions", expired),
		).Info("checkout expiry")
	}

	return err
}

func (c *CheckoutExpiry) Info() string {
	return "checkout expiry"
}
