package rate_limiter_evict

import (
	"context"
	"time"

	"garmentflow/pkg/logger"
)

// RateLimiterEvict выбрасывает bucket'ы клиентов, которые давно не заходили,
// иначе карта лимитера растет с каждым новым адресом.
type RateLimiterEvict struct {
	log      handlerLogger
	limiter  Limiter
	interval time.Duration
}

func NewRateLimiterEvict(log handlerLogger, limiter Limiter, interval time.Duration) *RateLimiterEvict {
	return &RateLimiterEvict{
		log:      log,
		limiter:  limiter,
		interval: interval,
	}
}

func (r *RateLimiterEvict) TTL() time.Duration {
	return r.interval
}

func (r *RateLimiterEvict) Do(context.Context) error {
	if removed := r.limiter.Evict(); removed > 0 {
		r.log.With(
			logger.NewField("evicted", removed),
			logger.NewField("active", r.limiter.Len()),
		).Debug("rate limiter eviction")
	}
	return nil
}

func (r *RateLimiterEvict) Info() string {
	return "rate limiter eviction"
}
