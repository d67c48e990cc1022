package services

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"
	"travelbot/internal/config"
	"travelbot/pkg/cache"
)

const rateLimitKeyPrefix = "ratelimit:"

type RateLimiterInterface interface {
	// Admit reports whether clientKey may make another request in the
	// current window, counting the request when it does.
	Admit(ctx context.Context, clientKey string) bool
}

type rateCounter struct {
	Count     int       `json:"count"`
	ExpiresAt time.Time `json:"expires_at"`
}

// RateLimiter is a fixed-window counter kept in the shared cache. Reads
// and writes are separate calls, so concurrent requests from one client
// may under-count.
type RateLimiter struct {
	store  cache.Store
	limit  int
	window time.Duration
	logger *zap.Logger
	now    func() time.Time
}

func NewRateLimiter(store cache.Store, cfg *config.Config, logger *zap.Logger) RateLimiterInterface {
	return newRateLimiter(store, cfg.ChatRateLimit, cfg.ChatRateWindow, logger)
}

func newRateLimiter(store cache.Store, limit int, window time.Duration, logger *zap.Logger) *RateLimiter {
	return &RateLimiter{
		store:  store,
		limit:  limit,
		window: window,
		logger: logger,
		now:    time.Now,
	}
}

func (r *RateLimiter) Admit(ctx context.Context, clientKey string) bool {
	key := rateLimitKeyPrefix + clientKey
	now := r.now()

	counter := rateCounter{ExpiresAt: now.Add(r.window)}

	raw, found, err := r.store.Get(ctx, key)
	if err != nil {
		r.logger.Warn("rate limiter cache unavailable, admitting request",
			zap.String("client", clientKey), zap.Error(err))
		return true
	}
	if found {
		var stored rateCounter
		if err := json.Unmarshal([]byte(raw), &stored); err != nil {
			r.logger.Warn("discarding malformed rate counter", zap.String("client", clientKey), zap.Error(err))
		} else if now.Before(stored.ExpiresAt) {
			counter = stored
		}
	}

	if counter.Count >= r.limit {
		return false
	}

	counter.Count++
	payload, _ := json.Marshal(counter)
	if err := r.store.Set(ctx, key, string(payload), counter.ExpiresAt.Sub(now)); err != nil {
		r.logger.Warn("failed to persist rate counter", zap.String("client", clientKey), zap.Error(err))
	}

	return true
}
