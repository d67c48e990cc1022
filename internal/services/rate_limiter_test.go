package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"travelbot/pkg/cache"
)

func TestRateLimiter_FixedWindow(t *testing.T) {
	clock := newFakeClock()
	limiter := newRateLimiter(cache.NewMemoryStore(time.Minute), 10, time.Minute, zap.NewNop())
	limiter.now = clock.Now
	ctx := context.Background()

	for i := 1; i <= 10; i++ {
		assert.True(t, limiter.Admit(ctx, "10.0.0.1"), "request %d should be admitted", i)
	}
	assert.False(t, limiter.Admit(ctx, "10.0.0.1"), "11th request must be denied")
	assert.False(t, limiter.Admit(ctx, "10.0.0.1"), "denials do not extend or reset the window")

	assert.True(t, limiter.Admit(ctx, "10.0.0.2"), "clients are counted separately")

	clock.Advance(time.Minute)
	assert.True(t, limiter.Admit(ctx, "10.0.0.1"), "counter resets after the window")
}

func TestRateLimiter_WindowAnchoredAtFirstRequest(t *testing.T) {
	clock := newFakeClock()
	limiter := newRateLimiter(cache.NewMemoryStore(time.Minute), 2, time.Minute, zap.NewNop())
	limiter.now = clock.Now
	ctx := context.Background()

	assert.True(t, limiter.Admit(ctx, "c"))
	clock.Advance(50 * time.Second)
	assert.True(t, limiter.Admit(ctx, "c"))
	assert.False(t, limiter.Admit(ctx, "c"))

	clock.Advance(10 * time.Second)
	assert.True(t, limiter.Admit(ctx, "c"))
}

func TestRateLimiter_FailsOpenWhenCacheUnavailable(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	limiter := newRateLimiter(brokenStore{}, 1, time.Minute, zap.New(core))

	for i := 0; i < 5; i++ {
		assert.True(t, limiter.Admit(context.Background(), "c"))
	}
	assert.Equal(t, 5, logs.FilterMessage("rate limiter cache unavailable, admitting request").Len())
}
