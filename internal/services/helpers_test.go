package services

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"
	"travelbot/internal/config"
	"travelbot/pkg/cache"
	"travelbot/pkg/llm"
)

func testConfig() *config.Config {
	return &config.Config{
		LLMProvider:      "openai",
		OpenAIModel:      "gpt-4o",
		MaxTokens:        800,
		Temperature:      0.7,
		AITimeout:        2 * time.Second,
		ChatRateLimit:    10,
		ChatRateWindow:   time.Minute,
		CacheTimeout:     time.Hour,
		MaxMessageLength: 1000,
		MaxChatHistory:   100,
		SessionTTL:       time.Hour,
	}
}

// brokenStore fails every call like an unreachable Redis.
type brokenStore struct{}

func (brokenStore) Get(context.Context, string) (string, bool, error) {
	return "", false, cache.ErrUnavailable
}

func (brokenStore) Set(context.Context, string, string, time.Duration) error {
	return cache.ErrUnavailable
}

func (brokenStore) Delete(context.Context, string) error {
	return cache.ErrUnavailable
}

type MockChatCompleter struct {
	mock.Mock
}

func (m *MockChatCompleter) Complete(ctx context.Context, req llm.CompletionRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *MockChatCompleter) Name() string {
	return "mock"
}

// fakeClock advances only when told to.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
