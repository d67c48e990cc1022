package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "openai", cfg.LLMProvider)
	assert.Equal(t, "gpt-4o", cfg.OpenAIModel)
	assert.Equal(t, 800, cfg.MaxTokens)
	assert.InDelta(t, 0.7, cfg.Temperature, 0.0001)
	assert.Equal(t, 30*time.Second, cfg.AITimeout)
	assert.Equal(t, 10, cfg.ChatRateLimit)
	assert.Equal(t, time.Minute, cfg.ChatRateWindow)
	assert.Equal(t, time.Hour, cfg.CacheTimeout)
	assert.Equal(t, 1000, cfg.MaxMessageLength)
	assert.Equal(t, 100, cfg.MaxChatHistory)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, DevJWTSecret, cfg.JWTSecret)
}

func TestLoad_JWTSecretOutsideDevelopment(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("APP_ENV", "production")

	t.Run("unset", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("development placeholder", func(t *testing.T) {
		t.Setenv("JWT_SECRET", DevJWTSecret)
		_, err := Load()
		assert.ErrorIs(t, err, ErrInsecureJWTSecret)
	})

	t.Run("private value", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "s3cr3t-from-vault")
		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "s3cr3t-from-vault", cfg.JWTSecret)
	})
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("CHAT_RATE_LIMIT", "25")
	t.Setenv("CACHE_TIMEOUT", "120")
	t.Setenv("MAX_MESSAGE_LENGTH", "500")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example ,")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 25, cfg.ChatRateLimit)
	assert.Equal(t, 2*time.Minute, cfg.CacheTimeout)
	assert.Equal(t, 500, cfg.MaxMessageLength)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
}

func TestLoad_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"openai without key", map[string]string{"LLM_PROVIDER": "openai", "OPENAI_API_KEY": ""}},
		{"gemini without key", map[string]string{"LLM_PROVIDER": "gemini", "GEMINI_API_KEY": ""}},
		{"unknown provider", map[string]string{"LLM_PROVIDER": "llama", "OPENAI_API_KEY": "sk"}},
		{"zero rate limit", map[string]string{"OPENAI_API_KEY": "sk", "CHAT_RATE_LIMIT": "0"}},
		{"zero ai timeout", map[string]string{"OPENAI_API_KEY": "sk", "AI_TIMEOUT": "0"}},
		{"bad env", map[string]string{"OPENAI_API_KEY": "sk", "APP_ENV": "staging"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoad_GeminiProvider(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "Gemini")
	t.Setenv("GEMINI_API_KEY", "g-key")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "gemini", cfg.LLMProvider)
	assert.Equal(t, "gemini-1.5-flash", cfg.GeminiModel)
	assert.Equal(t, "gemini-1.5-flash", cfg.ActiveModel())
}

func TestSplitCSV(t *testing.T) {
	assert.Nil(t, splitCSV(""))
	assert.Equal(t, []string{"a", "b"}, splitCSV(" a,,b "))
}
