package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DevJWTSecret signs tokens when JWT_SECRET is unset in development. Any
// other environment refuses to start with it.
const DevJWTSecret = "dev-only-insecure-jwt-secret"

var ErrInsecureJWTSecret = errors.New("JWT_SECRET must be set to a private value outside development")

// Config holds every externally supplied setting. It is resolved and
// validated once at startup; the rest of the app only reads it.
type Config struct {
	// Server
	Port           string `validate:"required,numeric"`
	Env            string `validate:"oneof=development production test"`
	AllowedOrigins []string

	// Storage
	DatabaseURL string
	SQLitePath  string `validate:"required_without=DatabaseURL"`
	RedisURL    string

	// AI provider
	LLMProvider   string        `validate:"oneof=openai gemini"`
	OpenAIAPIKey  string        `validate:"required_if=LLMProvider openai"`
	OpenAIBaseURL string        `validate:"omitempty,url"`
	OpenAIModel   string        `validate:"required_if=LLMProvider openai"`
	GeminiAPIKey  string        `validate:"required_if=LLMProvider gemini"`
	GeminiModel   string        `validate:"required_if=LLMProvider gemini"`
	MaxTokens     int           `validate:"min=1"`
	Temperature   float32       `validate:"min=0,max=2"`
	AITimeout     time.Duration `validate:"min=1s"`

	// Chat pipeline
	ChatRateLimit    int           `validate:"min=1"`
	ChatRateWindow   time.Duration `validate:"min=1s"`
	CacheTimeout     time.Duration `validate:"min=1s"`
	MaxMessageLength int           `validate:"min=1"`
	MaxChatHistory   int           `validate:"min=1"`

	// Sessions and auth
	JWTSecret  string        `validate:"required"`
	SessionTTL time.Duration `validate:"min=1s"`
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ActiveModel is the model id for the configured provider.
func (c *Config) ActiveModel() string {
	if c.LLMProvider == "gemini" {
		return c.GeminiModel
	}
	return c.OpenAIModel
}

// Load reads .env (if present) and the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	cfg := &Config{
		Port:           v.GetString("PORT"),
		Env:            strings.ToLower(v.GetString("APP_ENV")),
		AllowedOrigins: splitCSV(v.GetString("ALLOWED_ORIGINS")),

		DatabaseURL: v.GetString("DATABASE_URL"),
		SQLitePath:  v.GetString("SQLITE_PATH"),
		RedisURL:    v.GetString("REDIS_URL"),

		LLMProvider:   strings.ToLower(v.GetString("LLM_PROVIDER")),
		OpenAIAPIKey:  v.GetString("OPENAI_API_KEY"),
		OpenAIBaseURL: v.GetString("OPENAI_BASE_URL"),
		OpenAIModel:   v.GetString("OPENAI_MODEL"),
		GeminiAPIKey:  v.GetString("GEMINI_API_KEY"),
		GeminiModel:   v.GetString("GEMINI_MODEL"),
		MaxTokens:     v.GetInt("MAX_TOKENS"),
		Temperature:   float32(v.GetFloat64("TEMPERATURE")),
		AITimeout:     seconds(v, "AI_TIMEOUT"),

		ChatRateLimit:    v.GetInt("CHAT_RATE_LIMIT"),
		ChatRateWindow:   seconds(v, "CHAT_RATE_WINDOW"),
		CacheTimeout:     seconds(v, "CACHE_TIMEOUT"),
		MaxMessageLength: v.GetInt("MAX_MESSAGE_LENGTH"),
		MaxChatHistory:   v.GetInt("MAX_CHAT_HISTORY"),

		JWTSecret:  v.GetString("JWT_SECRET"),
		SessionTTL: seconds(v, "SESSION_TTL"),
	}

	if cfg.JWTSecret == "" && cfg.IsDevelopment() {
		cfg.JWTSecret = DevJWTSecret
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if !cfg.IsDevelopment() && cfg.JWTSecret == DevJWTSecret {
		return nil, fmt.Errorf("invalid configuration: %w", ErrInsecureJWTSecret)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000,http://127.0.0.1:3000")

	v.SetDefault("SQLITE_PATH", "travelbot.db")

	v.SetDefault("LLM_PROVIDER", "openai")
	v.SetDefault("OPENAI_MODEL", "gpt-4o")
	v.SetDefault("GEMINI_MODEL", "gemini-1.5-flash")
	v.SetDefault("MAX_TOKENS", 800)
	v.SetDefault("TEMPERATURE", 0.7)
	v.SetDefault("AI_TIMEOUT", 30)

	v.SetDefault("CHAT_RATE_LIMIT", 10)
	v.SetDefault("CHAT_RATE_WINDOW", 60)
	v.SetDefault("CACHE_TIMEOUT", 3600)
	v.SetDefault("MAX_MESSAGE_LENGTH", 1000)
	v.SetDefault("MAX_CHAT_HISTORY", 100)

	v.SetDefault("SESSION_TTL", 1209600) // two weeks
}

// seconds reads an integer number of seconds.
func seconds(v *viper.Viper, key string) time.Duration {
	return time.Duration(v.GetInt64(key)) * time.Second
}

func splitCSV(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
