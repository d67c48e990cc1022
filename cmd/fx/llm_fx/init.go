package llm_fx

import (
	"context"
	"fmt"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"travelbot/internal/config"
	"travelbot/pkg/llm"
)

var Module = fx.Provide(ProvideChatCompleter)

// ProvideChatCompleter picks the backend named by LLM_PROVIDER.
func ProvideChatCompleter(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) (llm.ChatCompleter, error) {
	log.Info("initializing language model client",
		zap.String("provider", cfg.LLMProvider), zap.String("model", cfg.ActiveModel()))

	switch cfg.LLMProvider {
	case "openai":
		return llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL), nil
	case "gemini":
		client, err := llm.NewGeminiClient(context.Background(), cfg.GeminiAPIKey)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return client.Close()
			},
		})
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s. Use 'openai' or 'gemini'", cfg.LLMProvider)
	}
}
