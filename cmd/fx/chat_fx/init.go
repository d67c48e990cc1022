package chat_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"travelbot/internal/config"
	"travelbot/internal/repositories"
	"travelbot/internal/services"
	"travelbot/pkg/cache"
)

var Module = fx.Provide(
	provideChatHistoryRepo,
	provideSessionStore,
	services.NewRateLimiter,
	services.NewInputValidator,
	services.NewSessionService,
	services.NewHistoryService,
	services.NewChatService,
)

func provideChatHistoryRepo(db *gorm.DB) repositories.ChatHistoryRepository {
	return repositories.NewChatHistoryRepository(db)
}

// provideSessionStore shares Redis when it is configured. Without it,
// sessions go to the database so they outlive a restart.
func provideSessionStore(cfg *config.Config, store cache.Store, db *gorm.DB, log *zap.Logger) services.SessionStore {
	if cfg.RedisURL != "" {
		return store
	}
	log.Info("storing chat sessions in the database")
	return repositories.NewCacheEntryStore(db)
}
