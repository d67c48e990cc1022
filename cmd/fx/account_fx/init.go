package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"travelbot/internal/config"
	"travelbot/internal/repositories"
	"travelbot/internal/services"
	"travelbot/pkg/utils"
)

var Module = fx.Provide(
	services.NewAccountService, provideAccountRepo, provideTokenIssuer)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideTokenIssuer(cfg *config.Config) *utils.TokenIssuer {
	return utils.NewTokenIssuer(cfg.JWTSecret)
}
