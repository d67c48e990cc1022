package controllers_fx

import (
	"go.uber.org/fx"
	"travelbot/internal/api"
	"travelbot/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewChatController),
	fx.Provide(controllers.NewCatalogController),
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewHealthController),
	fx.Provide(api.NewRouter))
