package config_fx

import (
	"go.uber.org/fx"
	"travelbot/internal/config"
)

var Module = fx.Provide(config.Load)
