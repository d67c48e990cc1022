package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"travelbot/cmd/fx/account_fx"
	"travelbot/cmd/fx/cache_fx"
	"travelbot/cmd/fx/catalog_fx"
	"travelbot/cmd/fx/chat_fx"
	"travelbot/cmd/fx/config_fx"
	"travelbot/cmd/fx/controllers_fx"
	"travelbot/cmd/fx/db_fx"
	"travelbot/cmd/fx/llm_fx"
	"travelbot/cmd/fx/logger_fx"
	"travelbot/internal/config"
)

func main() {
	app := fx.New(
		config_fx.Module,
		logger_fx.Module,
		logger_fx.EventLogger,
		db_fx.Module,
		cache_fx.Module,
		llm_fx.Module,
		catalog_fx.Module,
		chat_fx.Module,
		account_fx.Module,
		controllers_fx.Module,

		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
		// Must exceed the model timeout.
		WriteTimeout: cfg.AITimeout + 15*time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			log.Info("starting HTTP server", zap.String("addr", srv.Addr), zap.String("env", cfg.Env))
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal("HTTP server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}
