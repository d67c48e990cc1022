package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"travelbot/internal/api/controllers"
	"travelbot/internal/config"
	"travelbot/pkg/middleware"
	"travelbot/pkg/utils"
)

func NewRouter(
	cfg *config.Config,
	logger *zap.Logger,
	tokens *utils.TokenIssuer,
	chat *controllers.ChatController,
	catalog *controllers.CatalogController,
	account *controllers.AccountController,
	health *controllers.HealthController,
) *gin.Engine {
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.Cors(cfg.AllowedOrigins))

	RegisterRoutes(r, tokens, chat, catalog, account, health)
	return r
}

func RegisterRoutes(r *gin.Engine,
	tokens *utils.TokenIssuer,
	chat *controllers.ChatController,
	catalog *controllers.CatalogController,
	account *controllers.AccountController,
	health *controllers.HealthController) {

	r.GET("/health", health.Health)

	chatGroup := r.Group("/chat", middleware.OptionalJWTMiddleware(tokens))
	chatGroup.POST("", chat.Chat)
	chatGroup.GET("/history", chat.History)
	chatGroup.DELETE("/history", chat.ClearHistory)

	r.GET("/destinations/search", catalog.SearchDestinations)
	r.GET("/destinations/:id", catalog.GetDestination)
	r.GET("/hotels/search", catalog.SearchHotels)
	r.GET("/restaurants/search", catalog.SearchRestaurants)
	r.GET("/attractions/search", catalog.SearchAttractions)

	accounts := r.Group("/accounts")
	accounts.POST("/register", account.Register)
	accounts.POST("/login", account.Login)

	authed := accounts.Group("", middleware.JWTAuthMiddleware(tokens))
	authed.GET("/profile", account.GetProfile)
	authed.PUT("/profile", account.UpdateProfile)
	authed.GET("/history", account.ChatHistory)
}
