package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tradepost/marketplace-system/internal/api/handler"
	"github.com/tradepost/marketplace-system/internal/api/middleware"
	"github.com/tradepost/marketplace-system/internal/core/service"
	"github.com/tradepost/marketplace-system/internal/infrastructure/config"
	mongorepo "github.com/tradepost/marketplace-system/internal/infrastructure/db/mongo"
	redisrepo "github.com/tradepost/marketplace-system/internal/infrastructure/db/redis"
	"github.com/tradepost/marketplace-system/internal/infrastructure/notify"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("marketplace"))

	// --- Repositories ---
	userRepo := mongorepo.NewUserRepository(db)
	productRepo := mongorepo.NewProductRepository(db)
	messageRepo := mongorepo.NewMessageRepository(db)
	unreadCache := redisrepo.NewUnreadCountCache(rdb)

	// --- Services ---
	notifier := notify.NewEmailNotifier(log)
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL, log)
	productService := service.NewProductService(productRepo, log)
	messageService := service.NewMessageService(messageRepo, userRepo, productRepo, unreadCache, notifier, log)
	favoriteService := service.NewFavoriteService(userRepo, productRepo, log)
	adminService := service.NewAdminService(userRepo, productRepo, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	productHandler := handler.NewProductHandler(productService)
	messageHandler := handler.NewMessageHandler(messageService)
	favoriteHandler := handler.NewFavoriteHandler(favoriteService)
	adminHandler := handler.NewAdminHandler(adminService)

	authRequired := middleware.Auth(cfg.JWTSecret)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	v1 := e.Group("/v1")

	// --- Catalog reads: anonymous when PUBLIC_CATALOG is set ---
	if cfg.PublicCatalog {
		v1.GET("/products", productHandler.List)
		v1.GET("/products/:id", productHandler.Get)
	} else {
		v1.GET("/products", productHandler.List, authRequired)
		v1.GET("/products/:id", productHandler.Get, authRequired)
	}

	// --- Authenticated routes ---
	authed := v1.Group("", authRequired)

	authed.GET("/me", authHandler.Profile)
	authed.DELETE("/me", authHandler.DeleteAccount)

	authed.POST("/products", productHandler.Create)
	authed.PATCH("/products/:id", productHandler.Update)
	authed.POST("/products/:id/active", productHandler.SetActive)
	authed.DELETE("/products/:id", productHandler.Delete)

	authed.POST("/messages", messageHandler.Send)
	authed.GET("/messages", messageHandler.Inbox)
	authed.GET("/messages/unread", messageHandler.UnreadCount)
	authed.POST("/messages/:id/read", messageHandler.MarkRead)
	authed.GET("/products/:id/messages", messageHandler.ListForProduct)
	authed.GET("/conversations/:userId", messageHandler.Conversation)

	authed.GET("/favorites", favoriteHandler.List)
	authed.POST("/favorites/:productId", favoriteHandler.Add)
	authed.DELETE("/favorites/:productId", favoriteHandler.Remove)

	// --- Admin routes ---
	admin := v1.Group("/admin", authRequired, middleware.AdminOnly())

	admin.GET("/stats", adminHandler.Stats)
	admin.GET("/activity", adminHandler.Activity)
	admin.GET("/users", adminHandler.ListUsers)
	admin.GET("/products", adminHandler.ListProducts)
	admin.DELETE("/users/:id", adminHandler.DeleteUser)
	admin.POST("/users/:id/toggle-admin", adminHandler.ToggleUserAdmin)
	admin.POST("/products/:id/toggle-active", adminHandler.ToggleProductActive)

	return e
}
