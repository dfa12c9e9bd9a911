package main

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"userhub/docs"
	"userhub/internal/auth"
	"userhub/internal/cache"
	"userhub/internal/config"
	"userhub/internal/db"
	"userhub/internal/handler"
	"userhub/internal/model"
	"userhub/internal/repository"
	"userhub/internal/router"
	"userhub/internal/service"
)

// @title User Auth API
// @version 1.0
// @description User registration/login with JWT bearer tokens and user management.
// @host localhost:5000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}
	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	ctx := context.Background()
	database, err := db.NewMongo(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		logger.Fatal("database init", zap.Error(err))
	}
	if err := db.EnsureUserIndexes(ctx, database.Collection(model.CollectionName)); err != nil {
		logger.Fatal("ensure indexes", zap.Error(err))
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	userRepo := repository.NewUserRepository(database)
	hasher := auth.NewPasswordHasher()
	tokens := auth.NewJWTService(cfg.JWTSecret)

	authService := service.NewAuthService(userRepo, hasher, tokens)
	userService := service.NewUserService(userRepo, hasher, cacheClient)

	authHandler := handler.NewAuthHandler(authService, logger)
	userHandler := handler.NewUserHandler(userService, logger)

	e := echo.New()
	e.Use(middleware.RequestID())

	router.Register(e, tokens, authHandler, userHandler)

	logger.Info("starting server", zap.String("port", cfg.ServerPort))
	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server start", zap.Error(err))
	}
}
