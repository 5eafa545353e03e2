package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/rabgonzalez/GameSide/internal/config"
	"github.com/rabgonzalez/GameSide/internal/db"
	"github.com/rabgonzalez/GameSide/internal/middleware"
	"github.com/rabgonzalez/GameSide/internal/repository"
	"github.com/rabgonzalez/GameSide/internal/services"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("load config", "error", err)
		os.Exit(1)
	}

	// ======================
	// INFRA
	// ======================
	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("connect database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := db.EnsureSchema(ctx, pool); err != nil {
		logger.Error("ensure schema", "error", err)
		os.Exit(1)
	}

	// ======================
	// REPOSITORIES
	// ======================
	categoryRepo := repository.NewCategoryRepository(pool)
	platformRepo := repository.NewPlatformRepository(pool)
	gameRepo := repository.NewGameRepository(pool)
	reviewRepo := repository.NewReviewRepository(pool, gameRepo)
	userRepo := repository.NewUserRepository(pool)
	tokenRepo := repository.NewTokenRepository(pool)
	orderRepo := repository.NewOrderRepository(pool, gameRepo)

	// ======================
	// SERVICES
	// ======================
	authSvc := services.NewAuthService(userRepo, tokenRepo)
	categorySvc := services.NewCategoryService(categoryRepo)
	platformSvc := services.NewPlatformService(platformRepo)
	gameSvc := services.NewGameService(gameRepo)
	reviewSvc := services.NewReviewService(reviewRepo, gameRepo)
	orderSvc := services.NewOrderService(orderRepo, gameRepo)
	paymentSvc := services.NewPaymentService(orderRepo)

	// ======================
	// ECHO
	// ======================
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = httpErrorHandler
	e.Use(echomw.Recover())
	e.Use(middleware.RequestLogger(logger))

	api := e.Group("/api")

	registerAuthRoutes(api, authSvc)
	registerCategoryRoutes(api, categorySvc, cfg.MediaURL)
	registerPlatformRoutes(api, platformSvc, cfg.MediaURL)
	registerGameRoutes(api, gameSvc, cfg.MediaURL)
	registerReviewRoutes(api, reviewSvc, authSvc, cfg.MediaURL)
	registerOrderRoutes(api, orderSvc, paymentSvc, authSvc, cfg.MediaURL)

	logger.Info("starting server", "port", cfg.Port)
	if err := e.Start(":" + cfg.Port); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
