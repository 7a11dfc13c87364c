package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "pracademy/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"pracademy/internal/cache"
	"pracademy/internal/config"
	"pracademy/internal/db"
	"pracademy/internal/handler"
	"pracademy/internal/model"
	"pracademy/internal/repository"
	"pracademy/internal/router"
	"pracademy/internal/service"
	"pracademy/internal/web"
)

// @title PartyRock Academy API
// @version 1.0
// @description Korean-language education site API: tutorial catalog, app gallery, learning progress, shared-key admin surface.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey AdminKey
// @in header
// @name X-Admin-Key
// @description Shared admin secret; required on every mutating route.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Tutorial{},
		&model.AppGalleryItem{},
		&model.UserProgress{},
		&model.Setting{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	// Initialize repositories
	tutorialRepo := repository.NewTutorialRepository(gormDB)
	appRepo := repository.NewAppRepository(gormDB)
	userRepo := repository.NewUserRepository(gormDB)
	progressRepo := repository.NewProgressRepository(gormDB)
	settingRepo := repository.NewSettingRepository(gormDB)

	// The admin secret must arrive from the environment on first boot;
	// afterwards the settings row is authoritative.
	ctx := context.Background()
	if _, err := settingRepo.Get(ctx); err != nil {
		if cfg.AdminKey == "" {
			log.Fatal("ADMIN_KEY must be set for the first start")
		}
		if err := settingRepo.EnsureAdminKey(ctx, cfg.AdminKey); err != nil {
			log.Fatalf("seed admin key: %v", err)
		}
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize services
	tutorialService := service.NewTutorialService(tutorialRepo)
	appService := service.NewAppService(appRepo, cacheClient)
	progressService := service.NewProgressService(progressRepo, userRepo, tutorialRepo)
	authService := service.NewAuthService(settingRepo)
	statsService := service.NewStatsService(tutorialRepo, appRepo)

	// Initialize handlers
	tutorialHandler := handler.NewTutorialHandler(tutorialService)
	appHandler := handler.NewAppHandler(appService)
	progressHandler := handler.NewProgressHandler(progressService)
	authHandler := handler.NewAuthHandler(authService)
	adminHandler := handler.NewAdminHandler(statsService)

	// Register API routes and the server-rendered pages
	router.Register(
		e,
		cfg,
		authService,
		tutorialHandler,
		appHandler,
		progressHandler,
		authHandler,
		adminHandler,
	)
	web.NewHandler(tutorialService, appService).Register(e)

	addr := ":" + cfg.ServerPort
	go func() {
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("shutdown: %v", err)
	}
}
