package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"restaurant-pos/config"
	"restaurant-pos/handlers"
	"restaurant-pos/inventory"
	"restaurant-pos/middleware"
	"restaurant-pos/routes"
	"restaurant-pos/services"
	"restaurant-pos/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("config: " + err.Error())
	}

	logger, err := config.NewLogger(cfg.AppEnv)
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer logger.Sync()

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	} else if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	seed := store.Seed{}
	if cfg.Seed {
		seed = config.DefaultSeed(time.Now())
	}

	var st store.Store
	switch cfg.Storage {
	case config.StorageMemory:
		st = store.NewMemory(seed)
		logger.Warn("using in-memory storage, data is lost on restart")
	default:
		db, err := config.OpenDB(cfg.DBPath)
		if err != nil {
			logger.Fatal("Failed to open database", zap.Error(err))
		}
		st = store.NewGorm(db, seed)
		logger.Info("Database connected and migrated", zap.String("path", cfg.DBPath))
	}

	if cfg.Seed {
		if err := config.SeedUsers(context.Background(), st, logger); err != nil {
			logger.Fatal("Failed to seed staff accounts", zap.Error(err))
		}
	}

	customers := services.NewCustomerService(st, logger)
	h := &handlers.Handler{
		Auth:      middleware.NewAuth(cfg.JWTSecret, cfg.TokenTTL, st),
		Users:     services.NewAuthService(st, logger),
		Menu:      services.NewMenuService(st, st, logger),
		Inventory: services.NewInventoryService(st, logger),
		Orders:    services.NewOrderService(st, customers, inventory.NewEngine(logger), logger),
		Customers: customers,
		Settings:  services.NewSettingsService(st, logger),
		Logger:    logger,
	}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.RequestLogger(logger), middleware.CORS())
	routes.SetupRoutes(r, h)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Restaurant POS API starting", zap.String("port", cfg.Port), zap.String("storage", cfg.Storage))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	logger.Info("Server stopped gracefully")
}
