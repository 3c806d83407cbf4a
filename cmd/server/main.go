package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Lixing-Zhang/goods-catalog/internal/config"
	"github.com/Lixing-Zhang/goods-catalog/internal/handlers"
	"github.com/Lixing-Zhang/goods-catalog/internal/observability"
	"github.com/Lixing-Zhang/goods-catalog/internal/repository"
	"github.com/Lixing-Zhang/goods-catalog/internal/server"
	"github.com/Lixing-Zhang/goods-catalog/internal/service"
	"github.com/Lixing-Zhang/goods-catalog/pkg/logger"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting goods catalog server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"products_file", cfg.Catalog.ProductsFile,
		"categories_file", cfg.Catalog.CategoriesFile,
		"api_prefix", cfg.Catalog.APIPrefix,
		"log_level", cfg.LogLevel,
	)

	metrics := observability.NewMetrics()

	// Initialize repositories
	productRepo := repository.NewFileProductRepository(cfg.Catalog.ProductsFile,
		repository.WithLoadHook(metrics.ObserveLoad))
	categoryRepo := repository.NewFileCategoryRepository(cfg.Catalog.CategoriesFile,
		repository.WithLoadHook(metrics.ObserveLoad))

	// Initialize services
	productService := service.NewProductService(productRepo, categoryRepo)

	// Initialize handlers
	productHandler := handlers.NewProductHandler(productService, log)
	imageHandler := handlers.NewImageHandler(cfg.Catalog.ImageDir, log)
	healthHandler := handlers.NewHealthHandler(map[string]handlers.HealthCheck{
		"products": func(ctx context.Context) error {
			_, err := productRepo.GetAll(ctx)
			return err
		},
		"categories": func(ctx context.Context) error {
			_, err := categoryRepo.GetAll(ctx)
			return err
		},
	}, log)

	router := handlers.NewRouter(handlers.RouterConfig{
		APIPrefix: cfg.Catalog.APIPrefix,
		Products:  productHandler,
		Images:    imageHandler,
		Metrics:   metrics,
		Logger:    log,
	})

	timeouts := server.Timeouts{
		Read:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		Write: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	public := server.New("public", cfg.Server.Addr(), router, timeouts, log)
	if err := public.Start(); err != nil {
		log.Error("server failed to start", "error", err)
		os.Exit(1)
	}

	var admin *server.Server
	if cfg.Admin.Enabled {
		adminAddr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Admin.Port)
		admin = server.New("admin", adminAddr,
			handlers.NewAdminRouter(healthHandler, metrics.Handler(), log), timeouts, log)
		if err := admin.Start(); err != nil {
			log.Error("admin server failed to start", "error", err)
			os.Exit(1)
		}
	}

	// Wait for interrupt signal or a serve failure on either listener
	quit, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	exitCode := 0
	if err := server.Wait(quit, public, admin); err != nil {
		log.Error("server stopped unexpectedly", "error", err)
		exitCode = 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if admin != nil {
		if err := admin.Shutdown(ctx); err != nil {
			log.Error("admin server forced to shutdown", "error", err)
			exitCode = 1
		}
	}
	if err := public.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		exitCode = 1
	}

	if exitCode != 0 {
		cancel()
		stop()
		os.Exit(exitCode)
	}
	log.Info("server stopped gracefully")
}
