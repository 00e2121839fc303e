package main

// @title AMap Gateway API
// @version 1.0.0
// @description HTTP шлюз к AMap (Gaode) WebService API: геокодирование, маршруты, поиск POI, погода, трафик.
// @description Подписывает запросы, журналирует вызовы и отдает метрики Prometheus.

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	_ "github.com/amap-gateway/docs/swagger"
	"github.com/amap-gateway/internal/config"
	httpDelivery "github.com/amap-gateway/internal/delivery/http"
	"github.com/amap-gateway/internal/delivery/http/handler"
	"github.com/amap-gateway/internal/domain/repository"
	"github.com/amap-gateway/internal/infrastructure/amap"
	"github.com/amap-gateway/internal/pkg/logger"
	"github.com/amap-gateway/internal/repository/postgres"
	"github.com/amap-gateway/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log, "amap-gateway")
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting AMap Gateway")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("amap_base_url", cfg.Amap.BaseURL),
		zap.Bool("amap_sign", cfg.Amap.Sign),
		zap.Bool("journal_enabled", cfg.Database.Enabled),
	)

	// 3. Metrics registry
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// 4. AMap client
	amapClient, err := amap.NewClient(&cfg.Amap, log, amap.WithMetrics(amap.NewMetrics(registry)))
	if err != nil {
		log.Fatal("Failed to create AMap client", zap.Error(err))
	}

	// 5. Call journal (optional)
	checks := map[string]httpDelivery.HealthChecker{}
	var journalRepo repository.JournalRepository
	var db *postgres.DB
	if cfg.Database.Enabled {
		db, err = postgres.New(&cfg.Database, log)
		if err != nil {
			log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		err = db.EnsureSchema(ctx)
		cancel()
		if err != nil {
			log.Fatal("Failed to prepare journal schema", zap.Error(err))
		}

		journalRepo = postgres.NewJournalRepository(db, log)
		checks["postgres"] = db
		log.Info("Call journal enabled")
	}

	// 6. Use cases and handlers
	amapUC := usecase.NewAmapUseCase(amapClient, journalRepo, log)

	amapHandler := handler.NewAmapHandler(amapUC, log)
	var journalHandler *handler.JournalHandler
	if amapUC.JournalEnabled() {
		journalHandler = handler.NewJournalHandler(amapUC, log)
	}

	// 7. Initialize HTTP Server
	server := httpDelivery.NewServer(cfg, log, registry, checks, amapHandler, journalHandler)

	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 8. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if db != nil {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL", zap.Error(err))
		}
	}

	log.Info("Server stopped successfully")
}
