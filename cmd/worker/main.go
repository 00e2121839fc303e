package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/amap-gateway/internal/config"
	"github.com/amap-gateway/internal/domain/repository"
	"github.com/amap-gateway/internal/infrastructure/amap"
	"github.com/amap-gateway/internal/pkg/logger"
	"github.com/amap-gateway/internal/repository/postgres"
	redisRepo "github.com/amap-gateway/internal/repository/redis"
	"github.com/amap-gateway/internal/usecase"
	"github.com/amap-gateway/internal/worker"
	"github.com/amap-gateway/internal/worker/geocode"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Check if worker is enabled
	if !cfg.Worker.Enabled {
		fmt.Println("Worker is disabled in configuration. Set WORKER_ENABLED=true to enable.")
		os.Exit(0)
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log, "amap-geocode-worker")
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting AMap Geocode Worker")
	log.Info("Configuration loaded",
		zap.String("consumer_group", cfg.Worker.ConsumerGroup),
		zap.Int("batch_size", cfg.Worker.BatchSize),
		zap.Duration("idle_sleep", cfg.Worker.IdleSleep))

	// 3. AMap client
	amapClient, err := amap.NewClient(&cfg.Amap, log)
	if err != nil {
		log.Fatal("Failed to create AMap client", zap.Error(err))
	}

	// 4. Connect to Redis
	redisClient, err := redisRepo.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 5. Call journal (optional)
	var journalRepo repository.JournalRepository
	if cfg.Database.Enabled {
		db, err := postgres.New(&cfg.Database, log)
		if err != nil {
			log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
		}
		defer func() {
			if err := db.Close(); err != nil {
				log.Error("Failed to close PostgreSQL connection", zap.Error(err))
			}
		}()
		journalRepo = postgres.NewJournalRepository(db, log)
	}

	// 6. Use cases
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)
	amapUC := usecase.NewAmapUseCase(amapClient, journalRepo, log)
	geocodeUC := usecase.NewGeocodeUseCase(amapUC, log)

	// 7. Workers
	geocodeWorker := geocode.NewWorker(
		streamRepo,
		geocodeUC,
		cfg.Worker.ConsumerGroup,
		cfg.Worker.BatchSize,
		cfg.Worker.IdleSleep,
		log,
	)

	workerManager := worker.NewWorkerManager(log)
	workerManager.Register(geocodeWorker)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := workerManager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	// 8. Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Info("Received shutdown signal")

	// воркеры дорабатывают текущую пачку, затем контекст отменяется
	stopCtx, stopCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer stopCancel()

	if err := workerManager.Stop(stopCtx); err != nil {
		log.Error("Error stopping workers", zap.Error(err))
	}
	cancel()

	log.Info("Worker shutdown complete")
}
