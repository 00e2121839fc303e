package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/amap-gateway/internal/domain"
	"github.com/amap-gateway/internal/domain/repository"
	"github.com/amap-gateway/internal/worker"
)

const errorPause = time.Second

// Resolver геокодирует одно событие
type Resolver interface {
	Resolve(ctx context.Context, event *domain.GeocodeRequestEvent) (*domain.GeocodeDoneEvent, error)
}

// Worker читает stream:amap:geocode и публикует результаты в stream:amap:geocode:done
type Worker struct {
	*worker.BaseWorker
	streamRepo   repository.StreamRepository
	resolver     Resolver
	consumerName string
	batchSize    int
	idleSleep    time.Duration
}

// NewWorker создает новый geocode Worker
func NewWorker(
	streamRepo repository.StreamRepository,
	resolver Resolver,
	consumerGroup string,
	batchSize int,
	idleSleep time.Duration,
	logger *zap.Logger,
) *Worker {
	hostname, _ := os.Hostname()
	consumerName := fmt.Sprintf("%s-%d", hostname, os.Getpid())

	return &Worker{
		BaseWorker:   worker.NewBaseWorker("amap-geocode", consumerGroup, logger),
		streamRepo:   streamRepo,
		resolver:     resolver,
		consumerName: consumerName,
		batchSize:    batchSize,
		idleSleep:    idleSleep,
	}
}

// Start запускает воркер
func (w *Worker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting geocode worker",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName),
		zap.Int("batch_size", w.batchSize))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamGeocodeRequest, w.ConsumerGroup()); err != nil {
		logger.Error("Failed to create consumer group", zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil
		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()
		default:
		}

		processed, err := w.ProcessBatch(ctx)
		switch {
		case err != nil:
			logger.Error("Failed to process batch", zap.Error(err))
			w.Pause(ctx, errorPause)
		case processed == 0:
			w.Pause(ctx, w.idleSleep)
		}
	}
}

// ProcessBatch читает и обрабатывает пачку сообщений.
// Возвращает количество прочитанных сообщений.
func (w *Worker) ProcessBatch(ctx context.Context) (int, error) {
	logger := w.Logger()

	messages, err := w.streamRepo.ConsumeBatch(
		ctx,
		domain.StreamGeocodeRequest,
		w.ConsumerGroup(),
		w.consumerName,
		w.batchSize,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to consume batch: %w", err)
	}
	if len(messages) == 0 {
		return 0, nil
	}

	logger.Debug("Processing batch", zap.Int("message_count", len(messages)))

	ackIDs := make([]string, 0, len(messages))
	var failed int
	for _, msg := range messages {
		var event domain.GeocodeRequestEvent
		if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
			logger.Warn("Failed to parse message, skipping",
				zap.String("message_id", msg.ID),
				zap.Error(err))
			// ACK битое сообщение чтобы не застревало
			ackIDs = append(ackIDs, msg.ID)
			continue
		}

		done, err := w.resolver.Resolve(ctx, &event)
		if err != nil {
			// контекст отменен - оставшиеся сообщения останутся в pending
			w.ack(ctx, ackIDs)
			return len(messages), fmt.Errorf("resolve %s: %w", event.RequestID, err)
		}
		if done.Error != "" {
			failed++
		}

		if err := w.streamRepo.PublishToStream(ctx, domain.StreamGeocodeDone, done); err != nil {
			logger.Error("Failed to publish done event",
				zap.String("request_id", event.RequestID.String()),
				zap.Error(err))
		}
		ackIDs = append(ackIDs, msg.ID)
	}

	w.ack(ctx, ackIDs)

	logger.Info("Batch processed",
		zap.Int("processed", len(messages)),
		zap.Int("errors", failed))

	return len(messages), nil
}

func (w *Worker) ack(ctx context.Context, ids []string) {
	if len(ids) == 0 {
		return
	}
	if err := w.streamRepo.AckMessages(context.WithoutCancel(ctx), domain.StreamGeocodeRequest, w.ConsumerGroup(), ids); err != nil {
		// не критично - сообщения будут переобработаны
		w.Logger().Error("Failed to ack messages", zap.Error(err))
	}
}
