package geocode_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/amap-gateway/internal/domain"
	redisRepo "github.com/amap-gateway/internal/repository/redis"
	"github.com/amap-gateway/internal/worker"
	"github.com/amap-gateway/internal/worker/geocode"
)

const testGroup = "test-group"

// MockStreamRepository is a mock of StreamRepository
type MockStreamRepository struct {
	mock.Mock
}

func (m *MockStreamRepository) ConsumeBatch(ctx context.Context, stream, group, consumer string, count int) ([]domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StreamMessage), args.Error(1)
}

func (m *MockStreamRepository) AckMessages(ctx context.Context, stream, group string, messageIDs []string) error {
	args := m.Called(ctx, stream, group, messageIDs)
	return args.Error(0)
}

func (m *MockStreamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	args := m.Called(ctx, stream, group)
	return args.Error(0)
}

func (m *MockStreamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	args := m.Called(ctx, stream, data)
	return args.Error(0)
}

// MockResolver is a mock of Resolver
type MockResolver struct {
	mock.Mock
}

func (m *MockResolver) Resolve(ctx context.Context, event *domain.GeocodeRequestEvent) (*domain.GeocodeDoneEvent, error) {
	args := m.Called(ctx, event)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GeocodeDoneEvent), args.Error(1)
}

func message(t *testing.T, id string, event domain.GeocodeRequestEvent) domain.StreamMessage {
	t.Helper()
	data, err := json.Marshal(event)
	require.NoError(t, err)
	return domain.StreamMessage{ID: id, Data: string(data)}
}

func TestWorker_Name(t *testing.T) {
	w := geocode.NewWorker(&MockStreamRepository{}, &MockResolver{}, testGroup, 10, time.Millisecond, zap.NewNop())

	assert.Equal(t, "amap-geocode", w.Name())
	assert.Equal(t, testGroup, w.ConsumerGroup())

	var _ worker.Worker = w
}

func TestWorker_ProcessBatch(t *testing.T) {
	ctx := context.Background()

	t.Run("empty queue", func(t *testing.T) {
		stream := &MockStreamRepository{}
		w := geocode.NewWorker(stream, &MockResolver{}, testGroup, 10, time.Millisecond, zap.NewNop())

		stream.On("ConsumeBatch", ctx, domain.StreamGeocodeRequest, testGroup, mock.Anything, 10).
			Return([]domain.StreamMessage{}, nil)

		processed, err := w.ProcessBatch(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, processed)
		stream.AssertNotCalled(t, "AckMessages", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("publishes results and acks all", func(t *testing.T) {
		stream := &MockStreamRepository{}
		resolver := &MockResolver{}
		w := geocode.NewWorker(stream, resolver, testGroup, 10, time.Millisecond, zap.NewNop())

		event := domain.GeocodeRequestEvent{RequestID: uuid.New(), Address: "北京市朝阳区阜通东大街6号"}
		done := &domain.GeocodeDoneEvent{RequestID: event.RequestID, Adcode: "110105"}

		stream.On("ConsumeBatch", ctx, domain.StreamGeocodeRequest, testGroup, mock.Anything, 10).
			Return([]domain.StreamMessage{
				message(t, "1-0", event),
				{ID: "2-0", Data: "{broken"},
			}, nil)
		resolver.On("Resolve", ctx, &event).Return(done, nil)
		stream.On("PublishToStream", ctx, domain.StreamGeocodeDone, done).Return(nil)
		stream.On("AckMessages", mock.Anything, domain.StreamGeocodeRequest, testGroup, []string{"1-0", "2-0"}).Return(nil)

		processed, err := w.ProcessBatch(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, processed)

		stream.AssertExpectations(t)
		resolver.AssertExpectations(t)
	})

	t.Run("consume error", func(t *testing.T) {
		stream := &MockStreamRepository{}
		w := geocode.NewWorker(stream, &MockResolver{}, testGroup, 10, time.Millisecond, zap.NewNop())

		stream.On("ConsumeBatch", ctx, domain.StreamGeocodeRequest, testGroup, mock.Anything, 10).
			Return(nil, errors.New("redis down"))

		_, err := w.ProcessBatch(ctx)
		assert.ErrorContains(t, err, "redis down")
	})

	t.Run("cancelled resolve leaves the rest pending", func(t *testing.T) {
		stream := &MockStreamRepository{}
		resolver := &MockResolver{}
		w := geocode.NewWorker(stream, resolver, testGroup, 10, time.Millisecond, zap.NewNop())

		first := domain.GeocodeRequestEvent{RequestID: uuid.New(), Address: "a"}
		second := domain.GeocodeRequestEvent{RequestID: uuid.New(), Address: "b"}
		firstDone := &domain.GeocodeDoneEvent{RequestID: first.RequestID}

		stream.On("ConsumeBatch", ctx, domain.StreamGeocodeRequest, testGroup, mock.Anything, 10).
			Return([]domain.StreamMessage{message(t, "1-0", first), message(t, "2-0", second)}, nil)
		resolver.On("Resolve", ctx, &first).Return(firstDone, nil)
		resolver.On("Resolve", ctx, &second).Return(nil, context.Canceled)
		stream.On("PublishToStream", ctx, domain.StreamGeocodeDone, firstDone).Return(nil)
		stream.On("AckMessages", mock.Anything, domain.StreamGeocodeRequest, testGroup, []string{"1-0"}).Return(nil)

		_, err := w.ProcessBatch(ctx)
		assert.ErrorIs(t, err, context.Canceled)
		stream.AssertExpectations(t)
	})
}

// stubResolver отвечает фиксированным adcode
type stubResolver struct{}

func (stubResolver) Resolve(_ context.Context, event *domain.GeocodeRequestEvent) (*domain.GeocodeDoneEvent, error) {
	return &domain.GeocodeDoneEvent{RequestID: event.RequestID, Adcode: "110105"}, nil
}

func TestWorker_RedisRoundTrip(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	logger := zap.NewNop()
	stream := redisRepo.NewStreamRepository(client, logger)
	w := geocode.NewWorker(stream, stubResolver{}, testGroup, 10, 10*time.Millisecond, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	manager := worker.NewWorkerManager(logger)
	manager.Register(w)
	require.NoError(t, manager.Start(ctx))

	event := domain.GeocodeRequestEvent{RequestID: uuid.New(), Address: "北京市朝阳区阜通东大街6号"}
	// группа создается с id "0", поэтому порядок публикации и старта не важен
	require.NoError(t, stream.PublishToStream(ctx, domain.StreamGeocodeRequest, event))

	var done domain.GeocodeDoneEvent
	require.Eventually(t, func() bool {
		entries, err := client.XRange(ctx, domain.StreamGeocodeDone, "-", "+").Result()
		if err != nil || len(entries) == 0 {
			return false
		}
		data, _ := entries[0].Values["data"].(string)
		return json.Unmarshal([]byte(data), &done) == nil
	}, 3*time.Second, 20*time.Millisecond)

	assert.Equal(t, event.RequestID, done.RequestID)
	assert.Equal(t, "110105", done.Adcode)

	stopCtx, stopCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer stopCancel()
	require.NoError(t, manager.Stop(stopCtx))
	assert.Empty(t, manager.Errors())
}
