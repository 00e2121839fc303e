package redis_test

import (
	"context"
	"encoding/json"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/amap-gateway/internal/domain"
	redisRepo "github.com/amap-gateway/internal/repository/redis"
)

const (
	testStream = "test:stream:amap:geocode"
	testGroup  = "test-group"
)

// newTestRedisClient поднимает miniredis и возвращает подключенный клиент
func newTestRedisClient(t *testing.T) *redis.Client {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return client
}

func TestStreamRepository_CreateConsumerGroup(t *testing.T) {
	client := newTestRedisClient(t)
	repo := redisRepo.NewStreamRepository(client, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, repo.CreateConsumerGroup(ctx, testStream, testGroup))

	exists, err := client.Exists(ctx, testStream).Result()
	require.NoError(t, err)
	assert.Equal(t, int64(1), exists)

	// повторное создание не ошибка (BUSYGROUP)
	assert.NoError(t, repo.CreateConsumerGroup(ctx, testStream, testGroup))
}

func TestStreamRepository_PublishConsumeAck(t *testing.T) {
	client := newTestRedisClient(t)
	repo := redisRepo.NewStreamRepository(client, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, repo.CreateConsumerGroup(ctx, testStream, testGroup))

	event := domain.GeocodeRequestEvent{
		RequestID: uuid.New(),
		Address:   "北京市朝阳区阜通东大街6号",
		City:      "北京",
	}
	require.NoError(t, repo.PublishToStream(ctx, testStream, event))

	messages, err := repo.ConsumeBatch(ctx, testStream, testGroup, "consumer-1", 10)
	require.NoError(t, err)
	require.Len(t, messages, 1)

	var got domain.GeocodeRequestEvent
	require.NoError(t, json.Unmarshal([]byte(messages[0].Data), &got))
	assert.Equal(t, event, got)

	require.NoError(t, repo.AckMessages(ctx, testStream, testGroup, []string{messages[0].ID}))

	pending, err := client.XPending(ctx, testStream, testGroup).Result()
	require.NoError(t, err)
	assert.Equal(t, int64(0), pending.Count)
}

func TestStreamRepository_ConsumeBatch_Empty(t *testing.T) {
	client := newTestRedisClient(t)
	repo := redisRepo.NewStreamRepository(client, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, repo.CreateConsumerGroup(ctx, testStream, testGroup))

	messages, err := repo.ConsumeBatch(ctx, testStream, testGroup, "consumer-1", 10)
	require.NoError(t, err)
	assert.Empty(t, messages)
}

func TestStreamRepository_AckMessages_Empty(t *testing.T) {
	client := newTestRedisClient(t)
	repo := redisRepo.NewStreamRepository(client, zap.NewNop())

	assert.NoError(t, repo.AckMessages(context.Background(), testStream, testGroup, nil))
}
