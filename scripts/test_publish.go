//go:build ignore

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/amap-gateway/internal/domain"
)

func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address for streams")
	address := flag.String("address", "北京市朝阳区阜通东大街6号", "Address to geocode")
	city := flag.String("city", "北京", "City hint")
	location := flag.String("location", "", "lng,lat for reverse geocoding (overrides address)")
	wait := flag.Duration("wait", 10*time.Second, "How long to wait for the result")
	flag.Parse()

	client := redis.NewClient(&redis.Options{
		Addr: *redisAddr,
	})
	defer client.Close()

	ctx := context.Background()

	// Проверка подключения
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	event := domain.GeocodeRequestEvent{
		RequestID: uuid.New(),
		Address:   *address,
		City:      *city,
	}
	if *location != "" {
		point, err := domain.ParsePoint(*location)
		if err != nil {
			log.Fatalf("Invalid location: %v", err)
		}
		event = domain.GeocodeRequestEvent{RequestID: event.RequestID, Location: &point}
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("Failed to marshal event: %v", err)
	}

	// Запоминаем конец стрима результатов до публикации
	lastID := "$"
	if entries, err := client.XRevRangeN(ctx, domain.StreamGeocodeDone, "+", "-", 1).Result(); err == nil && len(entries) > 0 {
		lastID = entries[0].ID
	}

	id, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: domain.StreamGeocodeRequest,
		Values: map[string]interface{}{"data": string(data)},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish: %v", err)
	}
	fmt.Printf("Published %s to %s: %s\n", id, domain.StreamGeocodeRequest, data)

	// Ждем результат с тем же request_id
	deadline := time.Now().Add(*wait)
	for time.Now().Before(deadline) {
		streams, err := client.XRead(ctx, &redis.XReadArgs{
			Streams: []string{domain.StreamGeocodeDone, lastID},
			Block:   time.Second,
		}).Result()
		if err != nil {
			continue
		}
		for _, s := range streams {
			for _, msg := range s.Messages {
				lastID = msg.ID
				raw, _ := msg.Values["data"].(string)
				var done domain.GeocodeDoneEvent
				if json.Unmarshal([]byte(raw), &done) == nil && done.RequestID == event.RequestID {
					fmt.Printf("Result: %s\n", raw)
					return
				}
			}
		}
	}

	log.Fatalf("No result for %s within %v", event.RequestID, *wait)
}
