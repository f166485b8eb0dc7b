// +build ignore

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
)

type RiskLocation struct {
	Name                   string   `json:"name"`
	Latitude               *float64 `json:"latitude,omitempty"`
	Longitude              *float64 `json:"longitude,omitempty"`
	Temperature            *float64 `json:"temperature,omitempty"`
	RainfallMm             *float64 `json:"rainfall_mm,omitempty"`
	TrafficCongestionLevel *float64 `json:"traffic_congestion_level,omitempty"`
	NumRecentAccidents     *float64 `json:"num_recent_accidents,omitempty"`
}

type RiskAssessEvent struct {
	RequestID uuid.UUID    `json:"request_id"`
	Location  RiskLocation `json:"location"`
}

func ptr[T any](v T) *T {
	return &v
}

func main() {
	redisAddr := flag.String("redis", "localhost:6380", "Redis address for streams")
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

	// Тестовое событие (Colombo, heavy rain)
	event := RiskAssessEvent{
		RequestID: uuid.New(),
		Location: RiskLocation{
			Name:                   "Colombo Fort",
			Latitude:               ptr(6.9344),
			Longitude:              ptr(79.8428),
			Temperature:            ptr(29.5),
			RainfallMm:             ptr(65.0),
			TrafficCongestionLevel: ptr(8.0),
			NumRecentAccidents:     ptr(4.0),
		},
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("Failed to marshal event: %v", err)
	}

	// Публикация в стрим
	result, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: "stream:risk:assess",
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish event: %v", err)
	}

	fmt.Printf("✅ Event published successfully!\n")
	fmt.Printf("   Stream: stream:risk:assess\n")
	fmt.Printf("   Message ID: %s\n", result)
	fmt.Printf("   Request ID: %s\n", event.RequestID)
	fmt.Printf("   Location: %s\n", event.Location.Name)
	fmt.Printf("   Coordinates: %.4f, %.4f\n", *event.Location.Latitude, *event.Location.Longitude)

	// Ожидание ответа
	fmt.Printf("\n⏳ Waiting for response in stream:risk:done...\n")

	// Создаем consumer group если не существует
	client.XGroupCreateMkStream(ctx, "stream:risk:done", "test-consumer", "$")

	// Читаем ответ
	timeout := time.After(30 * time.Second)
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-timeout:
			fmt.Println("❌ Timeout waiting for response")
			return
		case <-ticker.C:
			results, err := client.XRead(ctx, &redis.XReadArgs{
				Streams: []string{"stream:risk:done", "0"},
				Count:   10,
				Block:   0,
			}).Result()

			if err != nil && err != redis.Nil {
				continue
			}

			for _, stream := range results {
				for _, msg := range stream.Messages {
					dataStr, ok := msg.Values["data"].(string)
					if !ok {
						continue
					}

					var response map[string]interface{}
					if err := json.Unmarshal([]byte(dataStr), &response); err != nil {
						continue
					}

					if reqID, ok := response["request_id"].(string); ok {
						if reqID == event.RequestID.String() {
							fmt.Printf("\n✅ Response received!\n")
							prettyJSON, _ := json.MarshalIndent(response, "", "  ")
							fmt.Printf("%s\n", prettyJSON)
							return
						}
					}
				}
			}
		}
	}
}
