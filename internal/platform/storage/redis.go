package storage

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

type Config struct {
	Addr     string
	Password string
	DB       int
}

// NewRedisClient connects with a bounded retry so app startup tolerates
// the store coming up slightly later than the process.
func NewRedisClient(cfg Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	var err error
	maxRetries := 10

	for i := 1; i <= maxRetries; i++ {
		log.Printf("Connecting to Redis (Attempt %d/%d)...", i, maxRetries)
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		err = client.Ping(ctx).Err()
		cancel()

		if err == nil {
			log.Println("Redis connected successfully!")
			return client, nil
		}

		log.Printf("Redis not ready yet. Waiting 2 seconds...")
		time.Sleep(2 * time.Second)
	}

	_ = client.Close()
	return nil, fmt.Errorf("failed to connect to redis: %v", err)
}
