package cache

import (
	"context"
	"time"

	"pokerroom-booking/pkg/utils"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient membuat redis client untuk response caching.
// Returns nil kalau redis tidak bisa dihubungi; caller harus degrade
// gracefully (caching dimatikan, aplikasi tetap jalan).
func NewRedisClient(config utils.RedisConfig) *redis.Client {
	if config.Addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil
	}

	return client
}
