// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"agendabot/config"

	"github.com/go-redis/redis/v8"
)

// StateCacheClient is the Redis client backing the conversation state store.
var StateCacheClient *redis.Client

// InitStateCache initializes the Redis client for conversation state
// (using DB from AppConfig).
func InitStateCache() {
	StateCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisStateDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := StateCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (State): %v", err)
	}
}

// GetStateCacheClient returns the Redis client for conversation state.
func GetStateCacheClient() *redis.Client {
	if StateCacheClient == nil {
		InitStateCache()
	}
	return StateCacheClient
}
