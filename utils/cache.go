package utils

import (
	"context"
	"log"
	"time"

	"mealroom/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient serves read-through caching of rooms and weekly schedules.
	CacheClient *redis.Client
	// HistoryClient is the dedicated client for per-device room-visit history.
	HistoryClient *redis.Client
)

// InitCache initializes the generic Redis cache client.
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := CacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// InitHistoryCache initializes the Redis client for room-visit history.
func InitHistoryCache() {
	HistoryClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisHistoryDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := HistoryClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (History): %v", err)
	}
}

// GetHistoryClient returns the Redis client for room-visit history.
func GetHistoryClient() *redis.Client {
	if HistoryClient == nil {
		InitHistoryCache()
	}
	return HistoryClient
}

// InitRedis brings up all Redis clients at startup.
func InitRedis() {
	InitCache()
	InitHistoryCache()
}
