package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/granitdvor/monument-backend/config"
	"github.com/granitdvor/monument-backend/pkg/logger"
	"github.com/redis/go-redis/v9"
)

var client *redis.Client

// Init initializes Redis connection
func Init(cfg *config.RedisConfig) error {
	logger.Info("Initializing Redis connection", map[string]interface{}{
		"host": cfg.Host,
		"port": cfg.Port,
		"db":   cfg.DB,
	})

	client = redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Error("Failed to connect to Redis", err, map[string]interface{}{
			"host": cfg.Host,
			"port": cfg.Port,
		})
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("Redis connection established successfully", nil)
	return nil
}

// GetClient returns the Redis client instance, nil when Redis is disabled
func GetClient() *redis.Client {
	return client
}

// Close closes the Redis connection
func Close() error {
	if client != nil {
		logger.Info("Closing Redis connection", nil)
		return client.Close()
	}
	return nil
}

// BlacklistToken adds a revoked token to the blacklist until it expires
func BlacklistToken(ctx context.Context, token string, expiry time.Duration) error {
	if client == nil {
		return nil
	}

	key := fmt.Sprintf("blacklist:%s", token)
	if err := client.Set(ctx, key, "revoked", expiry).Err(); err != nil {
		logger.Error("Failed to blacklist token", err, nil)
		return err
	}
	return nil
}

// IsTokenBlacklisted reports whether a token has been revoked
func IsTokenBlacklisted(ctx context.Context, token string) bool {
	if client == nil {
		return false
	}

	key := fmt.Sprintf("blacklist:%s", token)
	exists, err := client.Exists(ctx, key).Result()
	if err != nil {
		logger.Warn("Failed to check token blacklist", map[string]interface{}{
			"error": err.Error(),
		})
		return false
	}
	return exists > 0
}

// GetCachedJSON reads a cached JSON payload; a miss or an error returns nil
func GetCachedJSON(ctx context.Context, key string) []byte {
	if client == nil {
		return nil
	}

	data, err := client.Get(ctx, key).Bytes()
	if err != nil {
		return nil // cache miss
	}
	return data
}

// SetCachedJSON stores a JSON payload with a TTL; failures are logged only
func SetCachedJSON(ctx context.Context, key string, data []byte, ttl time.Duration) {
	if client == nil {
		return
	}

	if err := client.Set(ctx, key, data, ttl).Err(); err != nil {
		logger.Warn("Failed to write cache entry", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}
}
