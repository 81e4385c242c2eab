package redis

import (
	"context"
	"errors"
	"movie_watchlist/configs"
	"movie_watchlist/pkg/logger"
	"time"

	"github.com/redis/go-redis/v9"
)

var redisClient *redis.Client

// ConnectRedis is a no-op when REDIS_URL is unset or the server does not
// answer; callers check Enabled.
func ConnectRedis() {
	if configs.GetConfigs().RedisUrl == "" {
		return
	}
	redisClient = redis.NewClient(&redis.Options{
		Addr:     configs.GetConfigs().RedisUrl,
		Password: configs.GetConfigs().RedisPassword,
		DB:       0,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	pong, err := redisClient.Ping(ctx).Result()
	if err != nil {
		logger.Warn().Err(err).Msg("redis ping failed, session revocation disabled")
		_ = redisClient.Close()
		redisClient = nil
		return
	}
	logger.Info().Str("pong", pong).Msg("redis connected")
}

func Enabled() bool {
	return redisClient != nil
}

func Close() error {
	if redisClient == nil {
		return nil
	}
	return redisClient.Close()
}

func GetRedis(ctx context.Context, key string) (string, error) {
	if redisClient == nil {
		return "", redis.Nil
	}
	val, err := redisClient.Get(ctx, key).Result()
	return val, err
}

func SetRedis(ctx context.Context, key string, value interface{}, duration time.Duration) error {
	if redisClient == nil {
		return nil
	}
	err := redisClient.Set(ctx, key, value, duration).Err()
	return err
}

// IsNil reports whether err is the missing-key reply.
func IsNil(err error) bool {
	return errors.Is(err, redis.Nil)
}
