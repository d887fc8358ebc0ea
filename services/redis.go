package services

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/lac-hong-legacy/name_api/dto"
	"github.com/lac-hong-legacy/name_api/shared"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const localizationKeyPrefix = "localization:"

// RedisCache stores localization responses as sonic-encoded JSON.
type RedisCache struct {
	redis *redis.Client
	ttl   time.Duration
}

func newRedisClient(addr string) *redis.Client {
	redisDB := 0
	if dbStr := os.Getenv("REDIS_DB"); dbStr != "" {
		if db, err := strconv.Atoi(dbStr); err == nil {
			redisDB = db
		}
	}

	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       redisDB,
	})
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{redis: client, ttl: ttl}
}

func (rc *RedisCache) Ping(ctx context.Context) error {
	if _, err := rc.redis.Ping(ctx).Result(); err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return nil
}

func (rc *RedisCache) Get(ctx context.Context, id string) (*dto.LocalizationResponse, bool) {
	result, err := rc.redis.Get(ctx, localizationKeyPrefix+id).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		log.Warn().Err(err).Str("id", id).Msg("redis get failed")
		return nil, false
	}

	var response dto.LocalizationResponse
	if err := shared.JSONUnmarshal(result, &response); err != nil {
		log.Warn().Err(err).Str("id", id).Msg("discarding undecodable cache entry")
		return nil, false
	}
	return &response, true
}

func (rc *RedisCache) Set(ctx context.Context, response dto.LocalizationResponse) {
	data, err := shared.JSONMarshal(response)
	if err != nil {
		log.Warn().Err(err).Str("id", response.ID).Msg("failed to encode cache entry")
		return
	}
	if err := rc.redis.Set(ctx, localizationKeyPrefix+response.ID, data, rc.ttl).Err(); err != nil {
		log.Warn().Err(err).Str("id", response.ID).Msg("redis set failed")
	}
}

func (rc *RedisCache) Close() error {
	return rc.redis.Close()
}
