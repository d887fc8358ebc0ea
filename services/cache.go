package services

import (
	"context"
	"os"
	"strconv"
	"time"

	appContext "github.com/alphabatem/common/context"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/lac-hong-legacy/name_api/dto"
	"github.com/rs/zerolog/log"
)

// LocalizationCache holds composed responses by request id. Requests are
// immutable so entries only ever expire, never go stale.
type LocalizationCache interface {
	Get(ctx context.Context, id string) (*dto.LocalizationResponse, bool)
	Set(ctx context.Context, response dto.LocalizationResponse)
}

const (
	CACHE_SVC = "cache_svc"

	defaultCacheSize = 1024
	defaultCacheTTL  = 10 * time.Minute
)

type MemoryCache struct {
	lru *expirable.LRU[string, dto.LocalizationResponse]
}

func NewMemoryCache(size int, ttl time.Duration) *MemoryCache {
	return &MemoryCache{lru: expirable.NewLRU[string, dto.LocalizationResponse](size, nil, ttl)}
}

func (mc *MemoryCache) Get(_ context.Context, id string) (*dto.LocalizationResponse, bool) {
	response, ok := mc.lru.Get(id)
	if !ok {
		return nil, false
	}
	return &response, true
}

func (mc *MemoryCache) Set(_ context.Context, response dto.LocalizationResponse) {
	mc.lru.Add(response.ID, response)
}

func (mc *MemoryCache) Len() int {
	return mc.lru.Len()
}

// CacheService picks Redis when REDIS_ADDR is set and an in-process LRU
// otherwise.
type CacheService struct {
	appContext.DefaultService

	size  int
	ttl   time.Duration
	addr  string
	redis *RedisCache

	LocalizationCache
}

func (svc CacheService) Id() string {
	return CACHE_SVC
}

func (svc *CacheService) Configure(ctx *appContext.Context) error {
	svc.size = defaultCacheSize
	if sizeStr := os.Getenv("CACHE_SIZE"); sizeStr != "" {
		if size, err := strconv.Atoi(sizeStr); err == nil && size > 0 {
			svc.size = size
		}
	}

	svc.ttl = defaultCacheTTL
	if ttlStr := os.Getenv("CACHE_TTL"); ttlStr != "" {
		if ttl, err := time.ParseDuration(ttlStr); err == nil && ttl > 0 {
			svc.ttl = ttl
		}
	}

	svc.addr = os.Getenv("REDIS_ADDR")
	return svc.DefaultService.Configure(ctx)
}

func (svc *CacheService) Start() error {
	if svc.addr != "" {
		svc.redis = NewRedisCache(newRedisClient(svc.addr), svc.ttl)
		if err := svc.redis.Ping(context.Background()); err != nil {
			return err
		}
		svc.LocalizationCache = svc.redis
		log.Info().Str("addr", svc.addr).Dur("ttl", svc.ttl).Msg("Using redis localization cache")
		return nil
	}

	svc.LocalizationCache = NewMemoryCache(svc.size, svc.ttl)
	log.Info().Int("size", svc.size).Dur("ttl", svc.ttl).Msg("Using in-memory localization cache")
	return nil
}

func (svc *CacheService) Shutdown() {
	if svc.redis != nil {
		_ = svc.redis.Close()
	}
}
