package services

import (
	"context"
	"errors"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	appContext "github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"
	"github.com/lac-hong-legacy/name_api/dto"
	"github.com/lac-hong-legacy/name_api/model"
	"github.com/lac-hong-legacy/name_api/services/repositories"
	"github.com/lac-hong-legacy/name_api/shared"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// RateLimitConfig is the ceiling and window of the counting gate.
type RateLimitConfig struct {
	MaxRequests int
	WindowSize  time.Duration
}

const (
	RATE_LIMIT_SVC = "rate_limit_svc"

	DefaultRateLimitMaxRequests = 100
	DefaultRateLimitWindow      = time.Hour
)

var errBlankIP = errors.New("ip address is blank")

// RateLimitService admits or denies callers per (ip, optional user) using
// append-only counting records aggregated over a trailing window. Records are
// never pruned.
type RateLimitService struct {
	appContext.DefaultService

	config RateLimitConfig
	dbSvc  DatabaseService
	now    func() time.Time
}

func NewRateLimitService(dbSvc DatabaseService, config RateLimitConfig) *RateLimitService {
	return &RateLimitService{
		dbSvc:  dbSvc,
		config: config.withDefaults(),
		now:    time.Now,
	}
}

func (cfg RateLimitConfig) withDefaults() RateLimitConfig {
	if cfg.MaxRequests < 1 {
		cfg.MaxRequests = DefaultRateLimitMaxRequests
	}
	if cfg.WindowSize <= 0 {
		cfg.WindowSize = DefaultRateLimitWindow
	}
	return cfg
}

func (svc RateLimitService) Id() string {
	return RATE_LIMIT_SVC
}

func (svc *RateLimitService) Configure(ctx *appContext.Context) error {
	if maxStr := os.Getenv("RATE_LIMIT_MAX_REQUESTS"); maxStr != "" {
		maxRequests, err := strconv.Atoi(maxStr)
		if err != nil {
			log.Warn().Str("value", maxStr).Msg("Invalid RATE_LIMIT_MAX_REQUESTS, using default")
		} else {
			svc.config.MaxRequests = maxRequests
		}
	}

	if window := os.Getenv("RATE_LIMIT_WINDOW"); window != "" {
		windowSize, err := time.ParseDuration(window)
		if err != nil {
			log.Warn().Str("value", window).Msg("Invalid RATE_LIMIT_WINDOW, using default")
		} else {
			svc.config.WindowSize = windowSize
		}
	}

	svc.config = svc.config.withDefaults()
	if svc.now == nil {
		svc.now = time.Now
	}
	return svc.DefaultService.Configure(ctx)
}

func (svc *RateLimitService) Start() error {
	svc.dbSvc = svc.Service(DATABASE_SVC).(DatabaseService)

	log.Info().
		Int("max_requests", svc.config.MaxRequests).
		Dur("window", svc.config.WindowSize).
		Msg("Rate limit gate configured")
	return nil
}

// Check counts this call against the caller's window. When userID is nil the
// lookup is not restricted by user, so guest traffic pools by IP.
// Store failures are returned as errors and must never be read as an allow.
func (svc *RateLimitService) Check(ctx context.Context, ip string, userID *string) (*dto.RateLimitInfo, error) {
	ip = strings.TrimSpace(ip)
	if ip == "" {
		return nil, shared.NewValidationError(errBlankIP, "ip_address is required", nil)
	}
	if userID != nil && strings.TrimSpace(*userID) == "" {
		userID = nil
	}

	limit := svc.config.MaxRequests
	window := svc.config.WindowSize
	now := svc.now().UTC().Truncate(time.Microsecond)

	var info dto.RateLimitInfo
	err := svc.dbSvc.Db().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := repositories.NewRateLimitRepository(tx)

		records, err := repo.FindInWindow(ctx, ip, userID, now.Add(-window))
		if err != nil {
			return err
		}

		total := 0
		var earliest time.Time
		for _, record := range records {
			total += record.RequestCount
			if earliest.IsZero() || record.WindowStart.Before(earliest) {
				earliest = record.WindowStart
			}
		}

		if total >= limit {
			info = dto.RateLimitInfo{
				Allowed:   false,
				Limit:     limit,
				Remaining: 0,
				ResetTime: earliest.Add(window),
			}
			return nil
		}

		info = dto.RateLimitInfo{
			Allowed:   true,
			Limit:     limit,
			Remaining: max(0, limit-total-1),
		}

		if len(records) > 0 {
			info.ResetTime = earliest.Add(window)
			return repo.Increment(ctx, records[0].ID, now)
		}

		info.ResetTime = now.Add(window)
		return repo.Create(ctx, &model.RateLimitRecord{
			IPAddress:    ip,
			UserID:       userID,
			RequestCount: 1,
			WindowStart:  now,
			CreatedAt:    now,
		})
	})
	if err != nil {
		rateLimitDecisionsTotal.WithLabelValues("error").Inc()
		return nil, svc.dbSvc.HandleError(err)
	}

	if info.Allowed {
		rateLimitDecisionsTotal.WithLabelValues("allowed").Inc()
	} else {
		rateLimitDecisionsTotal.WithLabelValues("denied").Inc()
	}
	return &info, nil
}

// RateLimit gates a route. The user id bound by the auth middleware, when
// present, narrows the key. A failed check rejects with 503.
func (svc *RateLimitService) RateLimit() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ip := shared.ClientIP(c)

		var userID *string
		if uid := shared.LocalUserID(c); uid != "" {
			userID = &uid
		}

		info, err := svc.Check(c.UserContext(), ip, userID)
		if err != nil {
			log.Error().Err(err).Str("ip", ip).Msg("Rate limit check failed")
			return shared.NewServiceUnavailableError(err, "Rate limit service unavailable")
		}

		svc.addRateLimitHeaders(c, info)

		if !info.Allowed {
			return shared.NewTooManyRequestsError("Too many requests. Please try again later.", info)
		}

		return c.Next()
	}
}

func (svc *RateLimitService) addRateLimitHeaders(c *fiber.Ctx, info *dto.RateLimitInfo) {
	c.Set("X-RateLimit-Limit", strconv.Itoa(info.Limit))
	c.Set("X-RateLimit-Remaining", strconv.Itoa(info.Remaining))
	c.Set("X-RateLimit-Reset", strconv.FormatInt(info.ResetTime.Unix(), 10))

	if !info.Allowed {
		retryAfter := int(math.Ceil(info.ResetTime.Sub(svc.now()).Seconds()))
		if retryAfter < 1 {
			retryAfter = 1
		}
		c.Set("Retry-After", strconv.Itoa(retryAfter))
	}
}
