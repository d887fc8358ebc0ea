package middleware

import (
	"context"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lac-hong-legacy/name_api/shared"
	"golang.org/x/time/rate"
)

// BurstShield is an in-memory token bucket per client IP. It sits in front of
// the persistent gate and only absorbs floods; it never grants more than the
// gate would.
type BurstShield struct {
	mu      sync.Mutex
	entries map[string]*shieldEntry
	rps     rate.Limit
	burst   int
	idleTTL time.Duration
}

type shieldEntry struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

func NewBurstShield(rps float64, burst int) *BurstShield {
	if burst < 1 {
		burst = 1
	}
	return &BurstShield{
		entries: make(map[string]*shieldEntry),
		rps:     rate.Limit(rps),
		burst:   burst,
		idleTTL: 15 * time.Minute,
	}
}

// BurstShieldFromEnv returns nil when BURST_RPS is unset or invalid.
func BurstShieldFromEnv() *BurstShield {
	rps, err := strconv.ParseFloat(os.Getenv("BURST_RPS"), 64)
	if err != nil || rps <= 0 {
		return nil
	}

	burst, err := strconv.Atoi(os.Getenv("BURST_SIZE"))
	if err != nil || burst < 1 {
		burst = int(rps) * 2
	}
	return NewBurstShield(rps, burst)
}

func (s *BurstShield) limiter(key string) *rate.Limiter {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	if ent, ok := s.entries[key]; ok {
		ent.lastSeen = now
		return ent.lim
	}

	lim := rate.NewLimiter(s.rps, s.burst)
	s.entries[key] = &shieldEntry{lim: lim, lastSeen: now}
	return lim
}

func (s *BurstShield) Allow(key string) bool {
	return s.limiter(key).Allow()
}

func (s *BurstShield) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Cleanup drops limiters idle for longer than the idle TTL.
func (s *BurstShield) Cleanup() {
	cutoff := time.Now().Add(-s.idleTTL)

	s.mu.Lock()
	defer s.mu.Unlock()

	for k, ent := range s.entries {
		if ent.lastSeen.Before(cutoff) {
			delete(s.entries, k)
		}
	}
}

// StartJanitor runs Cleanup every interval until ctx is done.
func (s *BurstShield) StartJanitor(ctx context.Context, every time.Duration) {
	if every <= 0 {
		return
	}

	t := time.NewTicker(every)
	go func() {
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				s.Cleanup()
			}
		}
	}()
}

func (s *BurstShield) Handler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !s.Allow(shared.ClientIP(c)) {
			c.Set("Retry-After", "1")
			return shared.NewTooManyRequestsError("Too many requests. Please slow down.", nil)
		}
		return c.Next()
	}
}
