package services

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lac-hong-legacy/name_api/model"
	"github.com/lac-hong-legacy/name_api/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRateLimiter(t *testing.T, db *SqliteService, maxRequests int, window time.Duration) (*RateLimitService, *fakeClock) {
	t.Helper()

	clock := newFakeClock()
	svc := NewRateLimitService(db, RateLimitConfig{MaxRequests: maxRequests, WindowSize: window})
	svc.now = clock.Now
	return svc, clock
}

func countRateLimitRecords(t *testing.T, db *SqliteService) int64 {
	t.Helper()

	var count int64
	require.NoError(t, db.Db().Model(&model.RateLimitRecord{}).Count(&count).Error)
	return count
}

func TestRateLimitService_WindowMonotonicity(t *testing.T) {
	db := newTestDatabase(t)
	svc, clock := newTestRateLimiter(t, db, 100, time.Hour)
	start := clock.Now()
	ctx := context.Background()

	for n := 1; n <= 100; n++ {
		info, err := svc.Check(ctx, "203.0.113.7", nil)
		require.NoError(t, err)
		assert.True(t, info.Allowed, "call %d", n)
		assert.Equal(t, 100-n, info.Remaining, "call %d", n)
		assert.Equal(t, 100, info.Limit)
		assert.True(t, start.Add(time.Hour).Equal(info.ResetTime), "call %d reset %s", n, info.ResetTime)
		clock.Advance(time.Second)
	}

	info, err := svc.Check(ctx, "203.0.113.7", nil)
	require.NoError(t, err)
	assert.False(t, info.Allowed)
	assert.Equal(t, 0, info.Remaining)
	assert.True(t, start.Add(time.Hour).Equal(info.ResetTime))

	// one record per window, counted in place
	assert.Equal(t, int64(1), countRateLimitRecords(t, db))
}

func TestRateLimitService_DeniedCallsAreNotCounted(t *testing.T) {
	db := newTestDatabase(t)
	svc, _ := newTestRateLimiter(t, db, 2, time.Hour)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := svc.Check(ctx, "198.51.100.1", nil)
		require.NoError(t, err)
	}
	for i := 0; i < 3; i++ {
		info, err := svc.Check(ctx, "198.51.100.1", nil)
		require.NoError(t, err)
		assert.False(t, info.Allowed)
	}

	var record model.RateLimitRecord
	require.NoError(t, db.Db().First(&record).Error)
	assert.Equal(t, 2, record.RequestCount)
}

func TestRateLimitService_WindowAging(t *testing.T) {
	db := newTestDatabase(t)
	svc, clock := newTestRateLimiter(t, db, 2, time.Hour)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := svc.Check(ctx, "192.0.2.10", nil)
		require.NoError(t, err)
	}
	info, err := svc.Check(ctx, "192.0.2.10", nil)
	require.NoError(t, err)
	require.False(t, info.Allowed)

	clock.Advance(time.Hour + time.Second)

	info, err = svc.Check(ctx, "192.0.2.10", nil)
	require.NoError(t, err)
	assert.True(t, info.Allowed)
	assert.Equal(t, 1, info.Remaining)
	assert.True(t, clock.Now().Add(time.Hour).Equal(info.ResetTime))

	// the expired record is superseded, never deleted
	assert.Equal(t, int64(2), countRateLimitRecords(t, db))
}

func TestRateLimitService_ResetAnchorsOnEarliestWindow(t *testing.T) {
	db := newTestDatabase(t)
	svc, clock := newTestRateLimiter(t, db, 10, time.Hour)
	start := clock.Now()
	ctx := context.Background()

	info, err := svc.Check(ctx, "192.0.2.20", nil)
	require.NoError(t, err)
	assert.True(t, start.Add(time.Hour).Equal(info.ResetTime))

	clock.Advance(10 * time.Minute)

	info, err = svc.Check(ctx, "192.0.2.20", nil)
	require.NoError(t, err)
	assert.True(t, start.Add(time.Hour).Equal(info.ResetTime))
	assert.Equal(t, 8, info.Remaining)

	var record model.RateLimitRecord
	require.NoError(t, db.Db().First(&record).Error)
	assert.True(t, start.Equal(record.WindowStart))
	assert.True(t, clock.Now().Equal(record.CreatedAt))
}

func TestRateLimitService_UserScoping(t *testing.T) {
	db := newTestDatabase(t)
	svc, _ := newTestRateLimiter(t, db, 3, time.Hour)
	ctx := context.Background()
	ip := "203.0.113.50"

	for i := 0; i < 2; i++ {
		_, err := svc.Check(ctx, ip, strPtr("u1"))
		require.NoError(t, err)
	}

	info, err := svc.Check(ctx, ip, strPtr("u2"))
	require.NoError(t, err)
	assert.True(t, info.Allowed)
	assert.Equal(t, 2, info.Remaining)

	// guests are not filtered by user, so they see everything counted for the ip
	info, err = svc.Check(ctx, ip, nil)
	require.NoError(t, err)
	assert.False(t, info.Allowed)
	assert.Equal(t, 0, info.Remaining)

	info, err = svc.Check(ctx, "203.0.113.51", nil)
	require.NoError(t, err)
	assert.True(t, info.Allowed)
}

func TestRateLimitService_BlankUserIsGuest(t *testing.T) {
	db := newTestDatabase(t)
	svc, _ := newTestRateLimiter(t, db, 5, time.Hour)

	_, err := svc.Check(context.Background(), "203.0.113.60", strPtr("  "))
	require.NoError(t, err)

	var record model.RateLimitRecord
	require.NoError(t, db.Db().First(&record).Error)
	assert.Nil(t, record.UserID)
}

func TestRateLimitService_BlankIP(t *testing.T) {
	db := newTestDatabase(t)
	svc, _ := newTestRateLimiter(t, db, 5, time.Hour)

	info, err := svc.Check(context.Background(), " ", nil)
	assert.Nil(t, info)
	assert.True(t, shared.IsValidation(err))
}

func TestRateLimitService_StoreErrorPropagates(t *testing.T) {
	db := newTestDatabase(t)
	svc, _ := newTestRateLimiter(t, db, 5, time.Hour)
	closeDatabase(t, db)

	info, err := svc.Check(context.Background(), "203.0.113.7", nil)
	assert.Nil(t, info)
	require.Error(t, err)
	assert.True(t, shared.IsStoreError(err))
}

func TestRateLimitConfig_Defaults(t *testing.T) {
	cfg := RateLimitConfig{MaxRequests: 0, WindowSize: -time.Minute}.withDefaults()
	assert.Equal(t, DefaultRateLimitMaxRequests, cfg.MaxRequests)
	assert.Equal(t, DefaultRateLimitWindow, cfg.WindowSize)

	cfg = RateLimitConfig{MaxRequests: 7, WindowSize: time.Minute}.withDefaults()
	assert.Equal(t, 7, cfg.MaxRequests)
	assert.Equal(t, time.Minute, cfg.WindowSize)
}

func newGatedApp(svc *RateLimitService, trustedProxies ...string) *fiber.App {
	app := fiber.New(shared.ProxyConfig(fiber.Config{ErrorHandler: shared.ResponseError}, "", trustedProxies))
	app.Get("/gated", svc.RateLimit(), func(c *fiber.Ctx) error {
		return shared.ResponseOK(c, "ok")
	})
	return app
}

func TestRateLimitService_Middleware(t *testing.T) {
	db := newTestDatabase(t)
	svc, _ := newTestRateLimiter(t, db, 2, time.Hour)
	app := newGatedApp(svc)

	doRequest := func(forwardedFor string) *http.Response {
		req := httptest.NewRequest(http.MethodGet, "/gated", nil)
		req.Header.Set("X-Forwarded-For", forwardedFor)
		resp, err := app.Test(req)
		require.NoError(t, err)
		return resp
	}

	resp := doRequest("198.51.100.1")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "2", resp.Header.Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", resp.Header.Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, resp.Header.Get("X-RateLimit-Reset"))

	resp = doRequest("198.51.100.2")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "0", resp.Header.Get("X-RateLimit-Remaining"))

	resp = doRequest("198.51.100.3")
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "0", resp.Header.Get("X-RateLimit-Remaining"))
	assert.Equal(t, "3600", resp.Header.Get("Retry-After"))
}

func TestRateLimitService_MiddlewareIgnoresForwardedForFromUntrustedPeer(t *testing.T) {
	db := newTestDatabase(t)
	svc, _ := newTestRateLimiter(t, db, 2, time.Hour)
	app := newGatedApp(svc, "10.0.0.1")

	admitted := 0
	for i := 0; i < 10; i++ {
		req := httptest.NewRequest(http.MethodGet, "/gated", nil)
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("10.9.9.%d", i))
		resp, err := app.Test(req)
		require.NoError(t, err)
		if resp.StatusCode == http.StatusOK {
			admitted++
		}
	}
	assert.Equal(t, 2, admitted)

	var records []model.RateLimitRecord
	require.NoError(t, db.Db().Find(&records).Error)
	require.Len(t, records, 1)
	assert.Equal(t, "0.0.0.0", records[0].IPAddress)
	assert.Equal(t, 2, records[0].RequestCount)
}

func TestRateLimitService_MiddlewareTrustedProxy(t *testing.T) {
	db := newTestDatabase(t)
	svc, _ := newTestRateLimiter(t, db, 1, time.Hour)
	// app.Test connections come from 0.0.0.0
	app := newGatedApp(svc, "0.0.0.0")

	for _, client := range []string{"198.51.100.9, 10.0.0.1", "198.51.100.10"} {
		req := httptest.NewRequest(http.MethodGet, "/gated", nil)
		req.Header.Set("X-Forwarded-For", client)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode, client)
	}

	var first model.RateLimitRecord
	require.NoError(t, db.Db().Where("ip_address = ?", "198.51.100.9").First(&first).Error)
	assert.Equal(t, 1, first.RequestCount)
}

func TestRateLimitService_MiddlewareFailsClosed(t *testing.T) {
	db := newTestDatabase(t)
	svc, _ := newTestRateLimiter(t, db, 2, time.Hour)
	app := newGatedApp(svc)
	closeDatabase(t, db)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/gated", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}
