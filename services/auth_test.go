package services

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lac-hong-legacy/name_api/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService(testJWTSecret, time.Hour)
	require.True(t, svc.Enabled())

	token, err := svc.ToJWT("u1")
	require.NoError(t, err)

	userID, err := svc.VerifyJWTToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", userID)
}

func TestJWTService_Rejects(t *testing.T) {
	svc := NewJWTService(testJWTSecret, time.Hour)

	expired, err := NewJWTService(testJWTSecret, -time.Minute).ToJWT("u1")
	require.NoError(t, err)
	_, err = svc.VerifyJWTToken(expired)
	assert.Error(t, err)

	foreign, err := NewJWTService("other-secret", time.Hour).ToJWT("u1")
	require.NoError(t, err)
	_, err = svc.VerifyJWTToken(foreign)
	assert.Error(t, err)

	anonymous, err := svc.ToJWT("")
	require.NoError(t, err)
	_, err = svc.VerifyJWTToken(anonymous)
	assert.Error(t, err)

	assert.False(t, NewJWTService("", time.Hour).Enabled())
}

func TestJWTService_ExtractTokenFromHeader(t *testing.T) {
	svc := NewJWTService(testJWTSecret, time.Hour)

	token, err := svc.ExtractTokenFromHeader("Bearer abc.def")
	require.NoError(t, err)
	assert.Equal(t, "abc.def", token)

	_, err = svc.ExtractTokenFromHeader("")
	assert.Error(t, err)
	_, err = svc.ExtractTokenFromHeader("Basic dTpw")
	assert.Error(t, err)
}

func TestAuthMiddleware_OptionalAuth(t *testing.T) {
	jwtSvc := NewJWTService(testJWTSecret, time.Hour)
	mw := NewAuthMiddleware(jwtSvc)

	app := fiber.New()
	app.Get("/", mw.OptionalAuth(), func(c *fiber.Ctx) error {
		return c.SendString("user=" + shared.LocalUserID(c))
	})

	token, err := jwtSvc.ToJWT("u1")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		status int
		body   string
	}{
		{"anonymous", "", http.StatusOK, "user="},
		{"valid token", "Bearer " + token, http.StatusOK, "user=u1"},
		{"bad token", "Bearer nope", http.StatusUnauthorized, ""},
		{"wrong scheme", "Token " + token, http.StatusUnauthorized, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(fiber.HeaderAuthorization, tt.header)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)

			if tt.body != "" {
				body := make([]byte, 32)
				n, _ := resp.Body.Read(body)
				assert.Equal(t, tt.body, string(body[:n]))
			}
		})
	}
}

func TestAuthMiddleware_DisabledIgnoresTokens(t *testing.T) {
	mw := NewAuthMiddleware(NewJWTService("", time.Hour))

	app := fiber.New()
	app.Get("/", mw.OptionalAuth(), func(c *fiber.Ctx) error {
		return c.SendString("user=" + shared.LocalUserID(c))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer whatever")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
