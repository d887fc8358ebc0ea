package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/lac-hong-legacy/name_api/dto"
	"github.com/lac-hong-legacy/name_api/shared"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockLocalizationService struct {
	mock.Mock
}

func (m *MockLocalizationService) Create(ctx context.Context, req dto.CreateLocalizationRequest) (*dto.LocalizationResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.LocalizationResponse), args.Error(1)
}

func (m *MockLocalizationService) GetByID(ctx context.Context, id string) (*dto.LocalizationResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.LocalizationResponse), args.Error(1)
}

func (m *MockLocalizationService) ListRecent(ctx context.Context, limit int) ([]dto.LocalizationResponse, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.LocalizationResponse), args.Error(1)
}

type MockFavoriteService struct {
	mock.Mock
}

func (m *MockFavoriteService) Add(ctx context.Context, req dto.AddFavoriteRequest) (*dto.FavoriteResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.FavoriteResponse), args.Error(1)
}

func (m *MockFavoriteService) Remove(ctx context.Context, req dto.RemoveFavoriteRequest) (bool, error) {
	args := m.Called(ctx, req)
	return args.Bool(0), args.Error(1)
}

func (m *MockFavoriteService) ListForUser(ctx context.Context, userID string) ([]dto.LocalizationResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.LocalizationResponse), args.Error(1)
}

type MockRateLimitService struct {
	mock.Mock
}

func (m *MockRateLimitService) Check(ctx context.Context, ip string, userID *string) (*dto.RateLimitInfo, error) {
	args := m.Called(ctx, ip, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.RateLimitInfo), args.Error(1)
}

type envelope struct {
	Code    int                   `json:"code"`
	Message string                `json:"message"`
	Data    json.RawMessage       `json:"data"`
	Errors  []dto.ValidationError `json:"errors"`
}

// newTestApp returns an app whose requests carry tokenUser as the
// authenticated user when it is non-empty.
func newTestApp(tokenUser string) *fiber.App {
	app := fiber.New(fiber.Config{
		JSONEncoder:  shared.JSONMarshal,
		JSONDecoder:  shared.JSONUnmarshal,
		ErrorHandler: shared.ResponseError,
	})
	app.Use(func(c *fiber.Ctx) error {
		if tokenUser != "" {
			c.Locals(shared.UserID, tokenUser)
		}
		return c.Next()
	})
	return app
}

func call(t *testing.T, app *fiber.App, method, path string, body interface{}) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := sonic.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env envelope
	if len(raw) > 0 {
		require.NoError(t, sonic.Unmarshal(raw, &env), string(raw))
	}
	return resp.StatusCode, env
}

func callRaw(t *testing.T, app *fiber.App, method, path, body string) int {
	t.Helper()

	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}
