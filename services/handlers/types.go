package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/lac-hong-legacy/name_api/dto"
	"github.com/lac-hong-legacy/name_api/shared"
)

type LocalizationServiceInterface interface {
	Create(ctx context.Context, req dto.CreateLocalizationRequest) (*dto.LocalizationResponse, error)
	GetByID(ctx context.Context, id string) (*dto.LocalizationResponse, error)
	ListRecent(ctx context.Context, limit int) ([]dto.LocalizationResponse, error)
}

type FavoriteServiceInterface interface {
	Add(ctx context.Context, req dto.AddFavoriteRequest) (*dto.FavoriteResponse, error)
	Remove(ctx context.Context, req dto.RemoveFavoriteRequest) (bool, error)
	ListForUser(ctx context.Context, userID string) ([]dto.LocalizationResponse, error)
}

type RateLimitServiceInterface interface {
	Check(ctx context.Context, ip string, userID *string) (*dto.RateLimitInfo, error)
}

var errUserMismatch = shared.NewForbiddenError(nil, "user_id does not match the authenticated user")

// bindUser reconciles a payload user id with the authenticated one. With no
// token the payload wins; with a token an empty payload takes the token's id
// and a different one is forbidden.
func bindUser(c *fiber.Ctx, payload string) (string, error) {
	tokenUser := shared.LocalUserID(c)
	if tokenUser == "" {
		return payload, nil
	}
	if payload == "" || payload == tokenUser {
		return tokenUser, nil
	}
	return "", errUserMismatch
}

func validationFailed(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.CreateValidationErrorResponse(err))
}
