package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lac-hong-legacy/name_api/dto"
	"github.com/lac-hong-legacy/name_api/shared"
)

type FavoriteHandler struct {
	favoriteSvc FavoriteServiceInterface
}

func NewFavoriteHandler(favoriteSvc FavoriteServiceInterface) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteSvc: favoriteSvc,
	}
}

// @Summary Add Favorite
// @Description Saves a variant of a localization request to the user's favorites
// @Tags favorites
// @Accept  json
// @Produce json
// @Param addFavoriteRequest body dto.AddFavoriteRequest true "Favorite"
// @Success 201 {object} shared.Response{data=dto.FavoriteResponse}
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 404 {object} shared.Response
// @Failure 409 {object} shared.Response
// @Router /api/v1/favorites [post]
func (h *FavoriteHandler) Add(c *fiber.Ctx) error {
	var req dto.AddFavoriteRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}

	userID, err := bindUser(c, req.UserID)
	if err != nil {
		return err
	}
	req.UserID = userID

	if err := req.Validate(); err != nil {
		return validationFailed(c, err)
	}

	res, err := h.favoriteSvc.Add(c.UserContext(), req)
	if err != nil {
		return err
	}

	return shared.ResponseCreated(c, res)
}

// @Summary Remove Favorite
// @Description Deletes a favorite owned by the user. removed is false when it does not exist or belongs to someone else
// @Tags favorites
// @Produce json
// @Param favoriteId path string true "Favorite ID"
// @Param user_id query string false "Owner (taken from the token when authenticated)"
// @Success 200 {object} shared.Response{data=dto.RemoveFavoriteResponse}
// @Router /api/v1/favorites/{favoriteId} [delete]
func (h *FavoriteHandler) Remove(c *fiber.Ctx) error {
	userID, err := bindUser(c, c.Query("user_id"))
	if err != nil {
		return err
	}

	req := dto.RemoveFavoriteRequest{
		UserID:     userID,
		FavoriteID: c.Params("favoriteId"),
	}
	if err := req.Validate(); err != nil {
		return validationFailed(c, err)
	}

	removed, err := h.favoriteSvc.Remove(c.UserContext(), req)
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, dto.RemoveFavoriteResponse{Removed: removed})
}

// @Summary User Favorites
// @Description Lists favorited requests with all their variants, most recently favorited first
// @Tags favorites
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} shared.Response{data=[]dto.LocalizationResponse}
// @Router /api/v1/users/{userId}/favorites [get]
func (h *FavoriteHandler) ListForUser(c *fiber.Ctx) error {
	userID, err := bindUser(c, c.Params("userId"))
	if err != nil {
		return err
	}

	res, err := h.favoriteSvc.ListForUser(c.UserContext(), userID)
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, res)
}
