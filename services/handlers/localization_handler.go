package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/lac-hong-legacy/name_api/dto"
	"github.com/lac-hong-legacy/name_api/shared"
)

type LocalizationHandler struct {
	localizationSvc LocalizationServiceInterface
}

func NewLocalizationHandler(localizationSvc LocalizationServiceInterface) *LocalizationHandler {
	return &LocalizationHandler{
		localizationSvc: localizationSvc,
	}
}

// @Summary Create Name Localization
// @Description Generates short, medium and long localized variants of a name and stores them
// @Tags localization
// @Accept  json
// @Produce json
// @Param createLocalizationRequest body dto.CreateLocalizationRequest true "Localization request"
// @Success 201 {object} shared.Response{data=dto.LocalizationResponse}
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 429 {object} shared.Response{data=dto.RateLimitInfo}
// @Router /api/v1/localizations [post]
func (h *LocalizationHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateLocalizationRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}

	var payloadUser string
	if req.UserID != nil {
		payloadUser = *req.UserID
	}
	userID, err := bindUser(c, payloadUser)
	if err != nil {
		return err
	}
	if userID != "" {
		req.UserID = &userID
	}

	if err := req.Validate(); err != nil {
		return validationFailed(c, err)
	}

	res, err := h.localizationSvc.Create(c.UserContext(), req)
	if err != nil {
		return err
	}

	return shared.ResponseCreated(c, res)
}

// @Summary Get Localization
// @Description Returns a localization request with its variants, or null data when it does not exist
// @Tags localization
// @Produce json
// @Param id path string true "Localization ID"
// @Success 200 {object} shared.Response{data=dto.LocalizationResponse}
// @Router /api/v1/localizations/{id} [get]
func (h *LocalizationHandler) GetByID(c *fiber.Ctx) error {
	res, err := h.localizationSvc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	if res == nil {
		return shared.ResponseNull(c)
	}

	c.Set(fiber.HeaderCacheControl, "max-age=60")
	return shared.ResponseOK(c, res)
}

// @Summary Recent Localizations
// @Description Public feed of the most recent requests; user ids are never included
// @Tags localization
// @Produce json
// @Param limit query int false "Page size (max 50)"
// @Success 200 {object} shared.Response{data=[]dto.LocalizationResponse}
// @Router /api/v1/localizations/recent [get]
func (h *LocalizationHandler) ListRecent(c *fiber.Ctx) error {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return shared.NewBadRequestError(err, "limit must be a positive integer")
		}
		limit = parsed
	}

	res, err := h.localizationSvc.ListRecent(c.UserContext(), limit)
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, res)
}
