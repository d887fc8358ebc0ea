package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lac-hong-legacy/name_api/dto"
	"github.com/lac-hong-legacy/name_api/shared"
)

type RateLimitHandler struct {
	rateLimitSvc RateLimitServiceInterface
}

func NewRateLimitHandler(rateLimitSvc RateLimitServiceInterface) *RateLimitHandler {
	return &RateLimitHandler{
		rateLimitSvc: rateLimitSvc,
	}
}

// @Summary Check Rate Limit
// @Description Counts one request for the given ip (and user) and reports whether it is admitted
// @Tags rate-limit
// @Accept  json
// @Produce json
// @Param rateLimitCheckRequest body dto.RateLimitCheckRequest true "Caller"
// @Success 200 {object} shared.Response{data=dto.RateLimitInfo}
// @Failure 400 {object} dto.ValidationErrorResponse
// @Router /api/v1/rate-limit/check [post]
func (h *RateLimitHandler) Check(c *fiber.Ctx) error {
	var req dto.RateLimitCheckRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}

	if err := req.Validate(); err != nil {
		return validationFailed(c, err)
	}

	info, err := h.rateLimitSvc.Check(c.UserContext(), req.IPAddress, req.UserID)
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, info)
}
