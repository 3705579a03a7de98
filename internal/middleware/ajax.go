package middleware

import (
	"mentorhub/internal/models"

	"github.com/gofiber/fiber/v2"
)

// AjaxRequired rejects requests that are not marked as originating from an
// in-page script call. Browsers set X-Requested-With on XHR/fetch wrappers;
// a plain page navigation never carries it.
func AjaxRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Get("X-Requested-With") != "XMLHttpRequest" {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("This endpoint only accepts AJAX requests"))
		}
		return c.Next()
	}
}
