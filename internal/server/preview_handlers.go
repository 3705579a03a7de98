package server

import (
	"strings"

	"mentorhub/internal/markdown"
	"mentorhub/internal/models"

	"github.com/gofiber/fiber/v2"
)

// previewPlaceholder is returned when there is no content to render.
const previewPlaceholder = "Nothing to display :("

// PreviewMarkdown handles POST /api/articles/preview. The route is registered
// for every method; anything except POST gets a 400.
func (s *Server) PreviewMarkdown(c *fiber.Ctx) error {
	if c.Method() != fiber.MethodPost {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request"))
	}

	var req struct {
		Content string `json:"content" form:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if strings.TrimSpace(req.Content) == "" {
		return c.Type("html", "utf-8").SendString(previewPlaceholder)
	}

	html, err := markdown.Render(req.Content)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Could not render markdown"))
	}

	return c.Type("html", "utf-8").SendString(html)
}
