package server

import (
	"mentorhub/internal/models"
	"mentorhub/internal/render"
	"mentorhub/internal/service"

	"github.com/gofiber/fiber/v2"
)

// PostComment handles POST /api/articles/comments. The route is registered
// for every method; anything except POST gets a 400. The response body is the
// article's full comment list rendered as HTML fragments.
func (s *Server) PostComment(c *fiber.Ctx) error {
	if c.Method() != fiber.MethodPost {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request"))
	}

	userID := c.Locals("userID").(uint)

	var req struct {
		ArticleID uint   `json:"article_id" form:"article_id"`
		Comment   string `json:"comment" form:"comment"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.ArticleID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid article ID"))
	}

	comments, err := s.commentService.PostComment(c.Context(), service.PostCommentInput{
		ArticleID: req.ArticleID,
		UserID:    userID,
		Comment:   req.Comment,
	})
	if err != nil {
		return respondAppError(c, err)
	}

	html, err := render.CommentList(comments)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	return c.Type("html", "utf-8").SendString(html)
}
