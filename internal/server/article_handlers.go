package server

import (
	"mentorhub/internal/models"
	"mentorhub/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetArticles handles GET /api/articles?page=N
func (s *Server) GetArticles(c *fiber.Ctx) error {
	page, err := s.articleService.ListPublished(c.Context(), c.Query("page"))
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(page)
}

// GetArticle handles GET /api/articles/:slug
func (s *Server) GetArticle(c *fiber.Ctx) error {
	slug := c.Params("slug")

	article, err := s.articleService.GetPublished(c.Context(), slug)
	if err != nil {
		return respondAppError(c, err)
	}

	comments, err := s.commentRepo.ListByArticle(c.Context(), article.ID)
	if err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(fiber.Map{
		"article":  article,
		"comments": comments,
	})
}

// CreateArticle handles POST /api/articles
func (s *Server) CreateArticle(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var in service.ArticleInput
	if err := c.BodyParser(&in); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	article, err := s.articleService.Create(c.Context(), userID, in)
	if err != nil {
		return respondAppError(c, err)
	}

	c.Set("Location", "/api/articles/"+article.Slug)
	return c.Status(fiber.StatusCreated).JSON(article)
}

// EditArticle handles PUT /api/articles/:id
func (s *Server) EditArticle(c *fiber.Ctx) error {
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	var in service.ArticleInput
	if err := c.BodyParser(&in); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	article, svcErr := s.articleService.Edit(c.Context(), id, in)
	if svcErr != nil {
		return respondAppError(c, svcErr)
	}

	c.Set("Location", "/api/articles/"+article.Slug)
	return c.JSON(article)
}

// GetDrafts handles GET /api/articles/drafts
func (s *Server) GetDrafts(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	drafts, err := s.articleService.ListDrafts(c.Context(), userID)
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(fiber.Map{
		"articles": drafts,
	})
}
