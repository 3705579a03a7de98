// Package service contains the business logic between handlers and repositories.
package service

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"mentorhub/internal/models"
	"mentorhub/internal/repository"
	"mentorhub/internal/validation"

	"gorm.io/gorm"
)

// PageSize is the fixed page size of the published article listing.
const PageSize = 10

// ArticleService implements article browsing and authoring logic.
type ArticleService struct {
	articleRepo repository.ArticleRepository
}

// NewArticleService creates a new ArticleService.
func NewArticleService(articleRepo repository.ArticleRepository) *ArticleService {
	return &ArticleService{articleRepo: articleRepo}
}

// ArticlePage is the listing view-model: one page of published articles plus
// pagination metadata.
type ArticlePage struct {
	Articles    []*models.Article `json:"articles"`
	Page        int               `json:"page"`
	Pages       int               `json:"pages"`
	Total       int64             `json:"total"`
	HasNext     bool              `json:"has_next"`
	HasPrevious bool              `json:"has_previous"`
}

// ArticleInput carries the authoring form fields. The creating user is never
// taken from the form.
type ArticleInput struct {
	Title   string `json:"title" form:"title"`
	Slug    string `json:"slug" form:"slug"`
	Content string `json:"content" form:"content"`
	Status  string `json:"status" form:"status"`
}

// ListPublished returns the requested page of published articles. Bad page
// input never errors: a non-integer value falls back to page 1, an integer
// outside [1, pages] falls back to the last page.
func (s *ArticleService) ListPublished(ctx context.Context, pageParam string) (*ArticlePage, error) {
	total, err := s.articleRepo.CountPublished(ctx)
	if err != nil {
		return nil, err
	}

	pages := int((total + PageSize - 1) / PageSize)
	if pages < 1 {
		pages = 1
	}

	page, convErr := strconv.Atoi(strings.TrimSpace(pageParam))
	if convErr != nil {
		page = 1
	} else if page < 1 || page > pages {
		page = pages
	}

	articles, err := s.articleRepo.ListPublished(ctx, PageSize, (page-1)*PageSize)
	if err != nil {
		return nil, err
	}

	return &ArticlePage{
		Articles:    articles,
		Page:        page,
		Pages:       pages,
		Total:       total,
		HasNext:     page < pages,
		HasPrevious: page > 1,
	}, nil
}

// GetPublished returns the published article with the given slug.
func (s *ArticleService) GetPublished(ctx context.Context, slug string) (*models.Article, error) {
	article, err := s.articleRepo.GetPublishedBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Article", slug)
		}
		return nil, err
	}
	return article, nil
}

// Create validates the form and persists a new article for userID. The
// status defaults to draft when the form omits it.
func (s *ArticleService) Create(ctx context.Context, userID uint, in ArticleInput) (*models.Article, error) {
	status := models.ArticleStatus(in.Status)
	if in.Status == "" {
		status = models.ArticleDraft
	}

	if fieldErrs := validation.ValidateArticleForm(in.Title, in.Slug, in.Content, status); fieldErrs.HasErrors() {
		return nil, models.NewFieldValidationError(fieldErrs)
	}

	article := &models.Article{
		Title:   in.Title,
		Slug:    in.Slug,
		Content: in.Content,
		Status:  status,
		UserID:  userID,
	}
	if err := s.articleRepo.Create(ctx, article); err != nil {
		return nil, err
	}
	return article, nil
}

// Edit loads the article, applies validated changes, and persists. The
// creating user is never re-assigned, and the slug is frozen once the
// article has been published.
func (s *ArticleService) Edit(ctx context.Context, id uint, in ArticleInput) (*models.Article, error) {
	article, err := s.articleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Article", id)
		}
		return nil, err
	}

	status := models.ArticleStatus(in.Status)
	if in.Status == "" {
		status = article.Status
	}

	fieldErrs := validation.ValidateArticleForm(in.Title, in.Slug, in.Content, status)
	if article.Status == models.ArticlePublished && in.Slug != article.Slug {
		fieldErrs.Add("slug", "Slug cannot be changed after publication.")
	}
	if fieldErrs.HasErrors() {
		return nil, models.NewFieldValidationError(fieldErrs)
	}

	article.Title = in.Title
	article.Slug = in.Slug
	article.Content = in.Content
	article.Status = status

	if err := s.articleRepo.Update(ctx, article); err != nil {
		return nil, err
	}
	return article, nil
}

// ListDrafts returns every unpublished article created by userID.
func (s *ArticleService) ListDrafts(ctx context.Context, userID uint) ([]*models.Article, error) {
	return s.articleRepo.ListDraftsByUser(ctx, userID)
}
