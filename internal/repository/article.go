package repository

import (
	"context"

	"mentorhub/internal/cache"
	"mentorhub/internal/models"

	"gorm.io/gorm"
)

// ArticleRepository defines the interface for article data operations
type ArticleRepository interface {
	Create(ctx context.Context, article *models.Article) error
	Update(ctx context.Context, article *models.Article) error
	GetByID(ctx context.Context, id uint) (*models.Article, error)
	GetPublishedBySlug(ctx context.Context, slug string) (*models.Article, error)
	ListPublished(ctx context.Context, limit, offset int) ([]*models.Article, error)
	CountPublished(ctx context.Context) (int64, error)
	ListDraftsByUser(ctx context.Context, userID uint) ([]*models.Article, error)
}

type articleRepository struct {
	db *gorm.DB
}

// NewArticleRepository creates a new article repository
func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) Create(ctx context.Context, article *models.Article) error {
	if err := r.db.WithContext(ctx).Create(article).Error; err != nil {
		return translateUniqueViolation(err)
	}
	return nil
}

func (r *articleRepository) Update(ctx context.Context, article *models.Article) error {
	if err := r.db.WithContext(ctx).Save(article).Error; err != nil {
		return translateUniqueViolation(err)
	}
	cache.InvalidateArticle(ctx, article.Slug)
	return nil
}

func (r *articleRepository) GetByID(ctx context.Context, id uint) (*models.Article, error) {
	var article models.Article
	if err := r.db.WithContext(ctx).Preload("User").First(&article, id).Error; err != nil {
		return nil, err
	}
	return &article, nil
}

// GetPublishedBySlug fetches a published article by slug through the
// cache-aside helper. Draft articles are never cached or returned.
func (r *articleRepository) GetPublishedBySlug(ctx context.Context, slug string) (*models.Article, error) {
	var article models.Article
	err := cache.Aside(ctx, cache.ArticleKey(slug), &article, cache.ArticleTTL, func() error {
		return r.db.WithContext(ctx).
			Preload("User").
			Where("slug = ? AND status = ?", slug, models.ArticlePublished).
			First(&article).Error
	})
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// ListPublished returns a stable page of published articles. The ordering is
// fixed so pagination stays deterministic.
func (r *articleRepository) ListPublished(ctx context.Context, limit, offset int) ([]*models.Article, error) {
	var articles []*models.Article
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("status = ?", models.ArticlePublished).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&articles).Error
	return articles, err
}

func (r *articleRepository) CountPublished(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Article{}).
		Where("status = ?", models.ArticlePublished).
		Count(&count).Error
	return count, err
}

func (r *articleRepository) ListDraftsByUser(ctx context.Context, userID uint) ([]*models.Article, error) {
	var drafts []*models.Article
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, models.ArticleDraft).
		Order("created_at DESC, id DESC").
		Find(&drafts).Error
	return drafts, err
}
