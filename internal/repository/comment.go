package repository

import (
	"context"

	"mentorhub/internal/models"

	"gorm.io/gorm"
)

// CommentRepository defines interface for article comment operations
type CommentRepository interface {
	Create(ctx context.Context, comment *models.ArticleComment) error
	ListByArticle(ctx context.Context, articleID uint) ([]*models.ArticleComment, error)
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.ArticleComment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

// ListByArticle returns the article's comments in creation order.
func (r *commentRepository) ListByArticle(
	ctx context.Context,
	articleID uint,
) ([]*models.ArticleComment, error) {
	var comments []*models.ArticleComment
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("article_id = ?", articleID).
		Order("created_at ASC, id ASC").
		Find(&comments).Error
	return comments, err
}
