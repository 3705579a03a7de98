package service

import (
	"context"
	"errors"
	"strings"

	"mentorhub/internal/middleware"
	"mentorhub/internal/models"
	"mentorhub/internal/notifications"
	"mentorhub/internal/repository"

	"gorm.io/gorm"
)

const maxCommentLen = 10000

// CommentService implements comment submission on articles.
type CommentService struct {
	commentRepo repository.CommentRepository
	articleRepo repository.ArticleRepository
	userRepo    repository.UserRepository
	notifier    *notifications.Notifier
}

// NewCommentService creates a new CommentService. notifier may be nil, in
// which case no notifications are published.
func NewCommentService(commentRepo repository.CommentRepository, articleRepo repository.ArticleRepository, userRepo repository.UserRepository, notifier *notifications.Notifier) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		articleRepo: articleRepo,
		userRepo:    userRepo,
		notifier:    notifier,
	}
}

// PostCommentInput carries a comment submission.
type PostCommentInput struct {
	ArticleID uint
	UserID    uint
	Comment   string
}

// PostComment stores the comment and returns every comment on the article in
// creation order. A blank comment (empty or whitespace-only) stores nothing
// and still returns the current list.
func (s *CommentService) PostComment(ctx context.Context, in PostCommentInput) ([]*models.ArticleComment, error) {
	article, err := s.articleRepo.GetByID(ctx, in.ArticleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Article", in.ArticleID)
		}
		return nil, err
	}

	text := strings.TrimSpace(in.Comment)
	if len(text) > maxCommentLen {
		return nil, models.NewValidationError("Comment is too long")
	}

	if text != "" {
		comment := &models.ArticleComment{
			ArticleID: article.ID,
			UserID:    in.UserID,
			Comment:   text,
		}
		if err := s.commentRepo.Create(ctx, comment); err != nil {
			return nil, err
		}
		middleware.CommentsPosted.Inc()

		if s.notifier != nil {
			commenter, uerr := s.userRepo.GetByID(ctx, in.UserID)
			if uerr == nil {
				if nerr := s.notifier.NotifyArticleCommented(ctx, article, commenter); nerr != nil {
					middleware.Logger.WarnContext(ctx, "Failed to publish comment notification", "error", nerr, "article_id", article.ID)
				}
			}
		}
	}

	return s.commentRepo.ListByArticle(ctx, in.ArticleID)
}
