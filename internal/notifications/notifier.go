// Package notifications publishes user notification events to Redis channels.
// Delivery (fan-out to clients) is owned by a separate consumer and is out of
// scope here.
package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"mentorhub/internal/models"

	"github.com/redis/go-redis/v9"
)

// Notifier provides helpers to publish notifications into Redis channels
type Notifier struct {
	rdb *redis.Client
}

// NewNotifier creates a new Notifier instance using the provided Redis client.
func NewNotifier(rdb *redis.Client) *Notifier {
	return &Notifier{rdb: rdb}
}

// UserChannel returns the notification channel name for a user.
func UserChannel(userID uint) string {
	return fmt.Sprintf("notifications:user:%d", userID)
}

// articleCommentedEvent is the payload published when an article receives a comment.
type articleCommentedEvent struct {
	Type        string    `json:"type"`
	ArticleID   uint      `json:"article_id"`
	ArticleSlug string    `json:"article_slug"`
	Title       string    `json:"title"`
	CommenterID uint      `json:"commenter_id"`
	Commenter   string    `json:"commenter"`
	At          time.Time `json:"at"`
}

// NotifyArticleCommented publishes an "article commented" event to the
// article author's channel.
func (n *Notifier) NotifyArticleCommented(ctx context.Context, article *models.Article, commenter *models.User) error {
	if n == nil || n.rdb == nil {
		return nil
	}

	payload, err := json.Marshal(articleCommentedEvent{
		Type:        "article_commented",
		ArticleID:   article.ID,
		ArticleSlug: article.Slug,
		Title:       article.Title,
		CommenterID: commenter.ID,
		Commenter:   commenter.Username,
		At:          time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	return n.rdb.Publish(ctx, UserChannel(article.UserID), payload).Err()
}
