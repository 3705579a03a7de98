package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	ArticleKeyPrefix = "article:%s"
	UserKeyPrefix    = "user:%d"
)

const (
	ArticleTTL = 10 * time.Minute
	UserTTL    = 5 * time.Minute
)

// ArticleKey returns the cache key for a published article detail, keyed by slug.
func ArticleKey(slug string) string {
	return fmt.Sprintf(ArticleKeyPrefix, slug)
}

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateArticle(ctx context.Context, slug string) {
	Invalidate(ctx, ArticleKey(slug))
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}
