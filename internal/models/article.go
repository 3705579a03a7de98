package models

import (
	"time"

	"gorm.io/gorm"
)

// ArticleStatus is the lifecycle state of an article.
type ArticleStatus string

const (
	// ArticleDraft is visible only to the creating user.
	ArticleDraft ArticleStatus = "draft"
	// ArticlePublished is visible to all authenticated readers.
	ArticlePublished ArticleStatus = "published"
)

// ValidArticleStatus reports whether s is a known lifecycle state.
func ValidArticleStatus(s ArticleStatus) bool {
	return s == ArticleDraft || s == ArticlePublished
}

// Article represents an authored article in the MentorHub application.
// The slug is unique and must not change once the article is published.
type Article struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Title     string         `gorm:"not null" json:"title" form:"title"`
	Slug      string         `gorm:"unique;not null;index" json:"slug" form:"slug"`
	Content   string         `gorm:"type:text;not null" json:"content" form:"content"`
	Status    ArticleStatus  `gorm:"type:varchar(16);not null;default:'draft';index" json:"status" form:"status"`
	UserID    uint           `gorm:"not null;index" json:"user_id"`
	User      User           `gorm:"foreignKey:UserID" json:"user"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
