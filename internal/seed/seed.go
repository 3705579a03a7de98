// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"regexp"
	"strings"
	"time"

	"mentorhub/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumArticles int
	ShouldClean bool
}

const seedPassword = "password123"

var slugStrip = regexp.MustCompile(`[^a-z0-9-]+`)

// Seed populates the database with test data
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("🌱 Starting database seeding with %d users and %d articles...", opts.NumUsers, opts.NumArticles)

	gofakeit.Seed(time.Now().UnixNano())

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("⚠️  Warning: Could not clear all existing data, but continuing anyway...")
		}
	}

	users, err := createUsers(db, opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("✓ %d test users created", len(users))

	articles, err := createArticles(db, users, opts.NumArticles)
	if err != nil {
		return fmt.Errorf("failed to create articles: %w", err)
	}
	log.Printf("✓ %d articles created", len(articles))

	comments, err := createComments(db, users, articles)
	if err != nil {
		return fmt.Errorf("failed to create comments: %w", err)
	}
	log.Printf("✓ %d comments created", comments)

	log.Println("🎉 Database seeding completed successfully!")
	return nil
}

func clearData(db *gorm.DB) error {
	log.Println("🗑️  Clearing existing data...")
	sql := `TRUNCATE TABLE article_comments, articles, users RESTART IDENTITY CASCADE;`
	return db.Exec(sql).Error
}

// createUsers creates users with a roughly one-in-four mentor share. Every
// seeded account gets the same known password.
func createUsers(db *gorm.DB, count int) ([]*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	users := make([]*models.User, 0, count)
	for i := 0; i < count; i++ {
		role := models.RoleStudent
		if i%4 == 0 {
			role = models.RoleMentor
		}
		users = append(users, &models.User{
			Username: fmt.Sprintf("%s%d", strings.ToLower(gofakeit.Username()), i),
			Email:    fmt.Sprintf("user%d@%s", i, gofakeit.DomainName()),
			Role:     role,
			Password: string(hashed),
		})
	}

	if err := db.Create(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// createArticles attributes articles to mentor users only, about one in five
// left as a draft.
func createArticles(db *gorm.DB, users []*models.User, count int) ([]*models.Article, error) {
	var mentors []*models.User
	for _, u := range users {
		if u.IsMentor() {
			mentors = append(mentors, u)
		}
	}
	if len(mentors) == 0 {
		return nil, fmt.Errorf("no mentor users to attribute articles to")
	}

	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	articles := make([]*models.Article, 0, count)
	for i := 0; i < count; i++ {
		author := mentors[r.Intn(len(mentors))]
		title := gofakeit.Sentence(5)
		status := models.ArticlePublished
		if i%5 == 0 {
			status = models.ArticleDraft
		}

		daysBack := r.Intn(90)
		article := &models.Article{
			Title:   title,
			Slug:    makeSlug(title, i),
			Content: gofakeit.Paragraph(3, 4, 10, "\n\n"),
			Status:  status,
			UserID:  author.ID,
		}
		article.CreatedAt = time.Now().Add(-time.Duration(daysBack) * 24 * time.Hour)
		articles = append(articles, article)
	}

	if err := db.Create(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}

// createComments adds up to five comments per published article.
func createComments(db *gorm.DB, users []*models.User, articles []*models.Article) (int, error) {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	var comments []*models.ArticleComment
	for _, a := range articles {
		if a.Status != models.ArticlePublished {
			continue
		}
		for n := r.Intn(6); n > 0; n-- {
			commenter := users[r.Intn(len(users))]
			comments = append(comments, &models.ArticleComment{
				ArticleID: a.ID,
				UserID:    commenter.ID,
				Comment:   gofakeit.Sentence(12),
			})
		}
	}
	if len(comments) == 0 {
		return 0, nil
	}

	if err := db.Create(&comments).Error; err != nil {
		return 0, err
	}
	return len(comments), nil
}

// makeSlug derives a unique URL slug from a title.
func makeSlug(title string, n int) string {
	slug := strings.ToLower(strings.TrimSuffix(title, "."))
	slug = strings.ReplaceAll(slug, " ", "-")
	slug = slugStrip.ReplaceAllString(slug, "")
	if len(slug) > 50 {
		slug = slug[:50]
	}
	slug = strings.Trim(slug, "-")
	return fmt.Sprintf("%s-%d", slug, n)
}
