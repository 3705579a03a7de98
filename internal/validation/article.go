package validation

import (
	"fmt"
	"strings"

	"mentorhub/internal/models"

	"regexp"
)

const maxTitleLen = 120

var articleSlugRegex = regexp.MustCompile(`^[a-z0-9-]{3,64}$`)

// ValidateArticleForm checks the article authoring form fields. Slug
// uniqueness is not checked here; the persistence layer's unique constraint
// is the guard and its violation is translated at the write boundary.
func ValidateArticleForm(title, slug, content string, status models.ArticleStatus) models.FieldErrors {
	fieldErrs := models.FieldErrors{}

	if strings.TrimSpace(title) == "" {
		fieldErrs.Add("title", "This field is required.")
	} else if len(title) > maxTitleLen {
		fieldErrs.Add("title", fmt.Sprintf("Ensure this value has at most %d characters.", maxTitleLen))
	}

	if slug == "" {
		fieldErrs.Add("slug", "This field is required.")
	} else if !articleSlugRegex.MatchString(slug) || strings.HasPrefix(slug, "-") || strings.HasSuffix(slug, "-") {
		fieldErrs.Add("slug", "Slug must be 3-64 characters of lowercase letters, numbers, and inner hyphens.")
	}

	if strings.TrimSpace(content) == "" {
		fieldErrs.Add("content", "This field is required.")
	}

	if status == "" {
		fieldErrs.Add("status", "This field is required.")
	} else if !models.ValidArticleStatus(status) {
		fieldErrs.Add("status", "Select a valid status.")
	}

	return fieldErrs
}
