// Package render produces the HTML fragments returned by AJAX endpoints.
package render

import (
	"html/template"
	"strings"

	"mentorhub/internal/models"
)

// commentFragment mirrors the partial used by the article page's comment
// list; interpolated values are auto-escaped.
var commentFragment = template.Must(template.New("comment").Parse(
	`<div class="article-comment" data-comment-id="{{.ID}}">` +
		`<strong class="comment-author">{{.User.Username}}</strong>` +
		`<span class="comment-date">{{.CreatedAt.Format "Jan 2, 2006 15:04"}}</span>` +
		`<p class="comment-text">{{.Comment}}</p>` +
		`</div>`))

// Comment renders a single comment fragment.
func Comment(c *models.ArticleComment) (string, error) {
	var b strings.Builder
	if err := commentFragment.Execute(&b, c); err != nil {
		return "", err
	}
	return b.String(), nil
}

// CommentList renders every comment fragment concatenated in the order given.
func CommentList(comments []*models.ArticleComment) (string, error) {
	var b strings.Builder
	for _, c := range comments {
		if err := commentFragment.Execute(&b, c); err != nil {
			return "", err
		}
	}
	return b.String(), nil
}
