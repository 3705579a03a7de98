package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"mentorhub/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func previewApp(t *testing.T) *fiber.App {
	t.Helper()
	s := newTestServer(new(MockUserRepository), new(MockArticleRepository), new(MockCommentRepository))

	app := fiber.New()
	app.All("/api/articles/preview", asUser(1), middleware.AjaxRequired(), s.PreviewMarkdown)
	return app
}

func previewRequest(method, content string, ajax bool) *http.Request {
	body, _ := json.Marshal(map[string]string{"content": content})
	req := httptest.NewRequest(method, "/api/articles/preview", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if ajax {
		req.Header.Set("X-Requested-With", "XMLHttpRequest")
	}
	return req
}

func TestPreviewMarkdown(t *testing.T) {
	app := previewApp(t)

	resp, err := app.Test(previewRequest(http.MethodPost, "# Hello\n\n<script>alert(1)</script>", true))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "<h1>Hello</h1>")
	assert.NotContains(t, string(body), "<script>")
	assert.Contains(t, string(body), "&lt;script&gt;")
}

func TestPreviewMarkdown_BlankContent(t *testing.T) {
	app := previewApp(t)

	tests := []struct {
		name    string
		content string
	}{
		{"empty", ""},
		{"whitespace only", "   \n\t"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(previewRequest(http.MethodPost, tt.content, true))
			require.NoError(t, err)
			defer func() { _ = resp.Body.Close() }()

			assert.Equal(t, http.StatusOK, resp.StatusCode)
			body, _ := io.ReadAll(resp.Body)
			assert.Equal(t, "Nothing to display :(", string(body))
		})
	}
}

func TestPreviewMarkdown_NonPostRejected(t *testing.T) {
	app := previewApp(t)

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		t.Run(method, func(t *testing.T) {
			resp, err := app.Test(previewRequest(method, "# Hello", true))
			require.NoError(t, err)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestPreviewMarkdown_NonAjaxRejected(t *testing.T) {
	app := previewApp(t)

	resp, err := app.Test(previewRequest(http.MethodPost, "# Hello", false))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
