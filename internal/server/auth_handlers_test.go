package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"mentorhub/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func authApp(s *Server) *fiber.App {
	app := fiber.New()
	app.Post("/api/auth/signup", s.Signup)
	app.Post("/api/auth/login", s.Login)
	return app
}

func postJSON(app *fiber.App, path string, body map[string]string) (*http.Response, error) {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	return app.Test(req)
}

func TestSignup(t *testing.T) {
	userRepo := new(MockUserRepository)
	s := newTestServer(userRepo, new(MockArticleRepository), new(MockCommentRepository))

	userRepo.On("UsernameExists", mock.Anything, "newmentor").Return(false, nil)
	userRepo.On("EmailExists", mock.Anything, "mentor@example.com").Return(false, nil)
	userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		return u.Username == "newmentor" && u.Role == models.RoleMentor && u.Password != "abc123"
	})).Return(nil)

	resp, err := postJSON(authApp(s), "/api/auth/signup", map[string]string{
		"username":         "newmentor",
		"email":            "mentor@example.com",
		"role":             "mentor",
		"password":         "abc123",
		"confirm_password": "abc123",
	})
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var body struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotEmpty(t, body.Token)
	assert.Equal(t, "newmentor", body.User.Username)
	userRepo.AssertExpectations(t)
}

func TestSignup_FieldErrorsAccumulate(t *testing.T) {
	userRepo := new(MockUserRepository)
	s := newTestServer(userRepo, new(MockArticleRepository), new(MockCommentRepository))

	userRepo.On("UsernameExists", mock.Anything, "bad-name").Return(false, nil)
	userRepo.On("EmailExists", mock.Anything, "taken@example.com").Return(true, nil)

	resp, err := postJSON(authApp(s), "/api/auth/signup", map[string]string{
		"username":         "bad-name",
		"email":            "taken@example.com",
		"role":             "wizard",
		"password":         "abc123",
		"confirm_password": "abc124",
	})
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var errResp models.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
	assert.Equal(t, []string{"Enter a valid username."}, errResp.Fields["username"])
	assert.Equal(t, []string{"User with this Email already exists."}, errResp.Fields["email"])
	assert.Equal(t, []string{"Select a valid role."}, errResp.Fields["role"])
	assert.Equal(t, []string{"Passwords don't match"}, errResp.Fields["password"])
}

func TestSignup_MissingFields(t *testing.T) {
	s := newTestServer(new(MockUserRepository), new(MockArticleRepository), new(MockCommentRepository))

	resp, err := postJSON(authApp(s), "/api/auth/signup", map[string]string{})
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var errResp models.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
	for _, field := range []string{"username", "email", "role", "password", "confirm_password"} {
		assert.Equal(t, []string{"This field is required."}, errResp.Fields[field], field)
	}
}

func TestLogin(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("abc123"), bcrypt.DefaultCost)

	userRepo := new(MockUserRepository)
	s := newTestServer(userRepo, new(MockArticleRepository), new(MockCommentRepository))

	userRepo.On("GetByEmail", mock.Anything, "user@example.com").
		Return(&models.User{ID: 1, Username: "user", Email: "user@example.com", Password: string(hashed)}, nil)

	t.Run("valid credentials", func(t *testing.T) {
		resp, err := postJSON(authApp(s), "/api/auth/login", map[string]string{
			"email":    "user@example.com",
			"password": "abc123",
		})
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("wrong password", func(t *testing.T) {
		resp, err := postJSON(authApp(s), "/api/auth/login", map[string]string{
			"email":    "user@example.com",
			"password": "wrong",
		})
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestLogin_UnknownEmail(t *testing.T) {
	userRepo := new(MockUserRepository)
	s := newTestServer(userRepo, new(MockArticleRepository), new(MockCommentRepository))

	userRepo.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, nil)

	resp, err := postJSON(authApp(s), "/api/auth/login", map[string]string{
		"email":    "nobody@example.com",
		"password": "abc123",
	})
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthRequired_NoToken(t *testing.T) {
	s := newTestServer(new(MockUserRepository), new(MockArticleRepository), new(MockCommentRepository))

	app := fiber.New()
	app.Get("/protected", s.AuthRequired(), func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/protected", nil))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthRequired_ValidToken(t *testing.T) {
	s := newTestServer(new(MockUserRepository), new(MockArticleRepository), new(MockCommentRepository))

	token, err := s.generateToken(7, "someone")
	require.NoError(t, err)

	app := fiber.New()
	app.Get("/protected", s.AuthRequired(), func(c *fiber.Ctx) error {
		assert.Equal(t, uint(7), c.Locals("userID"))
		return c.SendStatus(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuthRequired_GarbageToken(t *testing.T) {
	s := newTestServer(new(MockUserRepository), new(MockArticleRepository), new(MockCommentRepository))

	app := fiber.New()
	app.Get("/protected", s.AuthRequired(), func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
