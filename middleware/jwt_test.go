package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scholarship/config"
	"scholarship/middleware"
)

func setupApp() *fiber.App {
	config.AppConfig = &config.Config{JWTKey: "test-secret"}

	app := fiber.New()
	app.Get("/me", middleware.JWTMiddleware, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"userId": c.Locals("userId"),
			"role":   c.Locals("role"),
		})
	})
	app.Get("/admin-only", middleware.JWTMiddleware, middleware.AdminMiddleware, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	app.Get("/open", middleware.OptionalJWTMiddleware, func(c *fiber.Ctx) error {
		userId, _ := c.Locals("userId").(uint)
		return c.JSON(fiber.Map{"userId": userId})
	})
	return app
}

func get(t *testing.T, app *fiber.App, path, token string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("x-auth-token", token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestJWTRoundtrip(t *testing.T) {
	app := setupApp()

	token, err := middleware.GenerateJWT(42, "student1", "user")
	require.NoError(t, err)

	resp := get(t, app, "/me", token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestJWTMissingToken(t *testing.T) {
	app := setupApp()

	resp := get(t, app, "/me", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestJWTTamperedToken(t *testing.T) {
	app := setupApp()

	token, err := middleware.GenerateJWT(42, "student1", "user")
	require.NoError(t, err)

	resp := get(t, app, "/me", token+"x")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestJWTSignedWithDifferentKey(t *testing.T) {
	app := setupApp()

	config.AppConfig.JWTKey = "other-secret"
	token, err := middleware.GenerateJWT(42, "student1", "user")
	require.NoError(t, err)
	config.AppConfig.JWTKey = "test-secret"

	resp := get(t, app, "/me", token)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestJWTNonNumericUserIDClaim(t *testing.T) {
	app := setupApp()

	// Correctly signed token with a malformed userId claim must fail the
	// request, not panic the handler
	claims := jwt.MapClaims{
		"userId":   "forty-two",
		"username": "student1",
		"role":     "user",
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	resp := get(t, app, "/me", token)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestOptionalJWT(t *testing.T) {
	app := setupApp()

	// Anonymous requests pass through with no principal
	resp := get(t, app, "/open", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// A valid token attaches the principal
	token, err := middleware.GenerateJWT(7, "student1", "user")
	require.NoError(t, err)
	resp = get(t, app, "/open", token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// A bogus token is still rejected
	resp = get(t, app, "/open", "not-a-token")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAdminGate(t *testing.T) {
	app := setupApp()

	userToken, err := middleware.GenerateJWT(1, "student1", "user")
	require.NoError(t, err)
	adminToken, err := middleware.GenerateJWT(2, "admin1", "admin")
	require.NoError(t, err)

	resp := get(t, app, "/admin-only", userToken)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = get(t, app, "/admin-only", adminToken)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
