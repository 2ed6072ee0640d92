package authController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"scholarship/config"
	"scholarship/database"
	"scholarship/models"
	authRoutes "scholarship/routers/authRoutes"
)

func setupTest(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{
		JWTKey:    "test-secret",
		SaltRound: bcrypt.MinCost,
	}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	authRoutes.SetupAuthRoutes(app)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, payload interface{}) *http.Response {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestRegister(t *testing.T) {
	app := setupTest(t)

	resp := postJSON(t, app, "/api/auth/register", fiber.Map{
		"username": "student1",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "User registered successfully", decodeBody(t, resp)["msg"])

	var user models.User
	require.NoError(t, database.Database.Db.Where("username = ?", "student1").First(&user).Error)
	assert.Equal(t, "user", user.Role)
	assert.NotEqual(t, "secret123", user.Password)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	app := setupTest(t)

	resp := postJSON(t, app, "/api/auth/register", fiber.Map{
		"username": "student1",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = postJSON(t, app, "/api/auth/register", fiber.Map{
		"username": "student1",
		"password": "another456",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "User already exists", decodeBody(t, resp)["msg"])

	var count int64
	database.Database.Db.Model(&models.User{}).Where("username = ?", "student1").Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestLogin(t *testing.T) {
	app := setupTest(t)

	resp := postJSON(t, app, "/api/auth/register", fiber.Map{
		"username": "student1",
		"password": "secret123",
		"role":     "admin",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = postJSON(t, app, "/api/auth/login", fiber.Map{
		"username": "student1",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.NotEmpty(t, body["token"])
	user := body["user"].(map[string]interface{})
	assert.Equal(t, "student1", user["username"])
	assert.Equal(t, "admin", user["role"])
}

func TestLoginInvalidCredentials(t *testing.T) {
	app := setupTest(t)

	resp := postJSON(t, app, "/api/auth/register", fiber.Map{
		"username": "student1",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Wrong password and unknown username must be indistinguishable
	resp = postJSON(t, app, "/api/auth/login", fiber.Map{
		"username": "student1",
		"password": "wrongpass",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid Credentials", decodeBody(t, resp)["msg"])

	resp = postJSON(t, app, "/api/auth/login", fiber.Map{
		"username": "nosuchuser",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid Credentials", decodeBody(t, resp)["msg"])
}
