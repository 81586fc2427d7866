package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"lms/config"
	"lms/database"
	"lms/middleware"
	"lms/models"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupDB points the global database instance at a fresh SQLite file for
// one test and returns the handle
func SetupDB(t *testing.T) *gorm.DB {
	t.Helper()

	config.AppConfig = &config.Config{
		Port:                      "3000",
		DBDriver:                  "sqlite",
		DBName:                    filepath.Join(t.TempDir(), "test.db"),
		JWTKey:                    "test-secret",
		NotificationRetentionDays: 90,
		UploadDir:                 t.TempDir(),
	}

	db, err := gorm.Open(sqlite.Open(config.AppConfig.DBName), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}
	return db
}

// CreateUser inserts an account and returns it with a bearer token
func CreateUser(t *testing.T, name, email, role string) (models.User, string) {
	t.Helper()

	user := models.User{Name: name, Email: email, Password: "secret123", Role: role}
	if err := database.Database.Db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	return user, token
}

// Envelope mirrors the JsonResponse body shape
type Envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// PerformJSON runs a JSON request through the app and decodes the envelope
func PerformJSON(t *testing.T, app *fiber.App, method, target string, body interface{}, token string) (*http.Response, Envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	var env Envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil && err != io.EOF {
		t.Fatalf("failed to decode response envelope: %v", err)
	}
	return resp, env
}

// DecodeData unmarshals the envelope's data field into out
func DecodeData(t *testing.T, env Envelope, out interface{}) {
	t.Helper()

	if err := json.Unmarshal(env.Data, out); err != nil {
		t.Fatalf("failed to decode response data: %v", err)
	}
}
