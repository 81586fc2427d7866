package settingsController_test

import (
	adminRoutes "lms/routers/adminRoutes"
	"lms/testutil"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp() *fiber.App {
	app := fiber.New()
	adminRoutes.SetupAdminRoutes(app)
	return app
}

func fetchSettings(t *testing.T, app *fiber.App) map[string]string {
	t.Helper()

	resp, env := testutil.PerformJSON(t, app, http.MethodGet, "/settings", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var settings map[string]string
	testutil.DecodeData(t, env, &settings)
	return settings
}

func TestSaveSettingsUpsert(t *testing.T) {
	testutil.SetupDB(t)
	app := newApp()

	_, token := testutil.CreateUser(t, "Admin", "admin@example.com", "admin")

	resp, _ := testutil.PerformJSON(t, app, http.MethodPost, "/settings",
		map[string]interface{}{"site_name": "Academy", "support_email": "help@example.com"}, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	settings := fetchSettings(t, app)
	assert.Equal(t, "Academy", settings["site_name"])
	assert.Equal(t, "help@example.com", settings["support_email"])

	// Re-submitting a key overwrites its value instead of duplicating it
	resp, _ = testutil.PerformJSON(t, app, http.MethodPost, "/settings",
		map[string]interface{}{"site_name": "Academy 2"}, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	settings = fetchSettings(t, app)
	assert.Equal(t, "Academy 2", settings["site_name"])
	assert.Equal(t, "help@example.com", settings["support_email"])
}

func TestSaveSettingsRequiresAdmin(t *testing.T) {
	testutil.SetupDB(t)
	app := newApp()

	_, token := testutil.CreateUser(t, "User", "user@example.com", "collaborator")

	resp, _ := testutil.PerformJSON(t, app, http.MethodPost, "/settings",
		map[string]interface{}{"site_name": "Nope"}, token)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, _ = testutil.PerformJSON(t, app, http.MethodPost, "/settings",
		map[string]interface{}{"site_name": "Nope"}, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestSaveSettingsEmptyBody(t *testing.T) {
	testutil.SetupDB(t)
	app := newApp()

	_, token := testutil.CreateUser(t, "Admin", "admin@example.com", "admin")

	resp, _ := testutil.PerformJSON(t, app, http.MethodPost, "/settings",
		map[string]interface{}{}, token)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
