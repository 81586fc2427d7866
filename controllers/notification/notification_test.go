package notificationController_test

import (
	"lms/models"
	notificationRoutes "lms/routers/notificationRoutes"
	"lms/testutil"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newApp() *fiber.App {
	app := fiber.New()
	notificationRoutes.SetupNotificationRoutes(app)
	return app
}

func strPtr(s string) *string { return &s }

func seedNotification(t *testing.T, db *gorm.DB, userID *string, title string) models.Notification {
	t.Helper()

	notification := models.Notification{UserID: userID, Title: title, Message: "..."}
	require.NoError(t, db.Create(&notification).Error)
	return notification
}

type listedNotification struct {
	ID     uint `json:"ID"`
	IsRead bool `json:"is_read"`
}

func listNotifications(t *testing.T, app *fiber.App, userID string) map[uint]bool {
	t.Helper()

	resp, env := testutil.PerformJSON(t, app, http.MethodGet, "/notifications?userId="+userID, nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var rows []listedNotification
	testutil.DecodeData(t, env, &rows)

	readState := make(map[uint]bool, len(rows))
	for _, row := range rows {
		readState[row.ID] = row.IsRead
	}
	return readState
}

func markRead(t *testing.T, app *fiber.App, userID string, notificationID uint) *http.Response {
	t.Helper()

	resp, _ := testutil.PerformJSON(t, app, http.MethodPost, "/notifications/mark-read",
		map[string]interface{}{"userId": userID, "notificationId": notificationID}, "")
	return resp
}

func TestPersonalReadStateIsolation(t *testing.T) {
	db := testutil.SetupDB(t)
	app := newApp()

	personal := seedNotification(t, db, strPtr("userA"), "Yours")

	// Another user marking someone else's personal notification is a
	// silent no-op, not an authorization error
	resp := markRead(t, app, "userB", personal.ID)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	stateA := listNotifications(t, app, "userA")
	assert.False(t, stateA[personal.ID])

	resp = markRead(t, app, "userA", personal.ID)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	stateA = listNotifications(t, app, "userA")
	assert.True(t, stateA[personal.ID])
}

func TestGlobalReadStateFanOut(t *testing.T) {
	db := testutil.SetupDB(t)
	app := newApp()

	global := seedNotification(t, db, nil, "For everyone")

	resp := markRead(t, app, "userA", global.ID)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.True(t, listNotifications(t, app, "userA")[global.ID])
	assert.False(t, listNotifications(t, app, "userB")[global.ID])
}

func TestMarkReadIdempotentForGlobals(t *testing.T) {
	db := testutil.SetupDB(t)
	app := newApp()

	global := seedNotification(t, db, nil, "For everyone")

	for i := 0; i < 2; i++ {
		resp := markRead(t, app, "userA", global.ID)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	var count int64
	require.NoError(t, db.Model(&models.NotificationRead{}).
		Where("user_id = ? AND notification_id = ?", "userA", global.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestMarkReadUnknownNotification(t *testing.T) {
	testutil.SetupDB(t)
	app := newApp()

	resp := markRead(t, app, "userA", 404)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestMarkAllReadCoverage(t *testing.T) {
	db := testutil.SetupDB(t)
	app := newApp()

	personal := seedNotification(t, db, strPtr("u1"), "Yours")
	global1 := seedNotification(t, db, nil, "Global one")
	global2 := seedNotification(t, db, nil, "Global two")
	otherPersonal := seedNotification(t, db, strPtr("u2"), "Not yours")

	resp, _ := testutil.PerformJSON(t, app, http.MethodPost, "/notifications/mark-all-read",
		map[string]interface{}{"userId": "u1"}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	state := listNotifications(t, app, "u1")
	assert.True(t, state[personal.ID])
	assert.True(t, state[global1.ID])
	assert.True(t, state[global2.ID])

	// Another user's personal notification is untouched
	assert.False(t, listNotifications(t, app, "u2")[otherPersonal.ID])

	// Items created after the call start unread
	late := seedNotification(t, db, nil, "Late global")
	assert.False(t, listNotifications(t, app, "u1")[late.ID])
}

func TestListSeparatesUsers(t *testing.T) {
	db := testutil.SetupDB(t)
	app := newApp()

	mine := seedNotification(t, db, strPtr("u1"), "Mine")
	theirs := seedNotification(t, db, strPtr("u2"), "Theirs")
	global := seedNotification(t, db, nil, "Everyone")

	state := listNotifications(t, app, "u1")
	assert.Contains(t, state, mine.ID)
	assert.Contains(t, state, global.ID)
	assert.NotContains(t, state, theirs.ID)
}

func TestCreateNotification(t *testing.T) {
	db := testutil.SetupDB(t)
	app := newApp()

	_, token := testutil.CreateUser(t, "Admin", "admin@example.com", "admin")

	resp, _ := testutil.PerformJSON(t, app, http.MethodPost, "/notifications",
		map[string]interface{}{"title": "Hello", "message": "World"}, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var notification models.Notification
	require.NoError(t, db.Where("title = ?", "Hello").First(&notification).Error)
	assert.Nil(t, notification.UserID)
	assert.Equal(t, "system", notification.Type)

	// Missing message fails validation
	resp, _ = testutil.PerformJSON(t, app, http.MethodPost, "/notifications",
		map[string]interface{}{"title": "No message"}, token)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}
