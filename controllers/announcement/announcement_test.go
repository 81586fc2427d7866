package announcementController_test

import (
	"fmt"
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

func seedAnnouncement(t *testing.T, db *gorm.DB, title string) models.Announcement {
	t.Helper()

	announcement := models.Announcement{Title: title, Content: "...", Priority: "normal"}
	require.NoError(t, db.Create(&announcement).Error)
	return announcement
}

type listedAnnouncement struct {
	ID     uint `json:"ID"`
	IsRead bool `json:"is_read"`
}

func listForUser(t *testing.T, app *fiber.App, userID string) map[uint]bool {
	t.Helper()

	resp, env := testutil.PerformJSON(t, app, http.MethodGet, "/announcements?userId="+userID, nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var rows []listedAnnouncement
	testutil.DecodeData(t, env, &rows)

	readState := make(map[uint]bool, len(rows))
	for _, row := range rows {
		readState[row.ID] = row.IsRead
	}
	return readState
}

func markAnnouncementRead(t *testing.T, app *fiber.App, userID string, announcementID uint) *http.Response {
	t.Helper()

	resp, _ := testutil.PerformJSON(t, app, http.MethodPost, "/announcements/mark-read",
		map[string]interface{}{"userId": userID, "announcementId": announcementID}, "")
	return resp
}

func TestAnnouncementReadStatePerUser(t *testing.T) {
	db := testutil.SetupDB(t)
	app := newApp()

	announcement := seedAnnouncement(t, db, "Maintenance window")

	assert.False(t, listForUser(t, app, "userA")[announcement.ID])

	resp := markAnnouncementRead(t, app, "userA", announcement.ID)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.True(t, listForUser(t, app, "userA")[announcement.ID])
	assert.False(t, listForUser(t, app, "userB")[announcement.ID])
}

func TestAnnouncementMarkReadIdempotent(t *testing.T) {
	db := testutil.SetupDB(t)
	app := newApp()

	announcement := seedAnnouncement(t, db, "Maintenance window")

	for i := 0; i < 3; i++ {
		resp := markAnnouncementRead(t, app, "userA", announcement.ID)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	var count int64
	require.NoError(t, db.Model(&models.AnnouncementRead{}).
		Where("user_id = ? AND announcement_id = ?", "userA", announcement.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestAnnouncementMarkReadUnknown(t *testing.T) {
	testutil.SetupDB(t)
	app := newApp()

	resp := markAnnouncementRead(t, app, "userA", 9999)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateAnnouncementDefaultsPriority(t *testing.T) {
	db := testutil.SetupDB(t)
	app := newApp()

	_, token := testutil.CreateUser(t, "Admin", "admin@example.com", "admin")

	resp, _ := testutil.PerformJSON(t, app, http.MethodPost, "/announcements",
		map[string]interface{}{"title": "Heads up", "content": "New term starts Monday."}, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var announcement models.Announcement
	require.NoError(t, db.Where("title = ?", "Heads up").First(&announcement).Error)
	assert.Equal(t, "normal", announcement.Priority)

	resp, _ = testutil.PerformJSON(t, app, http.MethodPost, "/announcements",
		map[string]interface{}{"title": "Bad", "content": "x", "priority": "shouting"}, token)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestDeleteAnnouncementCascadesReads(t *testing.T) {
	db := testutil.SetupDB(t)
	app := newApp()

	_, token := testutil.CreateUser(t, "Admin", "admin@example.com", "admin")
	announcement := seedAnnouncement(t, db, "Old news")

	resp := markAnnouncementRead(t, app, "userA", announcement.ID)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = testutil.PerformJSON(t, app, http.MethodDelete,
		fmt.Sprintf("/announcements/%d", announcement.ID), nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var announcements, reads int64
	require.NoError(t, db.Model(&models.Announcement{}).Count(&announcements).Error)
	require.NoError(t, db.Model(&models.AnnouncementRead{}).
		Where("announcement_id = ?", announcement.ID).Count(&reads).Error)
	assert.Equal(t, int64(0), announcements)
	assert.Equal(t, int64(0), reads)
}
