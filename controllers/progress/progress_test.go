package progressController_test

import (
	"lms/models"
	progressRoutes "lms/routers/progressRoutes"
	"lms/testutil"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp() *fiber.App {
	app := fiber.New()
	progressRoutes.SetupProgressRoutes(app)
	return app
}

func getCompleted(t *testing.T, app *fiber.App, target string) bool {
	t.Helper()

	resp, env := testutil.PerformJSON(t, app, http.MethodGet, target, nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var data struct {
		Completed bool `json:"completed"`
	}
	testutil.DecodeData(t, env, &data)
	return data.Completed
}

func TestSetCompletionIdempotent(t *testing.T) {
	db := testutil.SetupDB(t)
	app := newApp()

	body := map[string]interface{}{"userId": "u1", "lessonId": 1, "completed": true}

	for i := 0; i < 2; i++ {
		resp, _ := testutil.PerformJSON(t, app, http.MethodPost, "/progress", body, "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	var count int64
	require.NoError(t, db.Model(&models.LessonCompletion{}).
		Where("user_id = ? AND lesson_id = ?", "u1", 1).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	assert.True(t, getCompleted(t, app, "/progress?userId=u1&lessonId=1"))
}

func TestToggleCompletionSymmetry(t *testing.T) {
	testutil.SetupDB(t)
	app := newApp()

	set := func(completed bool) {
		resp, _ := testutil.PerformJSON(t, app, http.MethodPost, "/progress",
			map[string]interface{}{"userId": "u1", "lessonId": 7, "completed": completed}, "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	set(true)
	assert.True(t, getCompleted(t, app, "/progress?userId=u1&lessonId=7"))

	set(false)
	assert.False(t, getCompleted(t, app, "/progress?userId=u1&lessonId=7"))

	// Unmarking an absent record is a silent no-op
	set(false)
	assert.False(t, getCompleted(t, app, "/progress?userId=u1&lessonId=7"))
}

func TestCompletedDefaultsTrue(t *testing.T) {
	testutil.SetupDB(t)
	app := newApp()

	resp, _ := testutil.PerformJSON(t, app, http.MethodPost, "/progress",
		map[string]interface{}{"userId": "u2", "articleId": 4}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.True(t, getCompleted(t, app, "/progress?userId=u2&articleId=4"))
}

func TestUnknownPairIsIncomplete(t *testing.T) {
	testutil.SetupDB(t)
	app := newApp()

	assert.False(t, getCompleted(t, app, "/progress?userId=nobody&lessonId=99"))
	assert.False(t, getCompleted(t, app, "/progress?userId=nobody&articleId=99"))
}

func TestBulkCompletionListing(t *testing.T) {
	testutil.SetupDB(t)
	app := newApp()

	for _, lessonID := range []int{1, 2} {
		testutil.PerformJSON(t, app, http.MethodPost, "/progress",
			map[string]interface{}{"userId": "u1", "lessonId": lessonID}, "")
	}
	testutil.PerformJSON(t, app, http.MethodPost, "/progress",
		map[string]interface{}{"userId": "u1", "articleId": 3}, "")

	// Another user's completions must not leak in
	testutil.PerformJSON(t, app, http.MethodPost, "/progress",
		map[string]interface{}{"userId": "u2", "lessonId": 5}, "")

	resp, env := testutil.PerformJSON(t, app, http.MethodGet, "/progress?userId=u1", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var data struct {
		Lessons  []uint `json:"lessons"`
		Articles []uint `json:"articles"`
	}
	testutil.DecodeData(t, env, &data)
	assert.ElementsMatch(t, []uint{1, 2}, data.Lessons)
	assert.ElementsMatch(t, []uint{3}, data.Articles)
}

func TestProgressValidation(t *testing.T) {
	testutil.SetupDB(t)
	app := newApp()

	resp, _ := testutil.PerformJSON(t, app, http.MethodGet, "/progress", nil, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = testutil.PerformJSON(t, app, http.MethodPost, "/progress",
		map[string]interface{}{"lessonId": 1}, "")
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	resp, _ = testutil.PerformJSON(t, app, http.MethodPost, "/progress",
		map[string]interface{}{"userId": "u1"}, "")
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}
