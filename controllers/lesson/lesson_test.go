package lessonController_test

import (
	"fmt"
	"lms/models"
	courseRoutes "lms/routers/courseRoutes"
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
	courseRoutes.SetupCourseRoutes(app)
	return app
}

func seedCourse(t *testing.T, db *gorm.DB) models.Course {
	t.Helper()

	course := models.Course{Title: "Go Basics", CategoryID: 1, LessonsCount: 3}
	require.NoError(t, db.Create(&course).Error)
	return course
}

func TestLessonOrdering(t *testing.T) {
	db := testutil.SetupDB(t)
	app := newApp()

	course := seedCourse(t, db)
	for _, l := range []models.Lesson{
		{CourseID: course.ID, Title: "Third", OrderIndex: 3},
		{CourseID: course.ID, Title: "First", OrderIndex: 1},
		{CourseID: course.ID, Title: "Second", OrderIndex: 2},
	} {
		require.NoError(t, db.Create(&l).Error)
	}

	resp, env := testutil.PerformJSON(t, app, http.MethodGet,
		fmt.Sprintf("/lessons?courseId=%d", course.ID), nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var lessons []models.Lesson
	testutil.DecodeData(t, env, &lessons)
	require.Len(t, lessons, 3)
	assert.Equal(t, "First", lessons[0].Title)
	assert.Equal(t, "Second", lessons[1].Title)
	assert.Equal(t, "Third", lessons[2].Title)
}

func TestCreateLessonRequiresCourse(t *testing.T) {
	testutil.SetupDB(t)
	app := newApp()

	_, token := testutil.CreateUser(t, "Admin", "admin@example.com", "admin")

	resp, _ := testutil.PerformJSON(t, app, http.MethodPost, "/lessons",
		map[string]interface{}{"course_id": 42, "title": "Orphan", "type": "video", "content": "..."}, token)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeleteLessonCascadesCompletions(t *testing.T) {
	db := testutil.SetupDB(t)
	app := newApp()

	_, token := testutil.CreateUser(t, "Admin", "admin@example.com", "admin")
	course := seedCourse(t, db)

	lesson := models.Lesson{CourseID: course.ID, Title: "Doomed", OrderIndex: 1}
	require.NoError(t, db.Create(&lesson).Error)
	require.NoError(t, db.Create(&models.LessonCompletion{UserID: "u1", LessonID: lesson.ID}).Error)

	resp, _ := testutil.PerformJSON(t, app, http.MethodDelete,
		fmt.Sprintf("/lessons/%d", lesson.ID), nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var lessons, completions int64
	require.NoError(t, db.Model(&models.Lesson{}).Where("id = ?", lesson.ID).Count(&lessons).Error)
	require.NoError(t, db.Model(&models.LessonCompletion{}).
		Where("lesson_id = ?", lesson.ID).Count(&completions).Error)
	assert.Equal(t, int64(0), lessons)
	assert.Equal(t, int64(0), completions)
}

func TestLessonMutationsRequireAuth(t *testing.T) {
	testutil.SetupDB(t)
	app := newApp()

	resp, _ := testutil.PerformJSON(t, app, http.MethodPost, "/lessons",
		map[string]interface{}{"course_id": 1, "title": "Nope", "type": "video", "content": "..."}, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
