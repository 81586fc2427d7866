package articleController_test

import (
	"fmt"
	"lms/models"
	contentRoutes "lms/routers/contentRoutes"
	progressRoutes "lms/routers/progressRoutes"
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
	contentRoutes.SetupContentRoutes(app)
	progressRoutes.SetupProgressRoutes(app)
	return app
}

func seedArticle(t *testing.T, db *gorm.DB, title string, categoryID uint) models.Article {
	t.Helper()

	article := models.Article{Title: title, CategoryID: categoryID, ReadTime: "5 min"}
	require.NoError(t, db.Create(&article).Error)
	return article
}

type listedArticle struct {
	ID          uint `json:"ID"`
	IsCompleted bool `json:"is_completed"`
}

func listArticles(t *testing.T, app *fiber.App, query string) map[uint]bool {
	t.Helper()

	resp, env := testutil.PerformJSON(t, app, http.MethodGet, "/articles"+query, nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var rows []listedArticle
	testutil.DecodeData(t, env, &rows)

	completed := make(map[uint]bool, len(rows))
	for _, row := range rows {
		completed[row.ID] = row.IsCompleted
	}
	return completed
}

func TestCreateArticleAnnouncesGlobally(t *testing.T) {
	db := testutil.SetupDB(t)
	app := newApp()

	_, token := testutil.CreateUser(t, "Admin", "admin@example.com", "admin")

	resp, _ := testutil.PerformJSON(t, app, http.MethodPost, "/articles",
		map[string]interface{}{"title": "Go Generics", "categoryId": 1}, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var notification models.Notification
	require.NoError(t, db.Where("type = ?", "article").First(&notification).Error)
	assert.Nil(t, notification.UserID)
	assert.Equal(t, "Novo Artigo: Go Generics", notification.Title)
	assert.Equal(t, "/articles", notification.Link)
}

func TestArticleCompletionPerUser(t *testing.T) {
	db := testutil.SetupDB(t)
	app := newApp()

	article := seedArticle(t, db, "Reading", 1)

	resp, _ := testutil.PerformJSON(t, app, http.MethodPost, "/progress",
		map[string]interface{}{"userId": "u1", "articleId": article.ID, "completed": true}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.True(t, listArticles(t, app, "?userId=u1")[article.ID])
	assert.False(t, listArticles(t, app, "?userId=u2")[article.ID])

	// Without a user context the stored flag is returned as-is
	assert.False(t, listArticles(t, app, "")[article.ID])
}

func TestStaticFlagIgnoredWithUserContext(t *testing.T) {
	db := testutil.SetupDB(t)
	app := newApp()

	article := models.Article{Title: "Stale flag", CategoryID: 1, IsCompleted: true}
	require.NoError(t, db.Create(&article).Error)

	assert.True(t, listArticles(t, app, "")[article.ID])
	assert.False(t, listArticles(t, app, "?userId=u1")[article.ID])
}

func TestDeleteArticleCascadesCompletions(t *testing.T) {
	db := testutil.SetupDB(t)
	app := newApp()

	_, token := testutil.CreateUser(t, "Admin", "admin@example.com", "admin")
	article := seedArticle(t, db, "Doomed", 1)

	resp, _ := testutil.PerformJSON(t, app, http.MethodPost, "/progress",
		map[string]interface{}{"userId": "u1", "articleId": article.ID}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = testutil.PerformJSON(t, app, http.MethodDelete,
		fmt.Sprintf("/articles/%d", article.ID), nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var completions int64
	require.NoError(t, db.Model(&models.ArticleCompletion{}).
		Where("article_id = ?", article.ID).Count(&completions).Error)
	assert.Equal(t, int64(0), completions)
}

func TestArticleCategoryFilter(t *testing.T) {
	db := testutil.SetupDB(t)
	app := newApp()

	inCategory := seedArticle(t, db, "Kept", 1)
	other := seedArticle(t, db, "Filtered out", 2)

	rows := listArticles(t, app, "?categoryId=1")
	assert.Contains(t, rows, inCategory.ID)
	assert.NotContains(t, rows, other.ID)
}
