package articleController

import (
	"lms/database"
	"lms/middleware"
	"lms/models"
	"lms/utils"
	articleValidator "lms/validators/article"

	"github.com/gofiber/fiber/v2"
)

// articleWithCompletion overrides the static flag with the per-user
// completion state when a user context is supplied
type articleWithCompletion struct {
	models.Article
	IsCompleted bool `json:"is_completed"`
}

// GetArticles lists articles with optional course/category filters
func GetArticles(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)
	categoryID := c.Locals("categoryId").(int)
	userID := c.Locals("targetUserId").(string)

	db := database.Database.Db

	query := db.Model(&models.Article{})
	if courseID > 0 {
		query = query.Where("course_id = ?", courseID)
	}
	if categoryID > 0 {
		query = query.Where("category_id = ?", categoryID)
	}

	var articles []models.Article
	if err := query.Find(&articles).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch articles!", nil)
	}

	result := make([]articleWithCompletion, len(articles))
	for i, article := range articles {
		isCompleted := article.IsCompleted
		if userID != "" {
			var count int64
			if err := db.Model(&models.ArticleCompletion{}).
				Where("user_id = ? AND article_id = ?", userID, article.ID).
				Count(&count).Error; err != nil {
				return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch articles!", nil)
			}
			isCompleted = count > 0
		}
		result[i] = articleWithCompletion{Article: article, IsCompleted: isCompleted}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Articles fetched successfully!", result)
}

// CreateArticle creates an article and announces it with a global
// notification. A notification failure never fails the article request.
func CreateArticle(c *fiber.Ctx) error {
	reqData := c.Locals("articleData").(*articleValidator.CreateArticleRequest)

	article := models.Article{
		Title:      reqData.Title,
		Content:    reqData.Content,
		Excerpt:    reqData.Excerpt,
		Thumbnail:  reqData.Thumbnail,
		CategoryID: reqData.CategoryID,
		CourseID:   reqData.CourseID,
		ReadTime:   reqData.ReadTime,
	}
	if article.ReadTime == "" {
		article.ReadTime = "5 min"
	}

	if err := database.Database.Db.Create(&article).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create article!", nil)
	}

	utils.CreateNotification(nil, "Novo Artigo: "+article.Title, "Leia o novo artigo disponível na biblioteca.", "article", "/articles")

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Article created successfully!", article)
}

// UpdateArticle applies a partial update
func UpdateArticle(c *fiber.Ctx) error {
	articleID := c.Locals("articleId").(int)

	reqData := new(struct {
		Title      *string `json:"title"`
		Content    *string `json:"content"`
		Excerpt    *string `json:"excerpt"`
		Thumbnail  *string `json:"thumbnail"`
		CategoryID *uint   `json:"categoryId"`
		CourseID   *uint   `json:"courseId"`
		ReadTime   *string `json:"readTime"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	updates := map[string]interface{}{}
	if reqData.Title != nil {
		updates["title"] = *reqData.Title
	}
	if reqData.Content != nil {
		updates["content"] = *reqData.Content
	}
	if reqData.Excerpt != nil {
		updates["excerpt"] = *reqData.Excerpt
	}
	if reqData.Thumbnail != nil {
		updates["thumbnail"] = *reqData.Thumbnail
	}
	if reqData.CategoryID != nil {
		updates["category_id"] = *reqData.CategoryID
	}
	if reqData.CourseID != nil {
		updates["course_id"] = *reqData.CourseID
	}
	if reqData.ReadTime != nil {
		updates["read_time"] = *reqData.ReadTime
	}

	if len(updates) == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "No fields to update!", nil)
	}

	db := database.Database.Db

	var article models.Article
	if err := db.First(&article, articleID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Article not found!", nil)
	}

	if err := db.Model(&article).Updates(updates).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update article!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Article updated successfully!", fiber.Map{
		"success": true,
	})
}

// DeleteArticle removes an article and cascades its completion records
func DeleteArticle(c *fiber.Ctx) error {
	articleID := c.Locals("articleId").(int)

	db := database.Database.Db

	var article models.Article
	if err := db.First(&article, articleID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Article not found!", nil)
	}

	if err := db.Where("article_id = ?", articleID).Delete(&models.ArticleCompletion{}).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete article!", nil)
	}

	if err := db.Unscoped().Delete(&article).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete article!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Article deleted successfully!", fiber.Map{
		"success": true,
	})
}
