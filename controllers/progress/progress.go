package progressController

import (
	"lms/database"
	"lms/middleware"
	"lms/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm/clause"
)

// GetProgress returns a single item's completion status, or the full set of
// completed lesson and article ids when no item id is supplied
func GetProgress(c *fiber.Ctx) error {
	userID := c.Locals("targetUserId").(string)
	lessonID := c.Locals("lessonId").(int)
	articleID := c.Locals("articleId").(int)

	db := database.Database.Db

	if lessonID > 0 {
		var count int64
		if err := db.Model(&models.LessonCompletion{}).
			Where("user_id = ? AND lesson_id = ?", userID, lessonID).
			Count(&count).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch completion status!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Completion status fetched successfully!", fiber.Map{
			"completed": count > 0,
		})
	}

	if articleID > 0 {
		var count int64
		if err := db.Model(&models.ArticleCompletion{}).
			Where("user_id = ? AND article_id = ?", userID, articleID).
			Count(&count).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch completion status!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Completion status fetched successfully!", fiber.Map{
			"completed": count > 0,
		})
	}

	// Bulk hydration: every completed lesson and article for the user
	lessonIDs := make([]uint, 0)
	if err := db.Model(&models.LessonCompletion{}).
		Where("user_id = ?", userID).
		Pluck("lesson_id", &lessonIDs).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch completions!", nil)
	}

	articleIDs := make([]uint, 0)
	if err := db.Model(&models.ArticleCompletion{}).
		Where("user_id = ?", userID).
		Pluck("article_id", &articleIDs).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch completions!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Completions fetched successfully!", fiber.Map{
		"lessons":  lessonIDs,
		"articles": articleIDs,
	})
}

// SetProgress marks a lesson or article complete or incomplete for a user.
// Marking an already-completed item complete and unmarking an absent record
// are both silent no-ops.
func SetProgress(c *fiber.Ctx) error {
	userID := c.Locals("targetUserId").(string)
	lessonID := c.Locals("lessonId").(int)
	articleID := c.Locals("articleId").(int)
	completed := c.Locals("completed").(bool)

	db := database.Database.Db

	if lessonID > 0 {
		if completed {
			completion := models.LessonCompletion{UserID: userID, LessonID: uint(lessonID)}
			if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&completion).Error; err != nil {
				return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
			}
		} else {
			if err := db.Where("user_id = ? AND lesson_id = ?", userID, lessonID).
				Delete(&models.LessonCompletion{}).Error; err != nil {
				return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
			}
		}
	} else {
		if completed {
			completion := models.ArticleCompletion{UserID: userID, ArticleID: uint(articleID)}
			if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&completion).Error; err != nil {
				return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
			}
		} else {
			if err := db.Where("user_id = ? AND article_id = ?", userID, articleID).
				Delete(&models.ArticleCompletion{}).Error; err != nil {
				return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
			}
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress updated successfully!", fiber.Map{
		"success": true,
	})
}
