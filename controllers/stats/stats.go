package statsController

import (
	"lms/database"
	"lms/middleware"
	"lms/models"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
)

// userMetrics is one user's engagement summary
type userMetrics struct {
	UserID                string     `json:"userId"`
	UserName              string     `json:"userName"`
	UserAvatar            string     `json:"userAvatar"`
	TotalCourses          int64      `json:"totalCourses"`
	TotalArticles         int64      `json:"totalArticles"`
	TotalLessons          int64      `json:"totalLessons"`
	TotalCompletedLessons int64      `json:"totalCompletedLessons"`
	CompletedArticles     int64      `json:"completedArticles"`
	LastActivity          *time.Time `json:"lastActivity"`
}

// GetStats reports per-user engagement over the catalog totals
func GetStats(c *fiber.Ctx) error {
	db := database.Database.Db

	var totalCourses, totalArticles, totalLessons int64
	if err := db.Model(&models.Course{}).Count(&totalCourses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch stats!", nil)
	}
	if err := db.Model(&models.Article{}).Count(&totalArticles).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch stats!", nil)
	}
	if err := db.Model(&models.Lesson{}).Count(&totalLessons).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch stats!", nil)
	}

	var users []models.User
	if err := db.Find(&users).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch users!", nil)
	}

	metrics := make([]userMetrics, 0, len(users))
	for _, user := range users {
		userID := strconv.FormatUint(uint64(user.ID), 10)

		var completedLessons int64
		if err := db.Model(&models.LessonCompletion{}).
			Where("user_id = ?", userID).
			Count(&completedLessons).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch stats!", nil)
		}

		var completedArticles int64
		if err := db.Model(&models.ArticleCompletion{}).
			Where("user_id = ?", userID).
			Count(&completedArticles).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch stats!", nil)
		}

		var lastActivity *time.Time
		var latest models.LessonCompletion
		if err := db.Where("user_id = ?", userID).
			Order("completed_at DESC").
			First(&latest).Error; err == nil {
			lastActivity = &latest.CompletedAt
		}

		metrics = append(metrics, userMetrics{
			UserID:                userID,
			UserName:              user.Name,
			UserAvatar:            user.Avatar,
			TotalCourses:          totalCourses,
			TotalArticles:         totalArticles,
			TotalLessons:          totalLessons,
			TotalCompletedLessons: completedLessons,
			CompletedArticles:     completedArticles,
			LastActivity:          lastActivity,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Stats fetched successfully!", metrics)
}
