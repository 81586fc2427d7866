package lessonController

import (
	"lms/database"
	"lms/middleware"
	"lms/models"
	lessonValidator "lms/validators/lesson"

	"github.com/gofiber/fiber/v2"
)

// GetLessons lists a course's lessons in display order
func GetLessons(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var lessons []models.Lesson
	if err := database.Database.Db.
		Where("course_id = ?", courseID).
		Order("order_index asc, id asc").
		Find(&lessons).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch lessons!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lessons fetched successfully!", lessons)
}

// CreateLesson creates a lesson within a course
func CreateLesson(c *fiber.Ctx) error {
	reqData := c.Locals("lessonData").(*lessonValidator.CreateLessonRequest)

	db := database.Database.Db

	var course models.Course
	if err := db.First(&course, reqData.CourseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	lesson := models.Lesson{
		CourseID:   reqData.CourseID,
		Title:      reqData.Title,
		Type:       reqData.Type,
		Content:    reqData.Content,
		OrderIndex: reqData.OrderIndex,
	}

	if err := db.Create(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson created successfully!", lesson)
}

// UpdateLesson applies a partial update; course_id is immutable
func UpdateLesson(c *fiber.Ctx) error {
	lessonID := c.Locals("lessonId").(int)

	reqData := new(struct {
		Title      *string `json:"title"`
		Type       *string `json:"type"`
		Content    *string `json:"content"`
		OrderIndex *int    `json:"order_index"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	updates := map[string]interface{}{}
	if reqData.Title != nil {
		updates["title"] = *reqData.Title
	}
	if reqData.Type != nil {
		updates["type"] = *reqData.Type
	}
	if reqData.Content != nil {
		updates["content"] = *reqData.Content
	}
	if reqData.OrderIndex != nil {
		updates["order_index"] = *reqData.OrderIndex
	}

	if len(updates) == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "No fields to update!", nil)
	}

	db := database.Database.Db

	var lesson models.Lesson
	if err := db.First(&lesson, lessonID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	if err := db.Model(&lesson).Updates(updates).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson updated successfully!", fiber.Map{
		"success": true,
	})
}

// DeleteLesson removes a lesson and cascades its completion records
func DeleteLesson(c *fiber.Ctx) error {
	lessonID := c.Locals("lessonId").(int)

	db := database.Database.Db

	var lesson models.Lesson
	if err := db.First(&lesson, lessonID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	if err := db.Where("lesson_id = ?", lessonID).Delete(&models.LessonCompletion{}).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete lesson!", nil)
	}

	if err := db.Unscoped().Delete(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson deleted successfully!", fiber.Map{
		"success": true,
	})
}
