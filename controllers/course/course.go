package courseController

import (
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseValidator "lms/validators/course"
	"math"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// courseWithProgress overrides the stored progress column with the
// per-user value when a user context is supplied
type courseWithProgress struct {
	models.Course
	Progress int `json:"progress"`
}

// computeProgressForUser derives the live percentage for one user. The
// denominator is the admin-declared lessons_count, never the actual lesson
// row count, and a zero count short-circuits to 0.
func computeProgressForUser(db *gorm.DB, course *models.Course, userID string) (int, error) {
	if course.LessonsCount <= 0 {
		return 0, nil
	}

	var completedCount int64
	err := db.Model(&models.LessonCompletion{}).
		Joins("JOIN lessons ON lessons.id = lesson_completions.lesson_id").
		Where("lessons.course_id = ? AND lessons.deleted_at IS NULL AND lesson_completions.user_id = ?", course.ID, userID).
		Distinct("lesson_completions.lesson_id").
		Count(&completedCount).Error
	if err != nil {
		return 0, err
	}

	return int(math.Round(float64(completedCount) / float64(course.LessonsCount) * 100)), nil
}

// resolveProgress picks the live computation with a user context and the
// stored static value without one. The two are never reconciled.
func resolveProgress(db *gorm.DB, course *models.Course, userID string) (int, error) {
	if userID == "" {
		return course.Progress, nil
	}
	return computeProgressForUser(db, course, userID)
}

// GetAllCourses lists courses, optionally filtered by category
func GetAllCourses(c *fiber.Ctx) error {
	categoryID := c.Locals("categoryId").(int)
	userID := c.Locals("targetUserId").(string)

	db := database.Database.Db

	query := db.Model(&models.Course{})
	if categoryID > 0 {
		query = query.Where("category_id = ?", categoryID)
	}

	var courses []models.Course
	if err := query.Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	result := make([]courseWithProgress, len(courses))
	for i := range courses {
		progress, err := resolveProgress(db, &courses[i], userID)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to compute course progress!", nil)
		}
		result[i] = courseWithProgress{Course: courses[i], Progress: progress}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", result)
}

// GetCourse returns a single course with resolved progress
func GetCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)
	userID := strings.TrimSpace(c.Query("userId"))

	db := database.Database.Db

	var course models.Course
	if err := db.First(&course, courseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	progress, err := resolveProgress(db, &course, userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to compute course progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", courseWithProgress{
		Course:   course,
		Progress: progress,
	})
}

// CreateCourse creates a new course
func CreateCourse(c *fiber.Ctx) error {
	reqData := c.Locals("courseData").(*courseValidator.CreateCourseRequest)

	course := models.Course{
		Title:        reqData.Title,
		Description:  reqData.Description,
		Thumbnail:    reqData.Thumbnail,
		CategoryID:   reqData.CategoryID,
		Duration:     reqData.Duration,
		LessonsCount: reqData.LessonsCount,
		Progress:     reqData.Progress,
		Status:       reqData.Status,
	}
	if course.Duration == "" {
		course.Duration = "0h"
	}
	if course.Status == "" {
		course.Status = "draft"
	}

	if err := database.Database.Db.Create(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course created successfully!", course)
}

// UpdateCourse applies a partial update to a course
func UpdateCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	reqData := new(struct {
		Title        *string `json:"title"`
		Description  *string `json:"description"`
		Thumbnail    *string `json:"thumbnail"`
		CategoryID   *uint   `json:"categoryId"`
		Duration     *string `json:"duration"`
		LessonsCount *int    `json:"lessonsCount"`
		Progress     *int    `json:"progress"`
		Status       *string `json:"status"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	updates := map[string]interface{}{}
	if reqData.Title != nil {
		updates["title"] = *reqData.Title
	}
	if reqData.Description != nil {
		updates["description"] = *reqData.Description
	}
	if reqData.Thumbnail != nil {
		updates["thumbnail"] = *reqData.Thumbnail
	}
	if reqData.CategoryID != nil {
		updates["category_id"] = *reqData.CategoryID
	}
	if reqData.Duration != nil {
		updates["duration"] = *reqData.Duration
	}
	if reqData.LessonsCount != nil {
		updates["lessons_count"] = *reqData.LessonsCount
	}
	if reqData.Progress != nil {
		updates["progress"] = *reqData.Progress
	}
	if reqData.Status != nil {
		updates["status"] = *reqData.Status
	}

	if len(updates) == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "No fields to update!", nil)
	}

	db := database.Database.Db

	var course models.Course
	if err := db.First(&course, courseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if err := db.Model(&course).Updates(updates).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", fiber.Map{
		"success": true,
	})
}

// DeleteCourse removes a course together with its lessons and their
// completion records
func DeleteCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	db := database.Database.Db

	var course models.Course
	if err := db.First(&course, courseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var lessonIDs []uint
	if err := db.Model(&models.Lesson{}).Where("course_id = ?", courseID).Pluck("id", &lessonIDs).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	if len(lessonIDs) > 0 {
		if err := db.Where("lesson_id IN ?", lessonIDs).Delete(&models.LessonCompletion{}).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
		}
		if err := db.Unscoped().Where("course_id = ?", courseID).Delete(&models.Lesson{}).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
		}
	}

	if err := db.Unscoped().Delete(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", fiber.Map{
		"success": true,
	})
}
