package courseValidator

import (
	"lms/middleware"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// CourseID validates the :id route param
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseIDStr := strings.TrimSpace(c.Params("id"))
		if courseIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course ID is required!", nil)
		}

		courseID, err := strconv.Atoi(courseIDStr)
		if err != nil || courseID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		c.Locals("courseID", courseID)
		return c.Next()
	}
}

// CourseList validates the course listing query
func CourseList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		categoryID := 0
		if raw := c.Query("categoryId"); raw != "" {
			id, err := strconv.Atoi(raw)
			if err != nil || id <= 0 {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Category ID!", nil)
			}
			categoryID = id
		}

		c.Locals("categoryId", categoryID)
		c.Locals("targetUserId", strings.TrimSpace(c.Query("userId")))
		return c.Next()
	}
}

// CreateCourseRequest is the body for course creation
type CreateCourseRequest struct {
	Title        string `json:"title" validate:"required"`
	Description  string `json:"description"`
	Thumbnail    string `json:"thumbnail"`
	CategoryID   uint   `json:"categoryId" validate:"required,gt=0"`
	Duration     string `json:"duration"`
	LessonsCount int    `json:"lessonsCount" validate:"gte=0"`
	Progress     int    `json:"progress" validate:"gte=0,lte=100"`
	Status       string `json:"status"`
}

// CreateCourse validates the course creation body
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateCourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fieldErr := range err.(validator.ValidationErrors) {
				errors[fieldErr.Field()] = "Invalid value for " + fieldErr.Field() + "!"
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("courseData", reqData)
		return c.Next()
	}
}
