package progressValidator

import (
	"lms/middleware"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// parseItemID validates an optional positive integer id
func parseItemID(raw string) (int, bool) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// GetProgress validates the completion status / bulk listing query
func GetProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := strings.TrimSpace(c.Query("userId"))
		if userID == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "User ID is required!", nil)
		}

		lessonID := 0
		if raw := c.Query("lessonId"); raw != "" {
			id, ok := parseItemID(raw)
			if !ok {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Lesson ID!", nil)
			}
			lessonID = id
		}

		articleID := 0
		if raw := c.Query("articleId"); raw != "" {
			id, ok := parseItemID(raw)
			if !ok {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Article ID!", nil)
			}
			articleID = id
		}

		c.Locals("targetUserId", userID)
		c.Locals("lessonId", lessonID)
		c.Locals("articleId", articleID)
		return c.Next()
	}
}

// SetProgress validates the completion toggle body
func SetProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			UserID    string `json:"userId"`
			LessonID  *int   `json:"lessonId"`
			ArticleID *int   `json:"articleId"`
			Completed *bool  `json:"completed"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate User ID
		if strings.TrimSpace(reqData.UserID) == "" {
			errors["userId"] = "User ID is required!"
		}

		// Exactly one target item is required; lessonId wins when both are sent
		lessonID := 0
		articleID := 0
		if reqData.LessonID != nil {
			if *reqData.LessonID <= 0 {
				errors["lessonId"] = "Invalid Lesson ID!"
			}
			lessonID = *reqData.LessonID
		} else if reqData.ArticleID != nil {
			if *reqData.ArticleID <= 0 {
				errors["articleId"] = "Invalid Article ID!"
			}
			articleID = *reqData.ArticleID
		} else {
			errors["lessonId"] = "Lesson ID or Article ID is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		// Omitted completed flag means "mark complete"
		completed := true
		if reqData.Completed != nil {
			completed = *reqData.Completed
		}

		c.Locals("targetUserId", strings.TrimSpace(reqData.UserID))
		c.Locals("lessonId", lessonID)
		c.Locals("articleId", articleID)
		c.Locals("completed", completed)
		return c.Next()
	}
}
