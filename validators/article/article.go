package articleValidator

import (
	"lms/middleware"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ArticleID validates the :id route param
func ArticleID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		if idStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Article ID is required!", nil)
		}

		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Article ID!", nil)
		}

		c.Locals("articleId", id)
		return c.Next()
	}
}

// ArticleList validates the listing query filters
func ArticleList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID := 0
		if raw := c.Query("courseId"); raw != "" {
			id, err := strconv.Atoi(raw)
			if err != nil || id <= 0 {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
			}
			courseID = id
		}

		categoryID := 0
		if raw := c.Query("categoryId"); raw != "" {
			id, err := strconv.Atoi(raw)
			if err != nil || id <= 0 {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Category ID!", nil)
			}
			categoryID = id
		}

		c.Locals("courseID", courseID)
		c.Locals("categoryId", categoryID)
		c.Locals("targetUserId", strings.TrimSpace(c.Query("userId")))
		return c.Next()
	}
}

// CreateArticleRequest is the body for article creation
type CreateArticleRequest struct {
	Title      string `json:"title" validate:"required"`
	Content    string `json:"content"`
	Excerpt    string `json:"excerpt"`
	Thumbnail  string `json:"thumbnail"`
	CategoryID uint   `json:"categoryId" validate:"required,gt=0"`
	CourseID   *uint  `json:"courseId"`
	ReadTime   string `json:"readTime"`
}

// CreateArticle validates the article creation body
func CreateArticle() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateArticleRequest)
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

		c.Locals("articleData", reqData)
		return c.Next()
	}
}
