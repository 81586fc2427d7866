package announcementValidator

import (
	"lms/middleware"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// AnnouncementID validates the :id route param
func AnnouncementID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		if idStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Announcement ID is required!", nil)
		}

		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Announcement ID!", nil)
		}

		c.Locals("announcementId", id)
		return c.Next()
	}
}

// MarkRead validates the mark-read body. The user id may come from the
// query string or the body.
func MarkRead() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			UserID         string `json:"userId"`
			AnnouncementID int    `json:"announcementId"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		userID := strings.TrimSpace(c.Query("userId"))
		if userID == "" {
			userID = strings.TrimSpace(reqData.UserID)
		}

		errors := make(map[string]string)
		if userID == "" {
			errors["userId"] = "User ID is required!"
		}
		if reqData.AnnouncementID <= 0 {
			errors["announcementId"] = "Announcement ID is required!"
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("targetUserId", userID)
		c.Locals("announcementId", reqData.AnnouncementID)
		return c.Next()
	}
}

// CreateAnnouncementRequest is the body for announcement creation
type CreateAnnouncementRequest struct {
	Title    string `json:"title" validate:"required"`
	Content  string `json:"content" validate:"required"`
	Priority string `json:"priority" validate:"omitempty,oneof=normal high urgent"`
}

// CreateAnnouncement validates the announcement creation body
func CreateAnnouncement() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateAnnouncementRequest)
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

		c.Locals("announcementData", reqData)
		return c.Next()
	}
}
