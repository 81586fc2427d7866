package notificationValidator

import (
	"lms/middleware"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ListNotifications validates the per-user listing query
func ListNotifications() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := strings.TrimSpace(c.Query("userId"))
		if userID == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "User ID is required!", nil)
		}

		c.Locals("targetUserId", userID)
		return c.Next()
	}
}

// MarkRead validates the single mark-read body
func MarkRead() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			UserID         string `json:"userId"`
			NotificationID int    `json:"notificationId"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		if strings.TrimSpace(reqData.UserID) == "" {
			errors["userId"] = "User ID is required!"
		}
		if reqData.NotificationID <= 0 {
			errors["notificationId"] = "Notification ID is required!"
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("targetUserId", strings.TrimSpace(reqData.UserID))
		c.Locals("notificationId", reqData.NotificationID)
		return c.Next()
	}
}

// MarkAllRead validates the mark-all-read body
func MarkAllRead() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			UserID string `json:"userId"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if strings.TrimSpace(reqData.UserID) == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "User ID is required!", nil)
		}

		c.Locals("targetUserId", strings.TrimSpace(reqData.UserID))
		return c.Next()
	}
}

// CreateNotificationRequest is the body for notification creation.
// A nil UserID makes the notification global.
type CreateNotificationRequest struct {
	UserID  *string `json:"userId"`
	Title   string  `json:"title" validate:"required"`
	Message string  `json:"message" validate:"required"`
	Type    string  `json:"type"`
	Link    string  `json:"link"`
}

// CreateNotification validates the notification creation body
func CreateNotification() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateNotificationRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fieldErr := range err.(validator.ValidationErrors) {
				errors[fieldErr.Field()] = fieldErr.Field() + " is required!"
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("notificationData", reqData)
		return c.Next()
	}
}
