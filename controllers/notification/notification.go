package notificationController

import (
	"errors"
	"lms/database"
	"lms/middleware"
	"lms/models"
	notificationValidator "lms/validators/notification"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// notificationWithRead carries the resolved per-user read state: the stored
// flag for personal rows, side-table membership for global rows
type notificationWithRead struct {
	models.Notification
	IsRead bool `json:"is_read"`
}

// GetNotifications lists the user's personal notifications plus all global
// ones, newest first, capped at 50
func GetNotifications(c *fiber.Ctx) error {
	userID := c.Locals("targetUserId").(string)

	db := database.Database.Db

	var notifications []models.Notification
	if err := db.Where("user_id = ? OR user_id IS NULL", userID).
		Order("created_at DESC").
		Limit(50).
		Find(&notifications).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch notifications!", nil)
	}

	result := make([]notificationWithRead, len(notifications))
	for i, notification := range notifications {
		isRead := notification.IsRead
		if notification.UserID == nil {
			var count int64
			if err := db.Model(&models.NotificationRead{}).
				Where("user_id = ? AND notification_id = ?", userID, notification.ID).
				Count(&count).Error; err != nil {
				return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch notifications!", nil)
			}
			isRead = count > 0
		}
		result[i] = notificationWithRead{Notification: notification, IsRead: isRead}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Notifications fetched successfully!", result)
}

// MarkRead marks one notification read for a user. Personal rows get a
// scoped flag update (zero rows affected is still success), global rows get
// an insert-or-ignore into notification_reads.
func MarkRead(c *fiber.Ctx) error {
	userID := c.Locals("targetUserId").(string)
	notificationID := c.Locals("notificationId").(int)

	db := database.Database.Db

	var notification models.Notification
	if err := db.First(&notification, notificationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Notification not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to mark notification as read!", nil)
	}

	if notification.UserID != nil {
		// Personal: the update is scoped to the owner, so another user's
		// request touches zero rows and succeeds without effect
		if err := db.Model(&models.Notification{}).
			Where("id = ? AND user_id = ?", notificationID, userID).
			Update("is_read", true).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to mark notification as read!", nil)
		}
	} else {
		read := models.NotificationRead{UserID: userID, NotificationID: uint(notificationID)}
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&read).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to mark notification as read!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Notification marked as read!", fiber.Map{
		"success": true,
	})
}

// MarkAllRead marks every personal notification of the user and every
// global notification read in one pass
func MarkAllRead(c *fiber.Ctx) error {
	userID := c.Locals("targetUserId").(string)

	db := database.Database.Db

	if err := db.Model(&models.Notification{}).
		Where("user_id = ?", userID).
		Update("is_read", true).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to mark notifications as read!", nil)
	}

	var globalIDs []uint
	if err := db.Model(&models.Notification{}).
		Where("user_id IS NULL").
		Pluck("id", &globalIDs).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to mark notifications as read!", nil)
	}

	if len(globalIDs) > 0 {
		reads := make([]models.NotificationRead, 0, len(globalIDs))
		for _, id := range globalIDs {
			reads = append(reads, models.NotificationRead{UserID: userID, NotificationID: id})
		}
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&reads).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to mark notifications as read!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "All notifications marked as read!", fiber.Map{
		"success": true,
	})
}

// CreateNotification creates a personal or global notification
func CreateNotification(c *fiber.Ctx) error {
	reqData := c.Locals("notificationData").(*notificationValidator.CreateNotificationRequest)

	notification := models.Notification{
		UserID:  reqData.UserID,
		Title:   reqData.Title,
		Message: reqData.Message,
		Type:    reqData.Type,
		Link:    reqData.Link,
	}
	if notification.Type == "" {
		notification.Type = "system"
	}

	if err := database.Database.Db.Create(&notification).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create notification!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Notification created successfully!", notification)
}
