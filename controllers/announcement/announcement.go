package announcementController

import (
	"errors"
	"lms/database"
	"lms/middleware"
	"lms/models"
	"lms/utils"
	announcementValidator "lms/validators/announcement"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// announcementWithRead carries the per-user read state resolved from
// announcement_reads membership
type announcementWithRead struct {
	models.Announcement
	IsRead bool `json:"is_read"`
}

// GetAnnouncements lists announcements newest first. With a userId each row
// carries that user's read state; without one (admin listing) rows are
// returned as stored.
func GetAnnouncements(c *fiber.Ctx) error {
	userID := strings.TrimSpace(c.Query("userId"))

	db := database.Database.Db

	var announcements []models.Announcement
	if err := db.Order("created_at DESC").Find(&announcements).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch announcements!", nil)
	}

	if userID == "" {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Announcements fetched successfully!", announcements)
	}

	result := make([]announcementWithRead, len(announcements))
	for i, announcement := range announcements {
		var count int64
		if err := db.Model(&models.AnnouncementRead{}).
			Where("user_id = ? AND announcement_id = ?", userID, announcement.ID).
			Count(&count).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch announcements!", nil)
		}
		result[i] = announcementWithRead{Announcement: announcement, IsRead: count > 0}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Announcements fetched successfully!", result)
}

// MarkRead records that a user read an announcement; repeats are no-ops
func MarkRead(c *fiber.Ctx) error {
	userID := c.Locals("targetUserId").(string)
	announcementID := c.Locals("announcementId").(int)

	db := database.Database.Db

	var announcement models.Announcement
	if err := db.First(&announcement, announcementID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Announcement not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to mark announcement as read!", nil)
	}

	read := models.AnnouncementRead{UserID: userID, AnnouncementID: uint(announcementID)}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&read).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to mark announcement as read!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Announcement marked as read!", fiber.Map{
		"success": true,
	})
}

// CreateAnnouncement creates an announcement. Urgent announcements are
// emailed to every user and the configured webhook is notified.
func CreateAnnouncement(c *fiber.Ctx) error {
	reqData := c.Locals("announcementData").(*announcementValidator.CreateAnnouncementRequest)

	announcement := models.Announcement{
		Title:    reqData.Title,
		Content:  reqData.Content,
		Priority: reqData.Priority,
	}
	if announcement.Priority == "" {
		announcement.Priority = "normal"
	}

	db := database.Database.Db

	if err := db.Create(&announcement).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create announcement!", nil)
	}

	// Notify Subscribers (Async)
	if announcement.Priority == "urgent" {
		go func(a models.Announcement) {
			var users []models.User
			if err := database.Database.Db.Find(&users).Error; err != nil {
				log.Printf("Error fetching users for announcement email: %v", err)
				return
			}
			recipients := make([]string, 0, len(users))
			for _, u := range users {
				if u.Email != "" {
					recipients = append(recipients, u.Email)
				}
			}
			if len(recipients) == 0 {
				return
			}
			if err := utils.SendAnnouncementEmail(recipients, a.Title, a.Content); err != nil {
				log.Printf("Error sending announcement email: %v", err)
			}
		}(announcement)
	}

	go utils.FireAnnouncementWebhook(announcement.ID, announcement.Title, announcement.Priority)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Announcement created successfully!", announcement)
}

// UpdateAnnouncement applies a partial update
func UpdateAnnouncement(c *fiber.Ctx) error {
	announcementID := c.Locals("announcementId").(int)

	reqData := new(struct {
		Title    *string `json:"title"`
		Content  *string `json:"content"`
		Priority *string `json:"priority"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	updates := map[string]interface{}{}
	if reqData.Title != nil {
		updates["title"] = *reqData.Title
	}
	if reqData.Content != nil {
		updates["content"] = *reqData.Content
	}
	if reqData.Priority != nil {
		updates["priority"] = *reqData.Priority
	}

	if len(updates) == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "No fields to update!", nil)
	}

	db := database.Database.Db

	var announcement models.Announcement
	if err := db.First(&announcement, announcementID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Announcement not found!", nil)
	}

	if err := db.Model(&announcement).Updates(updates).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update announcement!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Announcement updated successfully!", fiber.Map{
		"success": true,
	})
}

// DeleteAnnouncement removes an announcement and its read records
func DeleteAnnouncement(c *fiber.Ctx) error {
	announcementID := c.Locals("announcementId").(int)

	db := database.Database.Db

	var announcement models.Announcement
	if err := db.First(&announcement, announcementID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Announcement not found!", nil)
	}

	if err := db.Where("announcement_id = ?", announcementID).Delete(&models.AnnouncementRead{}).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete announcement!", nil)
	}

	if err := db.Unscoped().Delete(&announcement).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete announcement!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Announcement deleted successfully!", fiber.Map{
		"success": true,
	})
}
