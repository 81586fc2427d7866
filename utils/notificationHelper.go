package utils

import (
	"lms/database"
	"lms/models"
	"log"
)

// CreateNotification inserts a notification row; userID nil makes it global.
// Failures are logged, never propagated, so content creation is not broken
// by a notification problem.
func CreateNotification(userID *string, title, message, notificationType, link string) {
	notification := models.Notification{
		UserID:  userID,
		Title:   title,
		Message: message,
		Type:    notificationType,
		Link:    link,
	}
	if notification.Type == "" {
		notification.Type = "system"
	}

	if err := database.Database.Db.Create(&notification).Error; err != nil {
		log.Printf("Failed to create notification: %v", err)
	}
}
