package utils

import (
	"lms/config"
	"lms/database"
	"lms/models"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[NOTIFICATION-RETENTION %s] %s", time.Now().Format(time.RFC3339), message)
}

// purgeAgedNotifications removes read personal notifications older than the
// retention window and read rows whose notification no longer exists
func purgeAgedNotifications() {
	db := database.Database.Db
	cutoff := time.Now().AddDate(0, 0, -config.AppConfig.NotificationRetentionDays)

	result := db.Unscoped().
		Where("user_id IS NOT NULL AND is_read = ? AND created_at < ?", true, cutoff).
		Delete(&models.Notification{})
	if result.Error != nil {
		logScheduler("Error purging personal notifications: " + result.Error.Error())
		return
	}
	if result.RowsAffected > 0 {
		logScheduler("Purged aged personal notifications")
	}

	if err := db.
		Where("notification_id NOT IN (?)", db.Model(&models.Notification{}).Select("id")).
		Delete(&models.NotificationRead{}).Error; err != nil {
		logScheduler("Error purging orphaned notification reads: " + err.Error())
	}
}

// StartNotificationRetentionScheduler runs the purge once a day
func StartNotificationRetentionScheduler() *cron.Cron {
	c := cron.New()

	if _, err := c.AddFunc("@daily", purgeAgedNotifications); err != nil {
		log.Fatalf("Failed to schedule notification retention job: %v", err)
	}

	c.Start()
	logScheduler("Notification retention scheduler started")
	return c
}
