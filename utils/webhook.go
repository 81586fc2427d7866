package utils

import (
	"lms/config"
	"log"
	"time"

	"github.com/go-resty/resty/v2"
)

// FireAnnouncementWebhook posts an announcement event to the configured
// webhook URL. Delivery is fire and forget; failures are only logged.
func FireAnnouncementWebhook(announcementID uint, title, priority string) {
	url := config.AppConfig.AnnouncementWebhookURL
	if url == "" {
		return
	}

	client := resty.New().SetTimeout(10 * time.Second)

	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{
			"event":           "announcement.created",
			"announcement_id": announcementID,
			"title":           title,
			"priority":        priority,
		}).
		Post(url)
	if err != nil {
		log.Printf("Error calling announcement webhook: %v", err)
		return
	}
	if resp.IsError() {
		log.Printf("Announcement webhook returned status %d", resp.StatusCode())
	}
}
