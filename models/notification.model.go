package models

import (
	"time"

	"gorm.io/gorm"
)

// Notification is a message for one user (UserID set) or for everyone
// (UserID nil). IsRead only carries meaning for personal rows; global rows
// track per-user reads in notification_reads.
type Notification struct {
	gorm.Model
	UserID  *string `json:"user_id" gorm:"index"`
	Title   string  `json:"title" gorm:"not null"`
	Message string  `json:"message" gorm:"type:text"`
	Type    string  `json:"type" gorm:"default:'system'"` // system, article, course
	Link    string  `json:"link"`
	IsRead  bool    `json:"is_read" gorm:"default:false"`
}

// NotificationRead marks a global notification as read by one user.
// Read-state is monotonic, so rows are only ever inserted.
type NotificationRead struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	UserID         string    `json:"user_id" gorm:"index;not null;uniqueIndex:idx_notification_read_pair"`
	NotificationID uint      `json:"notification_id" gorm:"not null;uniqueIndex:idx_notification_read_pair"`
	ReadAt         time.Time `json:"read_at" gorm:"autoCreateTime"`
}
