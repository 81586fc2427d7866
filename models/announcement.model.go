package models

import (
	"time"

	"gorm.io/gorm"
)

// Announcement is always visible to all users
type Announcement struct {
	gorm.Model
	Title    string `json:"title" gorm:"not null"`
	Content  string `json:"content" gorm:"type:text"`
	Priority string `json:"priority" gorm:"default:'normal'"` // normal, high, urgent
}

// AnnouncementRead marks an announcement as read by one user
type AnnouncementRead struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	UserID         string    `json:"user_id" gorm:"index;not null;uniqueIndex:idx_announcement_read_pair"`
	AnnouncementID uint      `json:"announcement_id" gorm:"not null;uniqueIndex:idx_announcement_read_pair"`
	ReadAt         time.Time `json:"read_at" gorm:"autoCreateTime"`
}
