package models

import "gorm.io/gorm"

// Course is a named unit of learning content
type Course struct {
	gorm.Model
	Title       string `json:"title" gorm:"not null"`
	Description string `json:"description"`
	Thumbnail   string `json:"thumbnail"`
	CategoryID  uint   `json:"category_id" gorm:"index"`
	Duration    string `json:"duration" gorm:"default:'0h'"`
	// LessonsCount is the admin-declared lesson total and the authoritative
	// denominator for progress, independent of actual lesson rows.
	LessonsCount int    `json:"lessons_count" gorm:"default:0"`
	Progress     int    `json:"progress" gorm:"default:0"` // static value, 0-100
	Status       string `json:"status" gorm:"default:'draft'"`
}
