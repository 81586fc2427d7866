package models

import "gorm.io/gorm"

// Article is standalone reading material, optionally attached to a course
type Article struct {
	gorm.Model
	Title      string `json:"title" gorm:"not null"`
	Content    string `json:"content" gorm:"type:text"`
	Excerpt    string `json:"excerpt"`
	Thumbnail  string `json:"thumbnail"`
	CategoryID uint   `json:"category_id" gorm:"index"`
	CourseID   *uint  `json:"course_id" gorm:"index"`
	ReadTime   string `json:"read_time" gorm:"default:'5 min'"`
	// IsCompleted is the static flag returned when no user context is given;
	// per-user state lives in article_completions.
	IsCompleted bool `json:"is_completed" gorm:"default:false"`
}
