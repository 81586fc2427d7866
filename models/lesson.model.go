package models

import "gorm.io/gorm"

// Lesson belongs to exactly one course
type Lesson struct {
	gorm.Model
	CourseID   uint   `json:"course_id" gorm:"index;not null"`
	Title      string `json:"title" gorm:"not null"`
	Type       string `json:"type" gorm:"not null"` // video, text, article
	Content    string `json:"content" gorm:"type:text"`
	OrderIndex int    `json:"order_index" gorm:"default:0"`
}
