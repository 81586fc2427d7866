package models

import "gorm.io/gorm"

// FAQ entry, ordered by OrderIndex on listing
type FAQ struct {
	gorm.Model
	Question   string `json:"question" gorm:"not null"`
	Answer     string `json:"answer" gorm:"type:text"`
	Category   string `json:"category"`
	OrderIndex int    `json:"order_index" gorm:"default:0"`
}
