package models

import "gorm.io/gorm"

// Setting is a single key/value configuration row
type Setting struct {
	gorm.Model
	Key   string `json:"key" gorm:"uniqueIndex;not null"`
	Value string `json:"value"`
}
