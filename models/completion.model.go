package models

import "time"

// LessonCompletion records that a user finished a lesson. The (user_id,
// lesson_id) pair is unique; re-marking a completed lesson is a no-op.
// Rows are hard-deleted on "mark incomplete" so the pair can be re-inserted.
type LessonCompletion struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      string    `json:"user_id" gorm:"index;not null;uniqueIndex:idx_lesson_completion_pair"`
	LessonID    uint      `json:"lesson_id" gorm:"not null;uniqueIndex:idx_lesson_completion_pair"`
	CompletedAt time.Time `json:"completed_at" gorm:"autoCreateTime"`
}

// ArticleCompletion records that a user finished an article
type ArticleCompletion struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      string    `json:"user_id" gorm:"index;not null;uniqueIndex:idx_article_completion_pair"`
	ArticleID   uint      `json:"article_id" gorm:"not null;uniqueIndex:idx_article_completion_pair"`
	CompletedAt time.Time `json:"completed_at" gorm:"autoCreateTime"`
}
