package model

import (
	"time"

	"github.com/google/uuid"
)

type ActivityType string

const (
	ActivityQuiz      ActivityType = "quiz"
	ActivityFeedback  ActivityType = "feedback"
	ActivityTranslate ActivityType = "translate"
)

// PracticeLog は学習アクティビティの記録 (ストリーク・週次統計の元データ)
type PracticeLog struct {
	LogID           uuid.UUID    `gorm:"type:uuid;primaryKey" json:"log_id"`
	UserID          uuid.UUID    `gorm:"type:uuid;not null;index:idx_logs_user_created" json:"-"`
	ActivityType    ActivityType `gorm:"not null" json:"activity_type"`
	Score           int          `gorm:"not null;default:0" json:"score"`
	WordsCount      int          `gorm:"not null;default:0" json:"words_count"`
	DurationMinutes *int         `json:"duration_minutes,omitempty"`
	CreatedAt       time.Time    `gorm:"index:idx_logs_user_created" json:"created_at"`
}

func (PracticeLog) TableName() string {
	return "practice_logs"
}
