package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ユーザーの基本情報と集計カウンタ
type User struct {
	UserID                uuid.UUID      `gorm:"type:uuid;primaryKey" json:"user_id"`
	Email                 string         `gorm:"uniqueIndex;not null" json:"email"`
	Name                  string         `gorm:"not null" json:"name"`
	PasswordHash          string         `gorm:"not null" json:"-"`
	NativeLanguage        string         `gorm:"not null;default:en" json:"native_language"`
	TargetLanguage        string         `gorm:"not null;default:es" json:"target_language"`
	Avatar                *string        `json:"avatar,omitempty"`
	IsVerified            bool           `gorm:"not null;default:false" json:"is_verified"`
	ProfileSetupCompleted bool           `gorm:"not null;default:false" json:"profile_setup_completed"`
	OnboardingCompleted   bool           `gorm:"not null;default:false" json:"onboarding_completed"`
	Streak                int            `gorm:"not null;default:0" json:"streak"`
	TotalWords            int            `gorm:"not null;default:0" json:"total_words"`
	MasteredWords         int            `gorm:"not null;default:0" json:"mastered_words"`
	CreatedAt             time.Time      `json:"created_at"`
	UpdatedAt             time.Time      `json:"updated_at"`
	DeletedAt             gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// 集計カウンタのカラム名 (IncrementCounter で許可するもの)
const (
	CounterTotalWords    = "total_words"
	CounterMasteredWords = "mastered_words"
	CounterStreak        = "streak"
)

type ContextKey string

const (
	UserIDKey ContextKey = "userID"
)

// RegisterRequest は新規登録APIのリクエストボディの構造体 (DTO)
type RegisterRequest struct {
	Name           string `json:"name" validate:"required,min=1,max=100"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=6,max=72"`
	TargetLanguage string `json:"target_language,omitempty" validate:"omitempty,language"`
}

// UpdateProfileRequest はプロフィール更新のDTO (すべて任意)
type UpdateProfileRequest struct {
	Name           *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	TargetLanguage *string `json:"target_language,omitempty" validate:"omitempty,language"`
	Avatar         *string `json:"avatar,omitempty" validate:"omitempty,url"`
}

// ProfileSetupRequest は初回の言語設定のDTO
type ProfileSetupRequest struct {
	NativeLanguage string `json:"native_language" validate:"required,language"`
	TargetLanguage string `json:"target_language" validate:"required,language"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=6,max=72"`
}
