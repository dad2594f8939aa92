package model

import (
	"time"

	"github.com/google/uuid"
)

// Category は単語の分類 (シードで投入される共有マスタ)
type Category struct {
	CategoryID  uuid.UUID `gorm:"type:uuid;primaryKey" json:"category_id"`
	Name        string    `gorm:"uniqueIndex;not null" json:"name"`
	Description string    `json:"description"`
	Color       string    `json:"color"`
	Icon        string    `json:"icon"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Category) TableName() string {
	return "categories"
}
