package model

import "github.com/google/uuid"

// TranslateRequest は翻訳リクエストのDTO
// AddToPractice は省略時 true として扱う
type TranslateRequest struct {
	Word           string     `json:"word" validate:"required,max=500"`
	TargetLanguage string     `json:"target_language" validate:"required,language"`
	SourceLanguage string     `json:"source_language,omitempty" validate:"omitempty,language"`
	AddToPractice  *bool      `json:"add_to_practice,omitempty"`
	CategoryID     *uuid.UUID `json:"category_id,omitempty"`
}

type TranslateResponse struct {
	Translation string           `json:"translation"`
	Word        *VocabularyEntry `json:"word,omitempty"`
}
