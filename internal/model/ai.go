package model

// ContextualSentenceRequest は例文生成リクエストのDTO
type ContextualSentenceRequest struct {
	Word           string `json:"word" validate:"required,max=200"`
	Translation    string `json:"translation" validate:"required,max=200"`
	TargetLanguage string `json:"target_language" validate:"required,language"`
}

type ContextualSentenceResponse struct {
	Sentence    string `json:"sentence"`
	Translation string `json:"translation"`
	Explanation string `json:"explanation"`
}

// FeedbackRequest は作文添削リクエストのDTO
type FeedbackRequest struct {
	Sentence       string `json:"sentence" validate:"required,max=1000"`
	TargetLanguage string `json:"target_language" validate:"required,language"`
}

type FeedbackResponse struct {
	IsCorrect   bool     `json:"is_correct"`
	Score       int      `json:"score"`
	Feedback    string   `json:"feedback"`
	Corrections []string `json:"corrections"`
	Suggestions []string `json:"suggestions"`
}

// GeneratedQuestion はAIが返す問題1件分です
type GeneratedQuestion struct {
	Type          QuizType `json:"type"`
	Question      string   `json:"question"`
	CorrectAnswer string   `json:"correct_answer"`
	Options       []string `json:"options"`
	Word          string   `json:"word"`
	Context       string   `json:"context"`
}
