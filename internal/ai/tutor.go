package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"langy/internal/model"
)

var (
	jsonArrayPattern  = regexp.MustCompile(`\[[\s\S]*\]`)
	jsonObjectPattern = regexp.MustCompile(`\{[\s\S]*\}`)
)

// PracticeWord は問題作成に渡す単語です
type PracticeWord struct {
	Original    string
	Translation string
}

// Tutor はプロンプトの組み立てと応答の解釈を行います。
// 失敗はすべて model.ErrUpstream を含む AppError で返す。
type Tutor struct {
	gen    Generator
	logger *slog.Logger
}

func NewTutor(gen Generator, logger *slog.Logger) *Tutor {
	return &Tutor{gen: gen, logger: logger}
}

// モデルの応答はキャメルケースで返ってくる
type questionPayload struct {
	Type          string   `json:"type"`
	Question      string   `json:"question"`
	CorrectAnswer string   `json:"correctAnswer"`
	Options       []string `json:"options"`
	Word          string   `json:"word"`
	Context       string   `json:"context"`
}

type sentencePayload struct {
	Sentence    string `json:"sentence"`
	Translation string `json:"translation"`
	Explanation string `json:"explanation"`
}

type feedbackPayload struct {
	IsCorrect   bool     `json:"isCorrect"`
	Score       int      `json:"score"`
	Feedback    string   `json:"feedback"`
	Corrections []string `json:"corrections"`
	Suggestions []string `json:"suggestions"`
}

// GenerateQuiz は単語リストから count 問の問題を作らせます
func (t *Tutor) GenerateQuiz(ctx context.Context, words []PracticeWord, count int, nativeLanguage, targetLanguage string) ([]model.GeneratedQuestion, error) {
	text, err := t.gen.Generate(ctx, quizPrompt(words, count, nativeLanguage, targetLanguage))
	if err != nil {
		return nil, t.upstreamError("AI_QUIZ_FAILED", "Failed to generate quiz.", err)
	}

	var payload []questionPayload
	if err := extractJSON(text, jsonArrayPattern, &payload); err != nil {
		return nil, t.upstreamError("AI_QUIZ_FAILED", "Failed to generate quiz.", err)
	}

	questions := make([]model.GeneratedQuestion, 0, len(payload))
	for _, p := range payload {
		if strings.TrimSpace(p.Question) == "" || strings.TrimSpace(p.CorrectAnswer) == "" {
			t.logger.Warn("Skipping incomplete generated question", "word", p.Word)
			continue
		}
		questions = append(questions, model.GeneratedQuestion{
			Type:          normalizeType(p.Type),
			Question:      p.Question,
			CorrectAnswer: p.CorrectAnswer,
			Options:       p.Options,
			Word:          p.Word,
			Context:       p.Context,
		})
	}
	if len(questions) == 0 {
		return nil, t.upstreamError("AI_QUIZ_FAILED", "Failed to generate quiz.", fmt.Errorf("no usable questions in response"))
	}
	return questions, nil
}

// ContextualSentence は単語を使った例文を作らせます
func (t *Tutor) ContextualSentence(ctx context.Context, word, translation, targetLanguage string) (*model.ContextualSentenceResponse, error) {
	text, err := t.gen.Generate(ctx, sentencePrompt(word, translation, targetLanguage))
	if err != nil {
		return nil, t.upstreamError("AI_SENTENCE_FAILED", "Failed to generate contextual sentence.", err)
	}
	var p sentencePayload
	if err := extractJSON(text, jsonObjectPattern, &p); err != nil {
		return nil, t.upstreamError("AI_SENTENCE_FAILED", "Failed to generate contextual sentence.", err)
	}
	return &model.ContextualSentenceResponse{
		Sentence:    p.Sentence,
		Translation: p.Translation,
		Explanation: p.Explanation,
	}, nil
}

// Feedback は作文を添削させます。score は 0〜100 に丸める。
func (t *Tutor) Feedback(ctx context.Context, sentence, targetLanguage string) (*model.FeedbackResponse, error) {
	text, err := t.gen.Generate(ctx, feedbackPrompt(sentence, targetLanguage))
	if err != nil {
		return nil, t.upstreamError("AI_FEEDBACK_FAILED", "Failed to generate feedback.", err)
	}
	var p feedbackPayload
	if err := extractJSON(text, jsonObjectPattern, &p); err != nil {
		return nil, t.upstreamError("AI_FEEDBACK_FAILED", "Failed to generate feedback.", err)
	}

	score := p.Score
	if score < 0 {
		score = 0
	} else if score > 100 {
		score = 100
	}
	resp := &model.FeedbackResponse{
		IsCorrect:   p.IsCorrect,
		Score:       score,
		Feedback:    p.Feedback,
		Corrections: p.Corrections,
		Suggestions: p.Suggestions,
	}
	if resp.Corrections == nil {
		resp.Corrections = []string{}
	}
	if resp.Suggestions == nil {
		resp.Suggestions = []string{}
	}
	return resp, nil
}

func (t *Tutor) upstreamError(code, message string, err error) error {
	t.logger.Error("AI provider call failed", "code", code, "error", err)
	return model.NewAppError(code, message, "", fmt.Errorf("%w: %v", model.ErrUpstream, err))
}

// extractJSON はモデルの出力から最初のJSON部分を取り出してデコードします
func extractJSON(text string, pattern *regexp.Regexp, dst interface{}) error {
	match := pattern.FindString(text)
	if match == "" {
		return fmt.Errorf("no valid JSON in response")
	}
	if err := json.Unmarshal([]byte(match), dst); err != nil {
		return fmt.Errorf("decode JSON from response: %w", err)
	}
	return nil
}

func normalizeType(s string) model.QuizType {
	switch model.QuizType(strings.ToLower(strings.TrimSpace(s))) {
	case model.QuizTypeDefinition:
		return model.QuizTypeDefinition
	case model.QuizTypeFillBlank:
		return model.QuizTypeFillBlank
	default:
		return model.QuizTypeMultipleChoice
	}
}
