package ai

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"langy/internal/model"
)

// stubGenerator は固定の応答を返す Generator
type stubGenerator struct {
	text       string
	err        error
	lastPrompt string
}

func (s *stubGenerator) Generate(_ context.Context, prompt string) (string, error) {
	s.lastPrompt = prompt
	return s.text, s.err
}

func newTestTutor(gen Generator) *Tutor {
	return NewTutor(gen, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestTutor_GenerateQuiz(t *testing.T) {
	words := []PracticeWord{{Original: "dog", Translation: "perro"}, {Original: "cat", Translation: "gato"}}

	t.Run("正常系: コードブロック付きの応答からJSONを取り出す", func(t *testing.T) {
		gen := &stubGenerator{text: "Here you go:\n```json\n" + `[
			{"type":"definition","question":"Which word means dog?","correctAnswer":"perro","options":["perro","gato","pez","ave"],"word":"dog"},
			{"question":"What does 'gato' mean?","correctAnswer":"cat","options":["cat","dog","fish","bird"],"word":"cat"},
			{"type":"fill_blank","question":"","correctAnswer":"x"}
		]` + "\n```"}
		tutor := newTestTutor(gen)

		qs, err := tutor.GenerateQuiz(context.Background(), words, 5, "en", "es")
		require.NoError(t, err)
		require.Len(t, qs, 2)
		assert.Equal(t, model.QuizTypeDefinition, qs[0].Type)
		assert.Equal(t, "perro", qs[0].CorrectAnswer)
		// type がない場合は multiple_choice
		assert.Equal(t, model.QuizTypeMultipleChoice, qs[1].Type)

		assert.Contains(t, gen.lastPrompt, "Generate 5 diverse quiz questions")
		assert.Contains(t, gen.lastPrompt, "dog (perro), cat (gato)")
		assert.Contains(t, gen.lastPrompt, "Target language: Spanish")
	})

	t.Run("異常系: JSONがない応答", func(t *testing.T) {
		tutor := newTestTutor(&stubGenerator{text: "sorry, I cannot"})
		_, err := tutor.GenerateQuiz(context.Background(), words, 5, "en", "es")
		assert.ErrorIs(t, err, model.ErrUpstream)
	})

	t.Run("異常系: プロバイダのエラー", func(t *testing.T) {
		tutor := newTestTutor(&stubGenerator{err: errors.New("quota exceeded")})
		_, err := tutor.GenerateQuiz(context.Background(), words, 5, "en", "es")
		assert.ErrorIs(t, err, model.ErrUpstream)
	})
}

func TestTutor_ContextualSentence(t *testing.T) {
	gen := &stubGenerator{text: `{"sentence":"El perro corre.","translation":"The dog runs.","explanation":"Simple present."}`}
	tutor := newTestTutor(gen)

	got, err := tutor.ContextualSentence(context.Background(), "perro", "dog", "es")
	require.NoError(t, err)
	assert.Equal(t, "El perro corre.", got.Sentence)
	assert.Equal(t, "The dog runs.", got.Translation)
	assert.True(t, strings.Contains(gen.lastPrompt, `"perro" in Spanish`))
}

func TestTutor_Feedback(t *testing.T) {
	t.Run("正常系: スコアは0〜100に丸める", func(t *testing.T) {
		tutor := newTestTutor(&stubGenerator{text: `{"isCorrect":true,"score":140,"feedback":"Great","corrections":[]}`})
		got, err := tutor.Feedback(context.Background(), "Yo soy feliz", "es")
		require.NoError(t, err)
		assert.True(t, got.IsCorrect)
		assert.Equal(t, 100, got.Score)
		assert.NotNil(t, got.Suggestions)
	})

	t.Run("異常系: 壊れたJSON", func(t *testing.T) {
		tutor := newTestTutor(&stubGenerator{text: `{"isCorrect": tru`})
		_, err := tutor.Feedback(context.Background(), "x", "es")
		assert.ErrorIs(t, err, model.ErrUpstream)
	})
}

func TestNewGeminiGenerator_RequiresKey(t *testing.T) {
	_, err := NewGeminiGenerator(context.Background(), "", "gemini-2.5-flash-lite")
	assert.ErrorIs(t, err, ErrNotConfigured)
}
