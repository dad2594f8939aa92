package testutil

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"langy/internal/model"
)

// CreateUser はテスト用ユーザーを直接DBに作成します
func CreateUser(t testing.TB, db *gorm.DB, mutate ...func(*model.User)) *model.User {
	t.Helper()
	u := &model.User{
		UserID:         uuid.New(),
		Email:          uuid.NewString() + "@example.com",
		Name:           "Test User",
		PasswordHash:   "x",
		NativeLanguage: "en",
		TargetLanguage: "es",
	}
	for _, m := range mutate {
		m(u)
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

// CreateWord はテスト用の単語を直接DBに作成します
func CreateWord(t testing.TB, db *gorm.DB, userID uuid.UUID, original string, mutate ...func(*model.VocabularyEntry)) *model.VocabularyEntry {
	t.Helper()
	w := &model.VocabularyEntry{
		WordID:         uuid.New(),
		UserID:         userID,
		Original:       original,
		Translation:    original + "-tr",
		SourceLanguage: "en",
		TargetLanguage: "es",
	}
	for _, m := range mutate {
		m(w)
	}
	require.NoError(t, db.Omit("Category").Create(w).Error)
	return w
}

// CreateQuiz はテスト用の問題を直接DBに作成します
func CreateQuiz(t testing.TB, db *gorm.DB, userID uuid.UUID, word string) *model.Quiz {
	t.Helper()
	q := &model.Quiz{
		QuizID:        uuid.New(),
		UserID:        userID,
		Type:          model.QuizTypeMultipleChoice,
		Question:      "What is " + word + "?",
		CorrectAnswer: word,
		Options:       []string{word, "a", "b", "c"},
		Word:          word,
	}
	require.NoError(t, db.Create(q).Error)
	return q
}

// CreatePracticeLog はテスト用の練習ログを指定時刻で作成します
func CreatePracticeLog(t testing.TB, db *gorm.DB, userID uuid.UUID, at time.Time, words int, minutes *int) *model.PracticeLog {
	t.Helper()
	l := &model.PracticeLog{
		LogID:           uuid.New(),
		UserID:          userID,
		ActivityType:    model.ActivityQuiz,
		Score:           100,
		WordsCount:      words,
		DurationMinutes: minutes,
		CreatedAt:       at,
	}
	require.NoError(t, db.Create(l).Error)
	return l
}
