//go:generate mockery --name Tutor --output ./mocks --outpkg mocks --case=underscore
//go:generate mockery --name TutorService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"langy/internal/ai"
	"langy/internal/middleware"
	"langy/internal/model"
	"langy/internal/repository"
)

// Tutor は AI による問題生成・例文・添削です。*ai.Tutor が実装する。
type Tutor interface {
	GenerateQuiz(ctx context.Context, words []ai.PracticeWord, count int, nativeLanguage, targetLanguage string) ([]model.GeneratedQuestion, error)
	ContextualSentence(ctx context.Context, word, translation, targetLanguage string) (*model.ContextualSentenceResponse, error)
	Feedback(ctx context.Context, sentence, targetLanguage string) (*model.FeedbackResponse, error)
}

type TutorService interface {
	ContextualSentence(ctx context.Context, req *model.ContextualSentenceRequest) (*model.ContextualSentenceResponse, error)
	Feedback(ctx context.Context, userID uuid.UUID, req *model.FeedbackRequest) (*model.FeedbackResponse, error)
}

type tutorService struct {
	db           *gorm.DB
	tutor        Tutor
	practiceRepo repository.PracticeLogRepository
}

func NewTutorService(db *gorm.DB, tutor Tutor, practiceRepo repository.PracticeLogRepository) TutorService {
	return &tutorService{
		db:           db,
		tutor:        tutor,
		practiceRepo: practiceRepo,
	}
}

func (s *tutorService) ContextualSentence(ctx context.Context, req *model.ContextualSentenceRequest) (*model.ContextualSentenceResponse, error) {
	return s.tutor.ContextualSentence(ctx, req.Word, req.Translation, req.TargetLanguage)
}

// Feedback は作文を添削させ、結果を練習ログに残します
func (s *tutorService) Feedback(ctx context.Context, userID uuid.UUID, req *model.FeedbackRequest) (*model.FeedbackResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	resp, err := s.tutor.Feedback(ctx, req.Sentence, req.TargetLanguage)
	if err != nil {
		return nil, err
	}

	practice := &model.PracticeLog{
		LogID:        uuid.New(),
		UserID:       userID,
		ActivityType: model.ActivityFeedback,
		Score:        resp.Score,
		WordsCount:   len(strings.Split(req.Sentence, " ")),
	}
	if err := s.practiceRepo.Create(ctx, s.db, practice); err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to record practice.", "", err)
	}

	logger.Info("Feedback generated", "score", resp.Score, "words", practice.WordsCount)
	return resp, nil
}
