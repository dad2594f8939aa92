//go:generate mockery --name QuizService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"langy/internal/ai"
	"langy/internal/config"
	"langy/internal/mastery"
	"langy/internal/middleware"
	"langy/internal/model"
	"langy/internal/repository"
	"langy/internal/session"
)

// QuizService はクイズの生成・回答・履歴を扱います
type QuizService interface {
	Generate(ctx context.Context, userID uuid.UUID, req *model.GenerateQuizRequest) (*model.GenerateQuizResponse, error)
	SubmitAnswer(ctx context.Context, userID uuid.UUID, req *model.SubmitQuizRequest) (*model.SubmitQuizResponse, error)
	History(ctx context.Context, userID uuid.UUID, limit int) (*model.QuizHistoryResponse, error)
}

type quizService struct {
	db           *gorm.DB
	tutor        Tutor
	userRepo     repository.UserRepository
	wordRepo     repository.VocabularyRepository
	quizRepo     repository.QuizRepository
	practiceRepo repository.PracticeLogRepository
	cfg          *config.Config
}

func NewQuizService(
	db *gorm.DB,
	tutor Tutor,
	userRepo repository.UserRepository,
	wordRepo repository.VocabularyRepository,
	quizRepo repository.QuizRepository,
	practiceRepo repository.PracticeLogRepository,
	cfg *config.Config,
) QuizService {
	return &quizService{
		db:           db,
		tutor:        tutor,
		userRepo:     userRepo,
		wordRepo:     wordRepo,
		quizRepo:     quizRepo,
		practiceRepo: practiceRepo,
		cfg:          cfg,
	}
}

// Generate は練習が必要な単語からクイズを作り、ユーザーの問題として保存します
func (s *quizService) Generate(ctx context.Context, userID uuid.UUID, req *model.GenerateQuizRequest) (*model.GenerateQuizResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	count := req.Count
	if count <= 0 {
		count = s.cfg.App.QuizSize
	}

	user, err := s.userRepo.FindByID(ctx, s.db, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("USER_NOT_FOUND", "User not found.", "", model.ErrNotFound)
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to load user.", "", err)
	}

	words, err := s.wordRepo.FindForPractice(ctx, s.db, userID, req.CategoryID, count)
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to load words.", "", err)
	}
	if len(words) == 0 {
		return nil, model.NewAppError("NO_WORDS", "No words available for practice. Add some words first.", "", model.ErrNotFound)
	}

	practiceWords := make([]ai.PracticeWord, 0, len(words))
	for _, w := range words {
		practiceWords = append(practiceWords, ai.PracticeWord{Original: w.Original, Translation: w.Translation})
	}

	questions, err := s.tutor.GenerateQuiz(ctx, practiceWords, count, user.NativeLanguage, user.TargetLanguage)
	if err != nil {
		return nil, err
	}
	if len(questions) > count {
		questions = questions[:count]
	}

	quizzes := make([]*model.Quiz, 0, len(questions))
	for _, q := range questions {
		quizzes = append(quizzes, &model.Quiz{
			QuizID:        uuid.New(),
			UserID:        userID,
			Type:          q.Type,
			Question:      q.Question,
			CorrectAnswer: q.CorrectAnswer,
			Options:       q.Options,
			Word:          q.Word,
			Context:       q.Context,
		})
	}
	if err := s.quizRepo.CreateQuizzes(ctx, s.db, quizzes); err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to save quiz.", "", err)
	}

	logger.Info("Quiz generated", "questions", len(quizzes), "words", len(words))
	return &model.GenerateQuizResponse{Quizzes: quizzes, Words: words}, nil
}

// SubmitAnswer は回答記録・習熟度更新・カウンタ加算・練習ログを1トランザクションで行います
func (s *quizService) SubmitAnswer(ctx context.Context, userID uuid.UUID, req *model.SubmitQuizRequest) (*model.SubmitQuizResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "quiz_id", req.QuizID, "word_id", req.WordID)
	isCorrect := req.IsCorrect != nil && *req.IsCorrect
	now := time.Now()

	var resp *model.SubmitQuizResponse
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.quizRepo.FindQuizByID(ctx, tx, userID, req.QuizID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("QUIZ_NOT_FOUND", "Quiz not found.", "quiz_id", model.ErrNotFound)
			}
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to load quiz.", "", err)
		}

		entry, err := s.wordRepo.FindByID(ctx, tx, userID, req.WordID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("WORD_NOT_FOUND", "Word not found.", "word_id", model.ErrNotFound)
			}
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to load word.", "", err)
		}

		result := &model.QuizAnswerRecord{
			ResultID:  uuid.New(),
			UserID:    userID,
			QuizID:    req.QuizID,
			WordID:    req.WordID,
			IsCorrect: isCorrect,
			TimeTaken: req.TimeTaken,
			CreatedAt: now,
		}
		if err := s.quizRepo.CreateResult(ctx, tx, result); err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to save result.", "", err)
		}

		outcome := mastery.RecordAnswer(entry, isCorrect, now)
		if err := s.wordRepo.Save(ctx, tx, entry); err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to update word.", "", err)
		}

		if outcome.ReachedMastery {
			if err := s.userRepo.IncrementCounter(ctx, tx, userID, model.CounterMasteredWords, 1); err != nil {
				return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to update counters.", "", err)
			}
		}

		score := 0
		if isCorrect {
			score = 100
		}
		practice := &model.PracticeLog{
			LogID:        uuid.New(),
			UserID:       userID,
			ActivityType: model.ActivityQuiz,
			Score:        score,
			WordsCount:   1,
			CreatedAt:    now,
		}
		if err := s.practiceRepo.Create(ctx, tx, practice); err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to record practice.", "", err)
		}

		resp = &model.SubmitQuizResponse{
			Result:         result,
			Word:           entry,
			XPGained:       outcome.XPDelta,
			PreviousLevel:  outcome.PreviousLevel,
			NewLevel:       outcome.Level,
			ReachedMastery: outcome.ReachedMastery,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Answer submitted",
		"correct", isCorrect,
		"xp_gained", resp.XPGained,
		"level", resp.NewLevel,
		"reached_mastery", resp.ReachedMastery,
	)
	return resp, nil
}

// History は直近の回答結果をセッション単位にまとめて返します
func (s *quizService) History(ctx context.Context, userID uuid.UUID, limit int) (*model.QuizHistoryResponse, error) {
	if limit <= 0 {
		limit = s.cfg.App.HistoryLimit
	}

	records, err := s.quizRepo.ListResults(ctx, s.db, userID, limit)
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to load quiz results.", "", err)
	}

	// total_results は取得した件数 (limit 適用後)
	return &model.QuizHistoryResponse{
		Sessions:     session.Reconstruct(records),
		TotalResults: len(records),
	}, nil
}
