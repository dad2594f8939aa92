//go:generate mockery --name QuizRepository --output ./mocks --outpkg mocks --case=underscore
// internal/repository/quiz_repository.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"langy/internal/middleware"
	"langy/internal/model"
)

// QuizRepository は生成した問題と回答結果を扱います。
// 回答結果 (QuizAnswerRecord) は追記のみで、更新メソッドは持たない。
type QuizRepository interface {
	CreateQuizzes(ctx context.Context, db *gorm.DB, quizzes []*model.Quiz) error
	FindQuizByID(ctx context.Context, db *gorm.DB, userID, quizID uuid.UUID) (*model.Quiz, error)
	CreateResult(ctx context.Context, db *gorm.DB, result *model.QuizAnswerRecord) error
	ListResults(ctx context.Context, db *gorm.DB, userID uuid.UUID, limit int) ([]*model.QuizAnswerRecord, error) // Word, Quiz は Preload する
}

type gormQuizRepository struct{}

func NewGormQuizRepository() QuizRepository {
	return &gormQuizRepository{}
}

func (r *gormQuizRepository) CreateQuizzes(ctx context.Context, db *gorm.DB, quizzes []*model.Quiz) error {
	logger := middleware.GetLogger(ctx)
	if len(quizzes) == 0 {
		return nil
	}
	if err := db.WithContext(ctx).Create(quizzes).Error; err != nil {
		logger.Error("Error creating quizzes in DB", "error", err, "count", len(quizzes))
		return fmt.Errorf("gormQuizRepository.CreateQuizzes: %w", err)
	}
	return nil
}

func (r *gormQuizRepository) FindQuizByID(ctx context.Context, db *gorm.DB, userID, quizID uuid.UUID) (*model.Quiz, error) {
	logger := middleware.GetLogger(ctx)
	var quiz model.Quiz
	err := db.WithContext(ctx).Where("user_id = ? AND quiz_id = ?", userID, quizID).First(&quiz).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding quiz by ID in DB",
			"error", err,
			"user_id", userID.String(),
			"quiz_id", quizID.String(),
		)
		return nil, fmt.Errorf("gormQuizRepository.FindQuizByID: %w", err)
	}
	return &quiz, nil
}

func (r *gormQuizRepository) CreateResult(ctx context.Context, db *gorm.DB, result *model.QuizAnswerRecord) error {
	logger := middleware.GetLogger(ctx)
	if err := db.WithContext(ctx).Omit("Word", "Quiz").Create(result).Error; err != nil {
		logger.Error("Error creating quiz result in DB",
			"error", err,
			"user_id", result.UserID.String(),
			"quiz_id", result.QuizID.String(),
		)
		return fmt.Errorf("gormQuizRepository.CreateResult: %w", err)
	}
	return nil
}

// ListResults は新しい順に最大 limit 件を返します
func (r *gormQuizRepository) ListResults(ctx context.Context, db *gorm.DB, userID uuid.UUID, limit int) ([]*model.QuizAnswerRecord, error) {
	logger := middleware.GetLogger(ctx)
	var results []*model.QuizAnswerRecord
	err := db.WithContext(ctx).
		Preload("Word").
		Preload("Quiz").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&results).Error
	if err != nil {
		logger.Error("Error listing quiz results in DB", "error", err, "user_id", userID.String())
		return nil, fmt.Errorf("gormQuizRepository.ListResults: %w", err)
	}
	return results, nil
}
