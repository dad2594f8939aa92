//go:generate mockery --name PracticeLogRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"langy/internal/middleware"
	"langy/internal/model"
)

type PracticeLogRepository interface {
	Create(ctx context.Context, db *gorm.DB, log *model.PracticeLog) error
	ListRecent(ctx context.Context, db *gorm.DB, userID uuid.UUID, limit int) ([]*model.PracticeLog, error)
	ListSince(ctx context.Context, db *gorm.DB, userID uuid.UUID, since time.Time) ([]*model.PracticeLog, error)
}

type gormPracticeLogRepository struct{}

func NewGormPracticeLogRepository() PracticeLogRepository {
	return &gormPracticeLogRepository{}
}

func (r *gormPracticeLogRepository) Create(ctx context.Context, db *gorm.DB, log *model.PracticeLog) error {
	logger := middleware.GetLogger(ctx)
	if err := db.WithContext(ctx).Create(log).Error; err != nil {
		logger.Error("Error creating practice log in DB",
			"error", err,
			"user_id", log.UserID.String(),
			"activity_type", log.ActivityType,
		)
		return fmt.Errorf("gormPracticeLogRepository.Create: %w", err)
	}
	return nil
}

func (r *gormPracticeLogRepository) ListRecent(ctx context.Context, db *gorm.DB, userID uuid.UUID, limit int) ([]*model.PracticeLog, error) {
	logger := middleware.GetLogger(ctx)
	var logs []*model.PracticeLog
	err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&logs).Error
	if err != nil {
		logger.Error("Error listing recent practice logs in DB", "error", err, "user_id", userID.String())
		return nil, fmt.Errorf("gormPracticeLogRepository.ListRecent: %w", err)
	}
	return logs, nil
}

func (r *gormPracticeLogRepository) ListSince(ctx context.Context, db *gorm.DB, userID uuid.UUID, since time.Time) ([]*model.PracticeLog, error) {
	logger := middleware.GetLogger(ctx)
	var logs []*model.PracticeLog
	err := db.WithContext(ctx).
		Where("user_id = ? AND created_at >= ?", userID, since).
		Order("created_at DESC").
		Find(&logs).Error
	if err != nil {
		logger.Error("Error listing practice logs since date in DB",
			"error", err,
			"user_id", userID.String(),
			"since", since,
		)
		return nil, fmt.Errorf("gormPracticeLogRepository.ListSince: %w", err)
	}
	return logs, nil
}
