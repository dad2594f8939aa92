//go:generate mockery --name UserRepository --output ./mocks --outpkg mocks --case=underscore
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

type UserRepository interface {
	Create(ctx context.Context, db *gorm.DB, user *model.User) error
	FindByID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.User, error)
	FindByEmail(ctx context.Context, db *gorm.DB, email string) (*model.User, error)
	Update(ctx context.Context, db *gorm.DB, userID uuid.UUID, updates map[string]interface{}) error
	IncrementCounter(ctx context.Context, db *gorm.DB, userID uuid.UUID, field string, delta int) error
	SetStreak(ctx context.Context, db *gorm.DB, userID uuid.UUID, streak int) error
	ListIDs(ctx context.Context, db *gorm.DB) ([]uuid.UUID, error)
}

// 加算を許可するカラム
var counterFields = map[string]struct{}{
	model.CounterTotalWords:    {},
	model.CounterMasteredWords: {},
	model.CounterStreak:        {},
}

type gormUserRepository struct{}

func NewGormUserRepository() UserRepository {
	return &gormUserRepository{}
}

func (r *gormUserRepository) Create(ctx context.Context, db *gorm.DB, user *model.User) error {
	logger := middleware.GetLogger(ctx)

	result := db.WithContext(ctx).Create(user)
	if result.Error != nil {
		if isDuplicateKeyError(result.Error) {
			logger.Warn("Duplicate key error on create user", "error", result.Error, "email", user.Email)
			return model.ErrConflict
		}
		logger.Error("Error creating user in DB", "error", result.Error, "email", user.Email)
		return fmt.Errorf("gormUserRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormUserRepository) FindByID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.User, error) {
	logger := middleware.GetLogger(ctx)
	var user model.User

	result := db.WithContext(ctx).Where("user_id = ?", userID).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding user by ID in DB", "error", result.Error, "user_id", userID.String())
		return nil, fmt.Errorf("gormUserRepository.FindByID: %w", result.Error)
	}
	return &user, nil
}

func (r *gormUserRepository) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*model.User, error) {
	logger := middleware.GetLogger(ctx)
	var user model.User

	result := db.WithContext(ctx).Where("email = ?", email).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			logger.Debug("User not found by email", "email", email)
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding user by email in DB", "error", result.Error, "email", email)
		return nil, fmt.Errorf("gormUserRepository.FindByEmail: %w", result.Error)
	}
	return &user, nil
}

func (r *gormUserRepository) Update(ctx context.Context, db *gorm.DB, userID uuid.UUID, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)
	if len(updates) == 0 {
		return nil
	}
	result := db.WithContext(ctx).Model(&model.User{}).Where("user_id = ?", userID).Updates(updates)
	if result.Error != nil {
		logger.Error("Error updating user in DB", "error", result.Error, "user_id", userID.String())
		return fmt.Errorf("gormUserRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

// IncrementCounter は field = field + delta をDB側で実行します
func (r *gormUserRepository) IncrementCounter(ctx context.Context, db *gorm.DB, userID uuid.UUID, field string, delta int) error {
	logger := middleware.GetLogger(ctx)
	if _, ok := counterFields[field]; !ok {
		return fmt.Errorf("gormUserRepository.IncrementCounter: field %q: %w", field, model.ErrInvalidInput)
	}

	result := db.WithContext(ctx).Model(&model.User{}).
		Where("user_id = ?", userID).
		UpdateColumn(field, gorm.Expr(field+" + ?", delta))
	if result.Error != nil {
		logger.Error("Error incrementing user counter in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"field", field,
			"delta", delta,
		)
		return fmt.Errorf("gormUserRepository.IncrementCounter: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormUserRepository) SetStreak(ctx context.Context, db *gorm.DB, userID uuid.UUID, streak int) error {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).Model(&model.User{}).
		Where("user_id = ?", userID).
		UpdateColumn(model.CounterStreak, streak)
	if result.Error != nil {
		logger.Error("Error setting streak in DB", "error", result.Error, "user_id", userID.String())
		return fmt.Errorf("gormUserRepository.SetStreak: %w", result.Error)
	}
	return nil
}

func (r *gormUserRepository) ListIDs(ctx context.Context, db *gorm.DB) ([]uuid.UUID, error) {
	logger := middleware.GetLogger(ctx)
	var ids []uuid.UUID
	if err := db.WithContext(ctx).Model(&model.User{}).Order("created_at").Pluck("user_id", &ids).Error; err != nil {
		logger.Error("Error listing user IDs in DB", "error", err)
		return nil, fmt.Errorf("gormUserRepository.ListIDs: %w", err)
	}
	return ids, nil
}
