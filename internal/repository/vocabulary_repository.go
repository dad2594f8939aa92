//go:generate mockery --name VocabularyRepository --output ./mocks --outpkg mocks --case=underscore
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

type VocabularyRepository interface {
	Create(ctx context.Context, db *gorm.DB, entry *model.VocabularyEntry) error
	FindByID(ctx context.Context, db *gorm.DB, userID, wordID uuid.UUID) (*model.VocabularyEntry, error)
	List(ctx context.Context, db *gorm.DB, userID uuid.UUID, filter model.WordListFilter) ([]*model.VocabularyEntry, error)
	FindForPractice(ctx context.Context, db *gorm.DB, userID uuid.UUID, categoryID *uuid.UUID, limit int) ([]*model.VocabularyEntry, error)
	Save(ctx context.Context, db *gorm.DB, entry *model.VocabularyEntry) error
	Update(ctx context.Context, db *gorm.DB, userID, wordID uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, db *gorm.DB, userID, wordID uuid.UUID) error
	CountByMasteryLevel(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]model.MasteryCount, error)
	ExistsByOriginal(ctx context.Context, db *gorm.DB, userID uuid.UUID, original, targetLanguage string) (bool, error)
	FindByOriginal(ctx context.Context, db *gorm.DB, userID uuid.UUID, original, targetLanguage string) (*model.VocabularyEntry, error)
}

type gormVocabularyRepository struct{}

func NewGormVocabularyRepository() VocabularyRepository {
	return &gormVocabularyRepository{}
}

func (r *gormVocabularyRepository) Create(ctx context.Context, db *gorm.DB, entry *model.VocabularyEntry) error {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).Omit("Category").Create(entry)
	if result.Error != nil {
		logger.Error("Error creating word in DB",
			"error", result.Error,
			"user_id", entry.UserID.String(),
			"original", entry.Original,
		)
		return fmt.Errorf("gormVocabularyRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormVocabularyRepository) FindByID(ctx context.Context, db *gorm.DB, userID, wordID uuid.UUID) (*model.VocabularyEntry, error) {
	logger := middleware.GetLogger(ctx)
	var entry model.VocabularyEntry
	result := db.WithContext(ctx).
		Preload("Category").
		Where("user_id = ? AND word_id = ?", userID, wordID).
		First(&entry)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding word by ID in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"word_id", wordID.String(),
		)
		return nil, fmt.Errorf("gormVocabularyRepository.FindByID: %w", result.Error)
	}
	return &entry, nil
}

// List は新しい順に単語を返します
func (r *gormVocabularyRepository) List(ctx context.Context, db *gorm.DB, userID uuid.UUID, filter model.WordListFilter) ([]*model.VocabularyEntry, error) {
	logger := middleware.GetLogger(ctx)
	var entries []*model.VocabularyEntry

	query := db.WithContext(ctx).Preload("Category").Where("user_id = ?", userID)
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	if err := query.Order("created_at DESC").Find(&entries).Error; err != nil {
		logger.Error("Error listing words in DB", "error", err, "user_id", userID.String())
		return nil, fmt.Errorf("gormVocabularyRepository.List: %w", err)
	}
	return entries, nil
}

// FindForPractice は習熟度の低い順、未練習を先頭に練習日時の古い順で返します
func (r *gormVocabularyRepository) FindForPractice(ctx context.Context, db *gorm.DB, userID uuid.UUID, categoryID *uuid.UUID, limit int) ([]*model.VocabularyEntry, error) {
	logger := middleware.GetLogger(ctx)
	var entries []*model.VocabularyEntry

	query := db.WithContext(ctx).Where("user_id = ?", userID)
	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}
	err := query.
		Order("mastery_level ASC").
		Order("last_practiced IS NOT NULL").
		Order("last_practiced ASC").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		logger.Error("Error finding practice words in DB", "error", err, "user_id", userID.String())
		return nil, fmt.Errorf("gormVocabularyRepository.FindForPractice: %w", err)
	}
	return entries, nil
}

// Save はマスタリー関連の項目を書き戻します
func (r *gormVocabularyRepository) Save(ctx context.Context, db *gorm.DB, entry *model.VocabularyEntry) error {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).Model(entry).
		Select("xp_points", "mastery_level", "correct_count", "incorrect_count", "last_practiced", "updated_at").
		Updates(entry)
	if result.Error != nil {
		logger.Error("Error saving word progress in DB",
			"error", result.Error,
			"word_id", entry.WordID.String(),
		)
		return fmt.Errorf("gormVocabularyRepository.Save: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormVocabularyRepository) Update(ctx context.Context, db *gorm.DB, userID, wordID uuid.UUID, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)
	if len(updates) == 0 {
		return nil
	}
	result := db.WithContext(ctx).Model(&model.VocabularyEntry{}).
		Where("user_id = ? AND word_id = ?", userID, wordID).
		Updates(updates)
	if result.Error != nil {
		logger.Error("Error updating word in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"word_id", wordID.String(),
		)
		return fmt.Errorf("gormVocabularyRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormVocabularyRepository) Delete(ctx context.Context, db *gorm.DB, userID, wordID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).Where("user_id = ? AND word_id = ?", userID, wordID).Delete(&model.VocabularyEntry{})
	if result.Error != nil {
		logger.Error("Error deleting word in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"word_id", wordID.String(),
		)
		return fmt.Errorf("gormVocabularyRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormVocabularyRepository) CountByMasteryLevel(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]model.MasteryCount, error) {
	logger := middleware.GetLogger(ctx)
	var counts []model.MasteryCount
	err := db.WithContext(ctx).Model(&model.VocabularyEntry{}).
		Select("mastery_level AS level, COUNT(*) AS count").
		Where("user_id = ?", userID).
		Group("mastery_level").
		Order("mastery_level").
		Scan(&counts).Error
	if err != nil {
		logger.Error("Error counting words by mastery level in DB", "error", err, "user_id", userID.String())
		return nil, fmt.Errorf("gormVocabularyRepository.CountByMasteryLevel: %w", err)
	}
	return counts, nil
}

func (r *gormVocabularyRepository) ExistsByOriginal(ctx context.Context, db *gorm.DB, userID uuid.UUID, original, targetLanguage string) (bool, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	err := db.WithContext(ctx).Model(&model.VocabularyEntry{}).
		Where("user_id = ? AND original = ? AND target_language = ?", userID, original, targetLanguage).
		Count(&count).Error
	if err != nil {
		logger.Error("Error checking word existence in DB",
			"error", err,
			"user_id", userID.String(),
			"original", original,
		)
		return false, fmt.Errorf("gormVocabularyRepository.ExistsByOriginal: %w", err)
	}
	return count > 0, nil
}

func (r *gormVocabularyRepository) FindByOriginal(ctx context.Context, db *gorm.DB, userID uuid.UUID, original, targetLanguage string) (*model.VocabularyEntry, error) {
	logger := middleware.GetLogger(ctx)
	var entry model.VocabularyEntry
	result := db.WithContext(ctx).
		Preload("Category").
		Where("user_id = ? AND original = ? AND target_language = ?", userID, original, targetLanguage).
		First(&entry)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding word by original in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"original", original,
		)
		return nil, fmt.Errorf("gormVocabularyRepository.FindByOriginal: %w", result.Error)
	}
	return &entry, nil
}
