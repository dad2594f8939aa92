//go:generate mockery --name CategoryRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"langy/internal/middleware"
	"langy/internal/model"
)

type CategoryRepository interface {
	List(ctx context.Context, db *gorm.DB) ([]*model.Category, error)
	FindByID(ctx context.Context, db *gorm.DB, categoryID uuid.UUID) (*model.Category, error)
	FindByName(ctx context.Context, db *gorm.DB, name string) (*model.Category, error)
	Upsert(ctx context.Context, db *gorm.DB, category *model.Category) error
}

type gormCategoryRepository struct{}

func NewGormCategoryRepository() CategoryRepository {
	return &gormCategoryRepository{}
}

func (r *gormCategoryRepository) List(ctx context.Context, db *gorm.DB) ([]*model.Category, error) {
	logger := middleware.GetLogger(ctx)
	var categories []*model.Category
	if err := db.WithContext(ctx).Order("name").Find(&categories).Error; err != nil {
		logger.Error("Error listing categories in DB", "error", err)
		return nil, fmt.Errorf("gormCategoryRepository.List: %w", err)
	}
	return categories, nil
}

func (r *gormCategoryRepository) FindByID(ctx context.Context, db *gorm.DB, categoryID uuid.UUID) (*model.Category, error) {
	logger := middleware.GetLogger(ctx)
	var category model.Category
	if err := db.WithContext(ctx).Where("category_id = ?", categoryID).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding category by ID in DB", "error", err, "category_id", categoryID.String())
		return nil, fmt.Errorf("gormCategoryRepository.FindByID: %w", err)
	}
	return &category, nil
}

func (r *gormCategoryRepository) FindByName(ctx context.Context, db *gorm.DB, name string) (*model.Category, error) {
	logger := middleware.GetLogger(ctx)
	var category model.Category
	if err := db.WithContext(ctx).Where("name = ?", name).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding category by name in DB", "error", err, "name", name)
		return nil, fmt.Errorf("gormCategoryRepository.FindByName: %w", err)
	}
	return &category, nil
}

// Upsert は name をキーに作成または更新します
func (r *gormCategoryRepository) Upsert(ctx context.Context, db *gorm.DB, category *model.Category) error {
	logger := middleware.GetLogger(ctx)
	if category.CategoryID == uuid.Nil {
		category.CategoryID = uuid.New()
	}
	err := db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"description", "color", "icon", "updated_at"}),
	}).Create(category).Error
	if err != nil {
		logger.Error("Error upserting category in DB", "error", err, "name", category.Name)
		return fmt.Errorf("gormCategoryRepository.Upsert: %w", err)
	}
	return nil
}
