// Package seed は初期データ (カテゴリとデモユーザー) を投入します。
package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"langy/internal/config"
	"langy/internal/middleware"
	"langy/internal/model"
	"langy/internal/repository"
)

const (
	DemoEmail    = "demo@langy.app"
	DemoPassword = "demo1234"
)

// ErrSeedingDisabled は本番環境で明示的な許可なくシードしようとした場合のエラー
var ErrSeedingDisabled = errors.New("seeding is disabled in prod; set LANGY_ENABLE_SEEDING=true to override")

type Seeder struct {
	db           *gorm.DB
	userRepo     repository.UserRepository
	categoryRepo repository.CategoryRepository
}

func NewSeeder(db *gorm.DB, userRepo repository.UserRepository, categoryRepo repository.CategoryRepository) *Seeder {
	return &Seeder{db: db, userRepo: userRepo, categoryRepo: categoryRepo}
}

// Allowed は環境と LANGY_ENABLE_SEEDING の値からデモデータ投入の可否を判定します
func Allowed(cfg *config.Config, enableFlag string) error {
	if cfg.App.Env == "prod" && enableFlag != "true" {
		return ErrSeedingDisabled
	}
	return nil
}

// Categories は name をキーにカテゴリを upsert し、件数を返します
func (s *Seeder) Categories(ctx context.Context, seeds []config.CategorySeed) (int, error) {
	logger := middleware.GetLogger(ctx)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, c := range seeds {
			category := &model.Category{
				Name:        c.Name,
				Description: c.Description,
				Color:       c.Color,
				Icon:        c.Icon,
			}
			if err := s.categoryRepo.Upsert(ctx, tx, category); err != nil {
				return fmt.Errorf("upsert category %q: %w", c.Name, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	logger.Info("Categories seeded", "count", len(seeds))
	return len(seeds), nil
}

// DemoUser はデモユーザーを作成します。既に存在すればそのまま返す
func (s *Seeder) DemoUser(ctx context.Context) (*model.User, error) {
	logger := middleware.GetLogger(ctx)

	existing, err := s.userRepo.FindByEmail(ctx, s.db, DemoEmail)
	if err == nil {
		logger.Info("Demo user already exists", "user_id", existing.UserID)
		return existing, nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash demo password: %w", err)
	}

	user := &model.User{
		UserID:                uuid.New(),
		Email:                 DemoEmail,
		Name:                  "Demo User",
		PasswordHash:          string(hash),
		NativeLanguage:        config.DefaultSourceLanguage,
		TargetLanguage:        "es",
		IsVerified:            true,
		ProfileSetupCompleted: true,
		OnboardingCompleted:   true,
	}
	if err := s.userRepo.Create(ctx, s.db, user); err != nil {
		return nil, err
	}

	logger.Info("Demo user created", "user_id", user.UserID, "email", user.Email)
	return user, nil
}
