//go:generate mockery --name TranslationService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"langy/internal/config"
	"langy/internal/middleware"
	"langy/internal/model"
	"langy/internal/repository"
	"langy/internal/translate"
)

type TranslationService interface {
	Translate(ctx context.Context, userID uuid.UUID, req *model.TranslateRequest) (*model.TranslateResponse, error)
}

type translationService struct {
	db           *gorm.DB
	translator   translate.Translator
	userRepo     repository.UserRepository
	wordRepo     repository.VocabularyRepository
	practiceRepo repository.PracticeLogRepository
	cfg          *config.Config
}

func NewTranslationService(db *gorm.DB, translator translate.Translator, userRepo repository.UserRepository, wordRepo repository.VocabularyRepository, practiceRepo repository.PracticeLogRepository, cfg *config.Config) TranslationService {
	return &translationService{
		db:           db,
		translator:   translator,
		userRepo:     userRepo,
		wordRepo:     wordRepo,
		practiceRepo: practiceRepo,
		cfg:          cfg,
	}
}

// Translate は単語を翻訳し、add_to_practice (既定 true) なら単語帳にも登録します。
// 同じ単語が登録済みの場合は登録をスキップし、翻訳結果だけ返す。
func (s *translationService) Translate(ctx context.Context, userID uuid.UUID, req *model.TranslateRequest) (*model.TranslateResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	sourceLanguage := req.SourceLanguage
	if sourceLanguage == "" {
		sourceLanguage = s.cfg.Translate.DefaultSource
	}
	if !translate.IsSupported(req.TargetLanguage) {
		return nil, model.NewAppError("UNSUPPORTED_LANGUAGE", "Target language is not supported.", "target_language", model.ErrInvalidInput)
	}
	if !translate.IsSupported(sourceLanguage) {
		return nil, model.NewAppError("UNSUPPORTED_LANGUAGE", "Source language is not supported.", "source_language", model.ErrInvalidInput)
	}

	translated, err := s.translator.Translate(ctx, req.Word, sourceLanguage, req.TargetLanguage)
	if err != nil {
		logger.Error("Translation failed", "error", err)
		if errors.Is(err, translate.ErrNotConfigured) {
			return nil, model.NewAppError("TRANSLATION_UNAVAILABLE", "Translation service is not configured.", "", fmt.Errorf("%w: %v", model.ErrUpstream, err))
		}
		return nil, model.NewAppError("TRANSLATION_FAILED", "Translation failed.", "", fmt.Errorf("%w: %v", model.ErrUpstream, err))
	}

	resp := &model.TranslateResponse{Translation: translated}
	if req.AddToPractice != nil && !*req.AddToPractice {
		return resp, nil
	}

	added := false
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := s.wordRepo.FindByOriginal(ctx, tx, userID, req.Word, req.TargetLanguage)
		if err == nil {
			logger.Debug("Word already in vocabulary, returning existing entry", "word", req.Word)
			resp.Word = existing
			return nil
		}
		if !errors.Is(err, model.ErrNotFound) {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to check word.", "", err)
		}

		entry := &model.VocabularyEntry{
			WordID:         uuid.New(),
			UserID:         userID,
			CategoryID:     req.CategoryID,
			Original:       req.Word,
			Translation:    translated,
			SourceLanguage: sourceLanguage,
			TargetLanguage: req.TargetLanguage,
		}
		if err := s.wordRepo.Create(ctx, tx, entry); err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to save word.", "", err)
		}
		if err := s.userRepo.IncrementCounter(ctx, tx, userID, model.CounterTotalWords, 1); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("USER_NOT_FOUND", "User not found.", "", model.ErrNotFound)
			}
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to update counters.", "", err)
		}
		practice := &model.PracticeLog{
			LogID:        uuid.New(),
			UserID:       userID,
			ActivityType: model.ActivityTranslate,
			WordsCount:   1,
		}
		if err := s.practiceRepo.Create(ctx, tx, practice); err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to record practice.", "", err)
		}
		resp.Word = entry
		added = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Word translated", "source", sourceLanguage, "target", req.TargetLanguage, "added", added)
	return resp, nil
}
