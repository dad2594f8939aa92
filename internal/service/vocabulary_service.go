//go:generate mockery --name VocabularyService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"langy/internal/config"
	"langy/internal/importer"
	"langy/internal/mastery"
	"langy/internal/middleware"
	"langy/internal/model"
	"langy/internal/repository"
)

// VocabularyService は単語帳の登録・編集・インポートを扱います
type VocabularyService interface {
	ListWords(ctx context.Context, userID uuid.UUID, filter model.WordListFilter) ([]*model.VocabularyEntry, error)
	AddWord(ctx context.Context, userID uuid.UUID, req *model.CreateWordRequest) (*model.VocabularyEntry, error)
	PatchWord(ctx context.Context, userID, wordID uuid.UUID, req *model.PatchWordRequest) (*model.VocabularyEntry, error)
	DeleteWord(ctx context.Context, userID, wordID uuid.UUID) error
	ImportWords(ctx context.Context, userID uuid.UUID, r io.Reader, filename string) (*model.ImportResult, error)
	ListCategories(ctx context.Context) ([]*model.Category, error)
}

type vocabularyService struct {
	db           *gorm.DB
	userRepo     repository.UserRepository
	wordRepo     repository.VocabularyRepository
	categoryRepo repository.CategoryRepository
	cfg          *config.Config
}

func NewVocabularyService(db *gorm.DB, userRepo repository.UserRepository, wordRepo repository.VocabularyRepository, categoryRepo repository.CategoryRepository, cfg *config.Config) VocabularyService {
	return &vocabularyService{
		db:           db,
		userRepo:     userRepo,
		wordRepo:     wordRepo,
		categoryRepo: categoryRepo,
		cfg:          cfg,
	}
}

func (s *vocabularyService) ListWords(ctx context.Context, userID uuid.UUID, filter model.WordListFilter) ([]*model.VocabularyEntry, error) {
	if filter.Limit <= 0 {
		filter.Limit = s.cfg.App.WordsLimit
	}
	words, err := s.wordRepo.List(ctx, s.db, userID, filter)
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to list words.", "", err)
	}
	return words, nil
}

// AddWord は単語を手動登録し、total_words を加算します
func (s *vocabularyService) AddWord(ctx context.Context, userID uuid.UUID, req *model.CreateWordRequest) (*model.VocabularyEntry, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	sourceLanguage := req.SourceLanguage
	if sourceLanguage == "" {
		sourceLanguage = s.cfg.Translate.DefaultSource
	}

	var created *model.VocabularyEntry
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.checkCategory(ctx, tx, req.CategoryID); err != nil {
			return err
		}

		exists, err := s.wordRepo.ExistsByOriginal(ctx, tx, userID, req.Original, req.TargetLanguage)
		if err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to check word.", "", err)
		}
		if exists {
			return model.NewAppError("DUPLICATE_WORD", "This word is already in your vocabulary.", "original", model.ErrConflict)
		}

		entry := &model.VocabularyEntry{
			WordID:         uuid.New(),
			UserID:         userID,
			CategoryID:     req.CategoryID,
			Original:       req.Original,
			Translation:    req.Translation,
			SourceLanguage: sourceLanguage,
			TargetLanguage: req.TargetLanguage,
			Context:        req.Context,
		}
		if err := s.createEntry(ctx, tx, entry); err != nil {
			return err
		}

		created, err = s.wordRepo.FindByID(ctx, tx, userID, entry.WordID)
		if err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to load word.", "", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Word added", "word_id", created.WordID)
	return created, nil
}

// PatchWord は翻訳・文脈・カテゴリのみ更新します
func (s *vocabularyService) PatchWord(ctx context.Context, userID, wordID uuid.UUID, req *model.PatchWordRequest) (*model.VocabularyEntry, error) {
	var updated *model.VocabularyEntry

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.findWord(ctx, tx, userID, wordID); err != nil {
			return err
		}

		updates := make(map[string]interface{})
		if req.Translation != nil {
			updates["translation"] = *req.Translation
		}
		if req.Context != nil {
			updates["context"] = *req.Context
		}
		if req.CategoryID != nil {
			if err := s.checkCategory(ctx, tx, req.CategoryID); err != nil {
				return err
			}
			updates["category_id"] = *req.CategoryID
		}

		if len(updates) > 0 {
			if err := s.wordRepo.Update(ctx, tx, userID, wordID, updates); err != nil {
				if errors.Is(err, model.ErrNotFound) {
					return wordNotFound()
				}
				return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to update word.", "", err)
			}
		}

		var err error
		updated, err = s.findWord(ctx, tx, userID, wordID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteWord は単語を論理削除し、集計カウンタを戻します
func (s *vocabularyService) DeleteWord(ctx context.Context, userID, wordID uuid.UUID) error {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "word_id", wordID)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		entry, err := s.findWord(ctx, tx, userID, wordID)
		if err != nil {
			return err
		}

		if err := s.wordRepo.Delete(ctx, tx, userID, wordID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return wordNotFound()
			}
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to delete word.", "", err)
		}

		if err := s.userRepo.IncrementCounter(ctx, tx, userID, model.CounterTotalWords, -1); err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to update counters.", "", err)
		}
		if entry.MasteryLevel == mastery.MaxLevel {
			if err := s.userRepo.IncrementCounter(ctx, tx, userID, model.CounterMasteredWords, -1); err != nil {
				return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to update counters.", "", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info("Word deleted")
	return nil
}

// ImportWords は xlsx / csv から単語を一括登録します。
// 既に登録済みの単語はスキップし、行単位の失敗は Errors に積んで続行する。
func (s *vocabularyService) ImportWords(ctx context.Context, userID uuid.UUID, r io.Reader, filename string) (*model.ImportResult, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "filename", filename)

	user, err := s.userRepo.FindByID(ctx, s.db, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("USER_NOT_FOUND", "User not found.", "", model.ErrNotFound)
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to load user.", "", err)
	}

	rows, rowErrs, err := importer.Parse(r, filename, importer.DefaultConfig())
	if err != nil {
		if errors.Is(err, importer.ErrUnsupportedFormat) {
			return nil, model.NewAppError("UNSUPPORTED_FILE", "Only .xlsx, .xlsm and .csv files are supported.", "file", model.ErrInvalidInput)
		}
		return nil, model.NewAppError("INVALID_FILE", "Failed to read the file.", "file", model.ErrInvalidInput)
	}

	result := &model.ImportResult{
		TotalProcessed: len(rows) + len(rowErrs),
		Errors:         make([]string, 0, len(rowErrs)),
	}
	for _, re := range rowErrs {
		result.Errors = append(result.Errors, re.Error())
	}

	categoryIDs := make(map[string]*uuid.UUID)
	for _, row := range rows {
		categoryID, err := s.resolveCategory(ctx, categoryIDs, row.Category)
		if err != nil {
			result.Errors = append(result.Errors, importer.RowError{Line: row.Line, Reason: err.Error()}.Error())
			continue
		}

		created, err := s.importRow(ctx, user, row, categoryID)
		if err != nil {
			logger.Warn("Failed to import row", "line", row.Line, "error", err)
			result.Errors = append(result.Errors, importer.RowError{Line: row.Line, Reason: "failed to save word"}.Error())
			continue
		}
		if created {
			result.Created++
		} else {
			result.Skipped++
		}
	}

	logger.Info("Import finished",
		"total", result.TotalProcessed,
		"created", result.Created,
		"skipped", result.Skipped,
		"errors", len(result.Errors),
	)
	return result, nil
}

func (s *vocabularyService) ListCategories(ctx context.Context) ([]*model.Category, error) {
	categories, err := s.categoryRepo.List(ctx, s.db)
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to list categories.", "", err)
	}
	return categories, nil
}

// --- ヘルパー関数 ---

// importRow は1行を1トランザクションで登録します。登録済みなら false を返す。
func (s *vocabularyService) importRow(ctx context.Context, user *model.User, row importer.Row, categoryID *uuid.UUID) (bool, error) {
	created := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := s.wordRepo.ExistsByOriginal(ctx, tx, user.UserID, row.Original, user.TargetLanguage)
		if err != nil {
			return err
		}
		if exists {
			return nil
		}

		entry := &model.VocabularyEntry{
			WordID:         uuid.New(),
			UserID:         user.UserID,
			CategoryID:     categoryID,
			Original:       row.Original,
			Translation:    row.Translation,
			SourceLanguage: s.cfg.Translate.DefaultSource,
			TargetLanguage: user.TargetLanguage,
		}
		if row.Context != "" {
			c := row.Context
			entry.Context = &c
		}
		if err := s.createEntry(ctx, tx, entry); err != nil {
			return err
		}
		created = true
		return nil
	})
	return created, err
}

// resolveCategory はカテゴリ名をIDに変換します。空欄は nil。
func (s *vocabularyService) resolveCategory(ctx context.Context, cache map[string]*uuid.UUID, name string) (*uuid.UUID, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}
	if id, ok := cache[name]; ok {
		return id, nil
	}

	category, err := s.categoryRepo.FindByName(ctx, s.db, name)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, errors.New("unknown category " + name)
		}
		return nil, errors.New("failed to look up category")
	}
	id := category.CategoryID
	cache[name] = &id
	return &id, nil
}

func (s *vocabularyService) createEntry(ctx context.Context, tx *gorm.DB, entry *model.VocabularyEntry) error {
	if err := s.wordRepo.Create(ctx, tx, entry); err != nil {
		return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to save word.", "", err)
	}
	if err := s.userRepo.IncrementCounter(ctx, tx, entry.UserID, model.CounterTotalWords, 1); err != nil {
		return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to update counters.", "", err)
	}
	return nil
}

func (s *vocabularyService) checkCategory(ctx context.Context, tx *gorm.DB, categoryID *uuid.UUID) error {
	if categoryID == nil {
		return nil
	}
	if _, err := s.categoryRepo.FindByID(ctx, tx, *categoryID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.NewAppError("INVALID_CATEGORY", "Category does not exist.", "category_id", model.ErrInvalidInput)
		}
		return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to load category.", "", err)
	}
	return nil
}

func (s *vocabularyService) findWord(ctx context.Context, tx *gorm.DB, userID, wordID uuid.UUID) (*model.VocabularyEntry, error) {
	entry, err := s.wordRepo.FindByID(ctx, tx, userID, wordID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, wordNotFound()
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to load word.", "", err)
	}
	return entry, nil
}

func wordNotFound() error {
	return model.NewAppError("WORD_NOT_FOUND", "Word not found.", "", model.ErrNotFound)
}
