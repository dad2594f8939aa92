//go:generate mockery --name StatsService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"langy/internal/middleware"
	"langy/internal/model"
	"langy/internal/repository"
	"langy/internal/streak"
)

const (
	streakLogLimit = 30
	weeklyWindow   = 7 * 24 * time.Hour
)

// StatsService は学習状況の集計を扱います
type StatsService interface {
	GetStats(ctx context.Context, userID uuid.UUID) (*model.StatsResponse, error)
	RefreshStreaks(ctx context.Context) (int, error)
}

type statsService struct {
	db           *gorm.DB
	userRepo     repository.UserRepository
	wordRepo     repository.VocabularyRepository
	practiceRepo repository.PracticeLogRepository
}

func NewStatsService(db *gorm.DB, userRepo repository.UserRepository, wordRepo repository.VocabularyRepository, practiceRepo repository.PracticeLogRepository) StatsService {
	return &statsService{
		db:           db,
		userRepo:     userRepo,
		wordRepo:     wordRepo,
		practiceRepo: practiceRepo,
	}
}

func (s *statsService) GetStats(ctx context.Context, userID uuid.UUID) (*model.StatsResponse, error) {
	user, err := s.userRepo.FindByID(ctx, s.db, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("USER_NOT_FOUND", "User not found.", "", model.ErrNotFound)
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to load user.", "", err)
	}

	currentStreak, err := s.computeStreak(ctx, userID)
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to compute streak.", "", err)
	}

	weekly, err := s.practiceRepo.ListSince(ctx, s.db, userID, time.Now().Add(-weeklyWindow))
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to load practice logs.", "", err)
	}

	breakdown, err := s.wordRepo.CountByMasteryLevel(ctx, s.db, userID)
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to count words.", "", err)
	}
	if breakdown == nil {
		breakdown = []model.MasteryCount{}
	}

	return &model.StatsResponse{
		TotalWords:       user.TotalWords,
		MasteredWords:    user.MasteredWords,
		Streak:           currentStreak,
		WeeklyStats:      summarizeWeek(weekly),
		MasteryBreakdown: breakdown,
	}, nil
}

// RefreshStreaks は全ユーザーの streak を再計算して保存し、更新件数を返します。
// 個々のユーザーの失敗はログに残して続行する。
func (s *statsService) RefreshStreaks(ctx context.Context) (int, error) {
	logger := middleware.GetLogger(ctx)

	ids, err := s.userRepo.ListIDs(ctx, s.db)
	if err != nil {
		return 0, err
	}

	updated := 0
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return updated, err
		}
		value, err := s.computeStreak(ctx, id)
		if err != nil {
			logger.Error("Failed to compute streak", "error", err, "user_id", id)
			continue
		}
		if err := s.userRepo.SetStreak(ctx, s.db, id, value); err != nil {
			logger.Error("Failed to store streak", "error", err, "user_id", id)
			continue
		}
		updated++
	}

	logger.Info("Streaks refreshed", "users", len(ids), "updated", updated)
	return updated, nil
}

func (s *statsService) computeStreak(ctx context.Context, userID uuid.UUID) (int, error) {
	logs, err := s.practiceRepo.ListRecent(ctx, s.db, userID, streakLogLimit)
	if err != nil {
		return 0, err
	}
	dates := make([]time.Time, 0, len(logs))
	for _, l := range logs {
		dates = append(dates, l.CreatedAt)
	}
	return streak.Calculate(dates), nil
}

func summarizeWeek(logs []*model.PracticeLog) model.WeeklyStats {
	stats := model.WeeklyStats{TotalSessions: len(logs)}
	for _, l := range logs {
		stats.TotalWords += l.WordsCount
		if l.DurationMinutes != nil {
			stats.TotalMinutes += *l.DurationMinutes
		}
	}
	return stats
}
