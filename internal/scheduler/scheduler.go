// Package scheduler は定期メンテナンスジョブを実行します。
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"
	"gorm.io/gorm"

	"langy/internal/middleware"
	"langy/internal/repository"
)

const (
	jobTimeout      = 5 * time.Minute
	cleanupInterval = time.Hour
)

// StreakRefresher は全ユーザーのストリークを再計算します
type StreakRefresher interface {
	RefreshStreaks(ctx context.Context) (int, error)
}

// LimiterCleaner は使われなくなったレートリミッタの状態を捨てます
type LimiterCleaner interface {
	Cleanup() int
}

// Scheduler は gocron (UTC) の上でジョブを管理します
type Scheduler struct {
	scheduler *gocron.Scheduler
	logger    *slog.Logger

	db        *gorm.DB
	streaks   StreakRefresher
	tokenRepo repository.TokenRepository
	limiter   LimiterCleaner
	interval  time.Duration
}

// New はスケジューラを作成します。limiter は nil でもよい。
func New(db *gorm.DB, streaks StreakRefresher, tokenRepo repository.TokenRepository, limiter LimiterCleaner, interval time.Duration, logger *slog.Logger) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	s.SingletonModeAll()
	return &Scheduler{
		scheduler: s,
		logger:    logger,
		db:        db,
		streaks:   streaks,
		tokenRepo: tokenRepo,
		limiter:   limiter,
		interval:  interval,
	}
}

// Start はジョブを登録して非同期に実行を始めます
func (s *Scheduler) Start() error {
	if _, err := s.scheduler.Every(s.interval).Do(s.refreshStreaks); err != nil {
		return err
	}
	if _, err := s.scheduler.Every(cleanupInterval).Do(s.purgeExpiredTokens); err != nil {
		return err
	}
	if s.limiter != nil {
		if _, err := s.scheduler.Every(cleanupInterval).Do(s.cleanupLimiter); err != nil {
			return err
		}
	}

	s.scheduler.StartAsync()
	s.logger.Info("Scheduler started", "streak_refresh_interval", s.interval.String())
	return nil
}

// Stop は実行中のジョブの終了を待って停止します
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
	s.logger.Info("Scheduler stopped")
}

// RunOnce は全ジョブを同期的に1回実行します
func (s *Scheduler) RunOnce() {
	s.refreshStreaks()
	s.purgeExpiredTokens()
	if s.limiter != nil {
		s.cleanupLimiter()
	}
}

func (s *Scheduler) jobContext(job string) (context.Context, context.CancelFunc) {
	ctx := middleware.WithLogger(context.Background(), s.logger.With("job", job))
	return context.WithTimeout(ctx, jobTimeout)
}

func (s *Scheduler) refreshStreaks() {
	ctx, cancel := s.jobContext("refresh_streaks")
	defer cancel()

	start := time.Now()
	updated, err := s.streaks.RefreshStreaks(ctx)
	if err != nil {
		s.logger.Error("Streak refresh failed", "error", err, "updated", updated)
		return
	}
	s.logger.Debug("Streak refresh finished", "updated", updated, "duration", time.Since(start).String())
}

func (s *Scheduler) purgeExpiredTokens() {
	ctx, cancel := s.jobContext("purge_tokens")
	defer cancel()

	deleted, err := s.tokenRepo.DeleteExpired(ctx, s.db, time.Now())
	if err != nil {
		s.logger.Error("Token purge failed", "error", err)
		return
	}
	if deleted > 0 {
		s.logger.Info("Expired tokens purged", "deleted", deleted)
	}
}

func (s *Scheduler) cleanupLimiter() {
	if removed := s.limiter.Cleanup(); removed > 0 {
		s.logger.Debug("Rate limiter visitors evicted", "removed", removed)
	}
}
