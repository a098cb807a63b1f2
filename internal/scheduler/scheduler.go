package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"vocab_mastery/internal/middleware"

	"github.com/go-co-op/gocron"
)

// Retrier は失敗したレッスン再集計を再実行する側のインターフェース
type Retrier interface {
	RetryDeferred(ctx context.Context) int
	PendingCount() int
}

// Scheduler は保留中のレッスン再集計を定期的に再試行します
type Scheduler struct {
	scheduler *gocron.Scheduler
	retrier   Retrier
	interval  time.Duration
	logger    *slog.Logger
}

func New(retrier Retrier, interval time.Duration, logger *slog.Logger) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	// 前回の実行が終わるまで次を始めない
	s.SingletonModeAll()
	return &Scheduler{
		scheduler: s,
		retrier:   retrier,
		interval:  interval,
		logger:    logger,
	}
}

// Start はジョブを登録し、ブロックせずに開始します
func (s *Scheduler) Start() error {
	if _, err := s.scheduler.Every(s.interval).Do(s.retryDeferred); err != nil {
		return fmt.Errorf("scheduler.Start: %w", err)
	}
	s.scheduler.StartAsync()
	s.logger.Info("Recompute retry scheduler started", "interval", s.interval.String())
	return nil
}

func (s *Scheduler) Stop() {
	s.scheduler.Stop()
	s.logger.Info("Recompute retry scheduler stopped")
}

func (s *Scheduler) retryDeferred() {
	pending := s.retrier.PendingCount()
	if pending == 0 {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.interval)
	defer cancel()
	ctx = middleware.WithLogger(ctx, s.logger.With("job", "recompute_retry"))

	succeeded := s.retrier.RetryDeferred(ctx)
	s.logger.Info("Retried deferred lesson recomputes",
		"pending", pending,
		"succeeded", succeeded,
		"remaining", s.retrier.PendingCount(),
	)
}
