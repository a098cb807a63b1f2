// cmd/main.go
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vocab_mastery/internal/config"
	"vocab_mastery/internal/handlers"
	"vocab_mastery/internal/logging"
	"vocab_mastery/internal/middleware"
	"vocab_mastery/internal/repository"
	"vocab_mastery/internal/scheduler"
	"vocab_mastery/internal/service"
)

func main() {
	// 設定ファイル読み込み用の一時的なロガー
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)
	log.Println("Log Config Loading...")

	if err := config.LoadConfig("../configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}
	cfg := &config.Cfg

	logger := logging.New(os.Stderr, cfg.Log.Level, os.Getenv("APP_ENV"))
	slog.SetDefault(logger)
	slog.Info("Application starting...")

	// 1. Database
	db, err := repository.NewDB(cfg.Database, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()

	if cfg.Database.AutoMigrate {
		if err := repository.AutoMigrate(db); err != nil {
			slog.Error("Error migrating database", slog.Any("error", err))
			os.Exit(1)
		}
		slog.Info("Database migration completed")
	}

	// 2. Dependency Injection
	catalogRepo := repository.NewGormCatalogRepository()
	itemRepo := repository.NewGormItemProgressRepository()
	lessonRepo := repository.NewGormLessonProgressRepository()
	sessionRepo := repository.NewGormSessionRepository()
	attemptRepo := repository.NewGormAttemptRepository()

	lessonService := service.NewLessonProgressService(db, catalogRepo, itemRepo, lessonRepo, sessionRepo)
	sessionService := service.NewSessionService(db, sessionRepo, catalogRepo, lessonService, cfg)
	attemptService := service.NewAttemptService(db, sessionRepo, attemptRepo, itemRepo, catalogRepo, lessonService)
	courseService := service.NewCourseService(db, catalogRepo, itemRepo, lessonRepo)
	reviewService := service.NewReviewService(db, itemRepo, cfg)

	h := handlers.Handlers{
		Practice: handlers.NewPracticeHandler(sessionService, attemptService, logger),
		Progress: handlers.NewProgressHandler(courseService, logger),
		Course:   handlers.NewCourseHandler(courseService, logger),
		Review:   handlers.NewReviewHandler(reviewService, logger),
	}

	auth := middleware.DevStudentContextMiddleware
	if cfg.Auth.Enabled {
		slog.Info("Applying JWT authentication middleware")
		auth = middleware.JWTAuthMiddleware(cfg)
	} else {
		slog.Warn("Authentication disabled: using X-Student-ID header (development only)")
	}

	// 3. Router
	r := handlers.NewRouter(h, auth, db, cfg, logger)

	// 4. 再集計のリトライ
	retryScheduler := scheduler.New(lessonService, cfg.Practice.RecomputeRetryInterval, logger)
	if err := retryScheduler.Start(); err != nil {
		slog.Error("Error starting recompute retry scheduler", slog.Any("error", err))
		os.Exit(1)
	}

	// 5. Start Server
	server := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	retryScheduler.Stop()
	// 停止前に残った再集計をもう一度だけ試す
	if pending := lessonService.PendingCount(); pending > 0 {
		done := lessonService.RetryDeferred(middleware.WithLogger(ctx, logger))
		slog.Info("Flushed deferred lesson recomputes on shutdown", slog.Int("pending", pending), slog.Int("succeeded", done))
	}

	log.Println("Server exiting")
}
