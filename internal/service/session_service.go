//go:generate mockery --name SessionService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"time"

	"vocab_mastery/internal/config"
	"vocab_mastery/internal/middleware"
	"vocab_mastery/internal/model"
	"vocab_mastery/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SessionService interface {
	StartSession(ctx context.Context, studentID, lessonID uuid.UUID, mode model.PracticeMode) (*model.PracticeSession, error)
	// FinishSession はセッションを1度だけ終了させます。2回目は ErrConflict
	FinishSession(ctx context.Context, studentID, sessionID uuid.UUID, durationSec int64) (*model.PracticeSession, error)
}

type sessionService struct {
	db          *gorm.DB
	sessionRepo repository.SessionRepository
	catalogRepo repository.CatalogRepository
	lessonSvc   LessonProgressService
	cfg         *config.Config
}

func NewSessionService(db *gorm.DB, sessionRepo repository.SessionRepository, catalogRepo repository.CatalogRepository, lessonSvc LessonProgressService, cfg *config.Config) SessionService {
	return &sessionService{
		db:          db,
		sessionRepo: sessionRepo,
		catalogRepo: catalogRepo,
		lessonSvc:   lessonSvc,
		cfg:         cfg,
	}
}

func (s *sessionService) StartSession(ctx context.Context, studentID, lessonID uuid.UUID, mode model.PracticeMode) (*model.PracticeSession, error) {
	logger := middleware.GetLogger(ctx).With("student_id", studentID, "lesson_id", lessonID)

	if !mode.Valid() {
		return nil, model.NewAppError("VALIDATION_ERROR", "練習モードが不正です。", "mode", model.ErrInvalidInput)
	}
	if _, err := s.catalogRepo.FindLesson(ctx, s.db, lessonID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("LESSON_NOT_FOUND", "レッスンが見つかりません。", "lesson_id", err)
		}
		logger.Error("Failed to find lesson", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "レッスンの確認中にエラーが発生しました。", "", err)
	}

	session := &model.PracticeSession{
		SessionID: uuid.New(),
		StudentID: studentID,
		LessonID:  lessonID,
		Mode:      mode,
		StartedAt: time.Now().UTC(),
	}
	if err := s.sessionRepo.Create(ctx, s.db, session); err != nil {
		logger.Error("Failed to create practice session", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "練習セッションの開始に失敗しました。", "", err)
	}

	logger.Info("Practice session started", "session_id", session.SessionID, "mode", mode)
	return session, nil
}

func (s *sessionService) FinishSession(ctx context.Context, studentID, sessionID uuid.UUID, durationSec int64) (*model.PracticeSession, error) {
	logger := middleware.GetLogger(ctx).With("student_id", studentID, "session_id", sessionID)

	if durationSec < 0 {
		return nil, model.NewAppError("VALIDATION_ERROR", "練習時間に負の値は指定できません。", "duration_sec", model.ErrInvalidInput)
	}

	session, err := loadOwnedSession(ctx, s.db, s.sessionRepo, studentID, sessionID)
	if err != nil {
		return nil, err
	}
	if session.EndedAt != nil {
		return nil, model.NewAppError("SESSION_ALREADY_FINISHED", "このセッションは既に終了しています。", "session_id", model.ErrConflict)
	}

	// クライアント申告の値は上限で丸める
	if limit := s.cfg.Practice.MaxSessionDurationSec; limit > 0 && durationSec > limit {
		logger.Warn("Session duration exceeds maximum, capping", "duration_sec", durationSec, "max", limit)
		durationSec = limit
	}

	endedAt := time.Now().UTC()
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.sessionRepo.Finish(ctx, tx, sessionID, endedAt, durationSec)
	})
	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			return nil, model.NewAppError("SESSION_ALREADY_FINISHED", "このセッションは既に終了しています。", "session_id", err)
		}
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("SESSION_NOT_FOUND", "練習セッションが見つかりません。", "session_id", err)
		}
		logger.Error("Failed to finish practice session", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "練習セッションの終了に失敗しました。", "", err)
	}

	session.EndedAt = &endedAt
	session.DurationSec = durationSec

	s.lessonSvc.RecomputeOrDefer(ctx, session.StudentID, session.LessonID)

	logger.Info("Practice session finished", "duration_sec", durationSec)
	return session, nil
}

// loadOwnedSession はセッションを取得し、呼び出し元の生徒のものか確認します
func loadOwnedSession(ctx context.Context, db *gorm.DB, repo repository.SessionRepository, studentID, sessionID uuid.UUID) (*model.PracticeSession, error) {
	session, err := repo.FindByID(ctx, db, sessionID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("SESSION_NOT_FOUND", "練習セッションが見つかりません。", "session_id", err)
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "練習セッションの取得に失敗しました。", "", err)
	}
	if session.StudentID != studentID {
		middleware.GetLogger(ctx).Warn("Session belongs to another student", "session_id", sessionID, "owner_id", session.StudentID)
		return nil, model.NewAppError("FORBIDDEN", "このセッションにはアクセスできません。", "session_id", model.ErrForbidden)
	}
	return session, nil
}
