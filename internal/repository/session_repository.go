//go:generate mockery --name SessionRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"vocab_mastery/internal/middleware"
	"vocab_mastery/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SessionRepository interface {
	Create(ctx context.Context, tx *gorm.DB, session *model.PracticeSession) error
	FindByID(ctx context.Context, db *gorm.DB, sessionID uuid.UUID) (*model.PracticeSession, error)
	// Finish は未終了のセッションだけを終了させます。終了済みなら ErrConflict
	Finish(ctx context.Context, tx *gorm.DB, sessionID uuid.UUID, endedAt time.Time, durationSec int64) error
	SumDuration(ctx context.Context, db *gorm.DB, studentID, lessonID uuid.UUID) (int64, error)
}

type gormSessionRepository struct{}

func NewGormSessionRepository() SessionRepository {
	return &gormSessionRepository{}
}

func (r *gormSessionRepository) Create(ctx context.Context, tx *gorm.DB, session *model.PracticeSession) error {
	result := tx.WithContext(ctx).Create(session)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error creating practice session in DB",
			"error", result.Error,
			"student_id", session.StudentID.String(),
			"lesson_id", session.LessonID.String(),
		)
		return fmt.Errorf("gormSessionRepository.Create: %w", mapDBError(result.Error))
	}
	return nil
}

func (r *gormSessionRepository) FindByID(ctx context.Context, db *gorm.DB, sessionID uuid.UUID) (*model.PracticeSession, error) {
	var session model.PracticeSession
	result := db.WithContext(ctx).Where("session_id = ?", sessionID).First(&session)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		middleware.GetLogger(ctx).Error("Error finding practice session by ID", "error", result.Error, "session_id", sessionID.String())
		return nil, fmt.Errorf("gormSessionRepository.FindByID: %w", result.Error)
	}
	return &session, nil
}

func (r *gormSessionRepository) Finish(ctx context.Context, tx *gorm.DB, sessionID uuid.UUID, endedAt time.Time, durationSec int64) error {
	// ended_at IS NULL の条件で1度だけ更新できる
	result := tx.WithContext(ctx).
		Model(&model.PracticeSession{}).
		Where("session_id = ? AND ended_at IS NULL", sessionID).
		Updates(map[string]interface{}{
			"ended_at":     endedAt,
			"duration_sec": durationSec,
		})
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error finishing practice session", "error", result.Error, "session_id", sessionID.String())
		return fmt.Errorf("gormSessionRepository.Finish: %w", mapDBError(result.Error))
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := tx.WithContext(ctx).Model(&model.PracticeSession{}).Where("session_id = ?", sessionID).Count(&count).Error; err != nil {
			return fmt.Errorf("gormSessionRepository.Finish: %w", err)
		}
		if count == 0 {
			return model.ErrNotFound
		}
		return model.ErrConflict
	}
	return nil
}

func (r *gormSessionRepository) SumDuration(ctx context.Context, db *gorm.DB, studentID, lessonID uuid.UUID) (int64, error) {
	var total int64
	result := db.WithContext(ctx).
		Model(&model.PracticeSession{}).
		Select("COALESCE(SUM(duration_sec), 0)").
		Where("student_id = ? AND lesson_id = ?", studentID, lessonID).
		Scan(&total)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error summing session durations", "error", result.Error,
			"student_id", studentID.String(), "lesson_id", lessonID.String())
		return 0, fmt.Errorf("gormSessionRepository.SumDuration: %w", result.Error)
	}
	return total, nil
}
