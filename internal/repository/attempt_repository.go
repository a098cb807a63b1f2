//go:generate mockery --name AttemptRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"

	"vocab_mastery/internal/middleware"
	"vocab_mastery/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AttemptRepository は回答ログの追記と参照のみを提供します (更新・削除はしない)
type AttemptRepository interface {
	Create(ctx context.Context, db *gorm.DB, attempt *model.PracticeAttempt) error
	FindBySession(ctx context.Context, db *gorm.DB, sessionID uuid.UUID) ([]*model.PracticeAttempt, error)
}

type gormAttemptRepository struct{}

func NewGormAttemptRepository() AttemptRepository {
	return &gormAttemptRepository{}
}

func (r *gormAttemptRepository) Create(ctx context.Context, db *gorm.DB, attempt *model.PracticeAttempt) error {
	result := db.WithContext(ctx).Create(attempt)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error creating practice attempt in DB",
			"error", result.Error,
			"session_id", attempt.SessionID.String(),
			"vocabulary_id", attempt.VocabularyID.String(),
		)
		return fmt.Errorf("gormAttemptRepository.Create: %w", mapDBError(result.Error))
	}
	return nil
}

func (r *gormAttemptRepository) FindBySession(ctx context.Context, db *gorm.DB, sessionID uuid.UUID) ([]*model.PracticeAttempt, error) {
	var attempts []*model.PracticeAttempt
	result := db.WithContext(ctx).Where("session_id = ?", sessionID).Order("created_at ASC").Find(&attempts)
	if result.Error != nil {
		return nil, fmt.Errorf("gormAttemptRepository.FindBySession: %w", result.Error)
	}
	return attempts, nil
}
