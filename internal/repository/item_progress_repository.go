//go:generate mockery --name ItemProgressRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"vocab_mastery/internal/mastery"
	"vocab_mastery/internal/middleware"
	"vocab_mastery/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ItemProgressRepository interface {
	// Upsert は (student, vocabulary) の行を確保して行ロックし、前回値に delta を適用して保存します。
	// 必ずトランザクション内の tx を渡すこと。
	Upsert(ctx context.Context, tx *gorm.DB, studentID, vocabularyID uuid.UUID, delta mastery.Delta, now time.Time) (*model.ItemProgress, error)
	FindOne(ctx context.Context, db *gorm.DB, studentID, vocabularyID uuid.UUID) (*model.ItemProgress, error)
	GetForLesson(ctx context.Context, db *gorm.DB, studentID, lessonID uuid.UUID) (map[uuid.UUID]*model.ItemProgress, error)
	FindDue(ctx context.Context, db *gorm.DB, studentID uuid.UUID, now time.Time, limit int) ([]*model.ItemProgress, error) // Vocabulary を Preload する
}

type gormItemProgressRepository struct{}

func NewGormItemProgressRepository() ItemProgressRepository {
	return &gormItemProgressRepository{}
}

func (r *gormItemProgressRepository) Upsert(ctx context.Context, tx *gorm.DB, studentID, vocabularyID uuid.UUID, delta mastery.Delta, now time.Time) (*model.ItemProgress, error) {
	logger := middleware.GetLogger(ctx)

	// 1. 行がなければ空の行を作る (同時実行時はどちらか一方だけが挿入する)
	placeholder := &model.ItemProgress{
		ProgressID:   uuid.New(),
		StudentID:    studentID,
		VocabularyID: vocabularyID,
		Status:       mastery.DeriveStatus(0, 0),
	}
	result := tx.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "student_id"}, {Name: "vocabulary_id"}},
			DoNothing: true,
		}).
		Create(placeholder)
	if result.Error != nil {
		logger.Error("Error ensuring item progress row", "error", result.Error,
			"student_id", studentID.String(), "vocabulary_id", vocabularyID.String())
		return nil, fmt.Errorf("gormItemProgressRepository.Upsert: %w", mapDBError(result.Error))
	}

	// 2. 行ロックを取得して最新の値を読む (SELECT ... FOR UPDATE)
	var progress model.ItemProgress
	result = tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("student_id = ? AND vocabulary_id = ?", studentID, vocabularyID).
		First(&progress)
	if result.Error != nil {
		logger.Error("Error locking item progress row", "error", result.Error,
			"student_id", studentID.String(), "vocabulary_id", vocabularyID.String())
		return nil, fmt.Errorf("gormItemProgressRepository.Upsert: %w", mapDBError(result.Error))
	}

	// 3. 前回値から再計算して保存
	if err := mastery.Apply(&progress, delta, now); err != nil {
		return nil, fmt.Errorf("gormItemProgressRepository.Upsert: %w: %v", model.ErrInvalidInput, err)
	}
	result = tx.WithContext(ctx).
		Model(&progress).
		Select("seen_count", "correct_count", "wrong_count", "mastery_score", "status", "last_seen_at", "next_review_at", "updated_at").
		Updates(&progress)
	if result.Error != nil {
		logger.Error("Error updating item progress", "error", result.Error, "progress_id", progress.ProgressID.String())
		return nil, fmt.Errorf("gormItemProgressRepository.Upsert: %w", mapDBError(result.Error))
	}
	return &progress, nil
}

func (r *gormItemProgressRepository) FindOne(ctx context.Context, db *gorm.DB, studentID, vocabularyID uuid.UUID) (*model.ItemProgress, error) {
	var progress model.ItemProgress
	result := db.WithContext(ctx).Where("student_id = ? AND vocabulary_id = ?", studentID, vocabularyID).First(&progress)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormItemProgressRepository.FindOne: %w", result.Error)
	}
	return &progress, nil
}

func (r *gormItemProgressRepository) GetForLesson(ctx context.Context, db *gorm.DB, studentID, lessonID uuid.UUID) (map[uuid.UUID]*model.ItemProgress, error) {
	logger := middleware.GetLogger(ctx)
	var progresses []*model.ItemProgress
	result := db.WithContext(ctx).
		Joins("JOIN vocabularies ON vocabularies.vocabulary_id = item_progress.vocabulary_id").
		Where("item_progress.student_id = ? AND vocabularies.lesson_id = ?", studentID, lessonID).
		Find(&progresses)
	if result.Error != nil {
		logger.Error("Error finding item progress for lesson", "error", result.Error,
			"student_id", studentID.String(), "lesson_id", lessonID.String())
		return nil, fmt.Errorf("gormItemProgressRepository.GetForLesson: %w", result.Error)
	}

	byVocabulary := make(map[uuid.UUID]*model.ItemProgress, len(progresses))
	for _, p := range progresses {
		byVocabulary[p.VocabularyID] = p
	}
	return byVocabulary, nil
}

func (r *gormItemProgressRepository) FindDue(ctx context.Context, db *gorm.DB, studentID uuid.UUID, now time.Time, limit int) ([]*model.ItemProgress, error) {
	var progresses []*model.ItemProgress
	result := db.WithContext(ctx).
		Preload("Vocabulary").
		Joins("JOIN vocabularies ON vocabularies.vocabulary_id = item_progress.vocabulary_id").
		Where("item_progress.student_id = ? AND item_progress.next_review_at <= ?", studentID, now).
		Order("item_progress.next_review_at ASC, item_progress.mastery_score ASC").
		Limit(limit).
		Find(&progresses)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error finding due item progress", "error", result.Error, "student_id", studentID.String())
		return nil, fmt.Errorf("gormItemProgressRepository.FindDue: %w", result.Error)
	}
	return progresses, nil
}
