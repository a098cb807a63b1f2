//go:generate mockery --name LessonProgressRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"vocab_mastery/internal/middleware"
	"vocab_mastery/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LessonProgressRepository interface {
	Upsert(ctx context.Context, tx *gorm.DB, progress *model.LessonProgress) error
	FindOne(ctx context.Context, db *gorm.DB, studentID, lessonID uuid.UUID) (*model.LessonProgress, error)
	FindByStudent(ctx context.Context, db *gorm.DB, studentID uuid.UUID) ([]*model.LessonProgress, error)
}

type gormLessonProgressRepository struct{}

func NewGormLessonProgressRepository() LessonProgressRepository {
	return &gormLessonProgressRepository{}
}

// Upsert は (student, lesson) をキーに集計値を丸ごと上書きし、保存された行を progress に書き戻します
func (r *gormLessonProgressRepository) Upsert(ctx context.Context, tx *gorm.DB, progress *model.LessonProgress) error {
	if progress.LessonProgressID == uuid.Nil {
		progress.LessonProgressID = uuid.New()
	}
	result := tx.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "student_id"}, {Name: "lesson_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"learned_count", "mastered_count", "mastery_percent", "total_time_sec", "updated_at",
			}),
		}).
		Create(progress)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error upserting lesson progress",
			"error", result.Error,
			"student_id", progress.StudentID.String(),
			"lesson_id", progress.LessonID.String(),
		)
		return fmt.Errorf("gormLessonProgressRepository.Upsert: %w", mapDBError(result.Error))
	}

	// 競合時は既存行の ID と CreatedAt を呼び出し元に反映する
	var stored model.LessonProgress
	if err := tx.WithContext(ctx).
		Where("student_id = ? AND lesson_id = ?", progress.StudentID, progress.LessonID).
		First(&stored).Error; err != nil {
		return fmt.Errorf("gormLessonProgressRepository.Upsert: reload: %w", err)
	}
	*progress = stored
	return nil
}

func (r *gormLessonProgressRepository) FindOne(ctx context.Context, db *gorm.DB, studentID, lessonID uuid.UUID) (*model.LessonProgress, error) {
	var progress model.LessonProgress
	result := db.WithContext(ctx).Where("student_id = ? AND lesson_id = ?", studentID, lessonID).First(&progress)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormLessonProgressRepository.FindOne: %w", result.Error)
	}
	return &progress, nil
}

func (r *gormLessonProgressRepository) FindByStudent(ctx context.Context, db *gorm.DB, studentID uuid.UUID) ([]*model.LessonProgress, error) {
	var progresses []*model.LessonProgress
	result := db.WithContext(ctx).Where("student_id = ?", studentID).Find(&progresses)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error finding lesson progress by student", "error", result.Error, "student_id", studentID.String())
		return nil, fmt.Errorf("gormLessonProgressRepository.FindByStudent: %w", result.Error)
	}
	return progresses, nil
}
