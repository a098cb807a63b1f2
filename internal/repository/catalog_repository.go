//go:generate mockery --name CatalogRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"vocab_mastery/internal/middleware"
	"vocab_mastery/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CatalogRepository はコース → レッスン → 単語のカタログを参照します。
// 書き込みは取り込みコマンド (FindOrCreate*) からのみ行う
type CatalogRepository interface {
	FindLesson(ctx context.Context, db *gorm.DB, lessonID uuid.UUID) (*model.Lesson, error)
	FindVocabulary(ctx context.Context, db *gorm.DB, vocabularyID uuid.UUID) (*model.Vocabulary, error)
	FindVocabularyByLesson(ctx context.Context, db *gorm.DB, lessonID uuid.UUID) ([]*model.Vocabulary, error)
	CountVocabularyByLesson(ctx context.Context, db *gorm.DB, lessonID uuid.UUID) (int64, error)
	CountVocabularyByLessons(ctx context.Context, db *gorm.DB, lessonIDs []uuid.UUID) (map[uuid.UUID]int64, error)
	FindCourses(ctx context.Context, db *gorm.DB, hskLevels []int) ([]*model.Course, error) // Lessons を Preload する

	FindOrCreateCourse(ctx context.Context, tx *gorm.DB, course *model.Course) (bool, error)
	FindOrCreateLesson(ctx context.Context, tx *gorm.DB, lesson *model.Lesson) (bool, error)
	FindOrCreateVocabulary(ctx context.Context, tx *gorm.DB, vocabulary *model.Vocabulary) (bool, error)
}

type gormCatalogRepository struct{}

func NewGormCatalogRepository() CatalogRepository {
	return &gormCatalogRepository{}
}

func (r *gormCatalogRepository) FindLesson(ctx context.Context, db *gorm.DB, lessonID uuid.UUID) (*model.Lesson, error) {
	var lesson model.Lesson
	result := db.WithContext(ctx).Where("lesson_id = ?", lessonID).First(&lesson)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormCatalogRepository.FindLesson: %w", result.Error)
	}
	return &lesson, nil
}

func (r *gormCatalogRepository) FindVocabulary(ctx context.Context, db *gorm.DB, vocabularyID uuid.UUID) (*model.Vocabulary, error) {
	var vocabulary model.Vocabulary
	result := db.WithContext(ctx).Where("vocabulary_id = ?", vocabularyID).First(&vocabulary)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormCatalogRepository.FindVocabulary: %w", result.Error)
	}
	return &vocabulary, nil
}

func (r *gormCatalogRepository) FindVocabularyByLesson(ctx context.Context, db *gorm.DB, lessonID uuid.UUID) ([]*model.Vocabulary, error) {
	var vocabularies []*model.Vocabulary
	result := db.WithContext(ctx).Where("lesson_id = ?", lessonID).Order("sort_order ASC, hanzi ASC").Find(&vocabularies)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error finding vocabulary by lesson", "error", result.Error, "lesson_id", lessonID.String())
		return nil, fmt.Errorf("gormCatalogRepository.FindVocabularyByLesson: %w", result.Error)
	}
	return vocabularies, nil
}

func (r *gormCatalogRepository) CountVocabularyByLesson(ctx context.Context, db *gorm.DB, lessonID uuid.UUID) (int64, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&model.Vocabulary{}).Where("lesson_id = ?", lessonID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("gormCatalogRepository.CountVocabularyByLesson: %w", err)
	}
	return count, nil
}

func (r *gormCatalogRepository) CountVocabularyByLessons(ctx context.Context, db *gorm.DB, lessonIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	counts := make(map[uuid.UUID]int64, len(lessonIDs))
	if len(lessonIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		LessonID uuid.UUID
		Count    int64
	}
	result := db.WithContext(ctx).
		Model(&model.Vocabulary{}).
		Select("lesson_id, COUNT(*) AS count").
		Where("lesson_id IN ?", lessonIDs).
		Group("lesson_id").
		Scan(&rows)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error counting vocabulary by lessons", "error", result.Error)
		return nil, fmt.Errorf("gormCatalogRepository.CountVocabularyByLessons: %w", result.Error)
	}
	for _, row := range rows {
		counts[row.LessonID] = row.Count
	}
	return counts, nil
}

func (r *gormCatalogRepository) FindCourses(ctx context.Context, db *gorm.DB, hskLevels []int) ([]*model.Course, error) {
	var courses []*model.Course
	query := db.WithContext(ctx).
		Preload("Lessons", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC, title ASC")
		}).
		Order("hsk_level ASC, sort_order ASC, title ASC")
	if len(hskLevels) > 0 {
		query = query.Where("hsk_level IN ?", hskLevels)
	}
	if err := query.Find(&courses).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error finding courses", "error", err, "hsk_levels", hskLevels)
		return nil, fmt.Errorf("gormCatalogRepository.FindCourses: %w", err)
	}
	return courses, nil
}

// FindOrCreateCourse はタイトルで検索し、なければ作成します。作成した場合 true
func (r *gormCatalogRepository) FindOrCreateCourse(ctx context.Context, tx *gorm.DB, course *model.Course) (bool, error) {
	var existing model.Course
	err := tx.WithContext(ctx).Where("title = ?", course.Title).First(&existing).Error
	if err == nil {
		*course = existing
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("gormCatalogRepository.FindOrCreateCourse: %w", err)
	}
	course.CourseID = uuid.New()
	if err := tx.WithContext(ctx).Create(course).Error; err != nil {
		return false, fmt.Errorf("gormCatalogRepository.FindOrCreateCourse: %w", mapDBError(err))
	}
	return true, nil
}

func (r *gormCatalogRepository) FindOrCreateLesson(ctx context.Context, tx *gorm.DB, lesson *model.Lesson) (bool, error) {
	var existing model.Lesson
	err := tx.WithContext(ctx).Where("course_id = ? AND title = ?", lesson.CourseID, lesson.Title).First(&existing).Error
	if err == nil {
		*lesson = existing
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("gormCatalogRepository.FindOrCreateLesson: %w", err)
	}
	lesson.LessonID = uuid.New()
	if err := tx.WithContext(ctx).Create(lesson).Error; err != nil {
		return false, fmt.Errorf("gormCatalogRepository.FindOrCreateLesson: %w", mapDBError(err))
	}
	return true, nil
}

// FindOrCreateVocabulary はレッスン内の漢字で検索し、なければ sort_order を採番して作成します
func (r *gormCatalogRepository) FindOrCreateVocabulary(ctx context.Context, tx *gorm.DB, vocabulary *model.Vocabulary) (bool, error) {
	var existing model.Vocabulary
	err := tx.WithContext(ctx).Where("lesson_id = ? AND hanzi = ?", vocabulary.LessonID, vocabulary.Hanzi).First(&existing).Error
	if err == nil {
		*vocabulary = existing
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("gormCatalogRepository.FindOrCreateVocabulary: %w", err)
	}
	// 新しい単語はレッスン内の末尾に並べる
	var next int
	if err := tx.WithContext(ctx).Model(&model.Vocabulary{}).
		Select("COALESCE(MAX(sort_order) + 1, 0)").
		Where("lesson_id = ?", vocabulary.LessonID).
		Scan(&next).Error; err != nil {
		return false, fmt.Errorf("gormCatalogRepository.FindOrCreateVocabulary: %w", err)
	}
	vocabulary.VocabularyID = uuid.New()
	vocabulary.SortOrder = next
	if err := tx.WithContext(ctx).Create(vocabulary).Error; err != nil {
		return false, fmt.Errorf("gormCatalogRepository.FindOrCreateVocabulary: %w", mapDBError(err))
	}
	return true, nil
}
