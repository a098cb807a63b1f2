//go:generate mockery --name CourseService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"

	"vocab_mastery/internal/middleware"
	"vocab_mastery/internal/model"
	"vocab_mastery/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	minHSKLevel = 1
	maxHSKLevel = 9
)

// CourseService は読み取り専用のビューを組み立てます。書き込みは一切行わない
type CourseService interface {
	GetCoursesForPractice(ctx context.Context, hskLevels []int) ([]*model.CourseWithLessons, error)
	GetStudentAllLessonProgress(ctx context.Context, studentID uuid.UUID) (map[uuid.UUID]*model.LessonProgress, error)
	GetStudentItemProgressForLesson(ctx context.Context, studentID, lessonID uuid.UUID) (map[uuid.UUID]*model.ItemProgressResponse, error)
	GetPracticeOverview(ctx context.Context, studentID uuid.UUID, hskLevels []int) (*model.PracticeOverviewResponse, error)
}

type courseService struct {
	db          *gorm.DB
	catalogRepo repository.CatalogRepository
	itemRepo    repository.ItemProgressRepository
	lessonRepo  repository.LessonProgressRepository
}

func NewCourseService(db *gorm.DB, catalogRepo repository.CatalogRepository, itemRepo repository.ItemProgressRepository, lessonRepo repository.LessonProgressRepository) CourseService {
	return &courseService{
		db:          db,
		catalogRepo: catalogRepo,
		itemRepo:    itemRepo,
		lessonRepo:  lessonRepo,
	}
}

// GetCoursesForPractice は HSK レベルで絞り込んだコース一覧を返します。
// hskLevels が空の場合は全コース
func (s *courseService) GetCoursesForPractice(ctx context.Context, hskLevels []int) ([]*model.CourseWithLessons, error) {
	logger := middleware.GetLogger(ctx).With("hsk_levels", hskLevels)

	for _, level := range hskLevels {
		if level < minHSKLevel || level > maxHSKLevel {
			return nil, model.NewAppError("VALIDATION_ERROR", "HSKレベルは1から9の範囲で指定してください。", "hsk_level", model.ErrInvalidInput)
		}
	}

	courses, err := s.catalogRepo.FindCourses(ctx, s.db, hskLevels)
	if err != nil {
		logger.Error("Failed to find courses", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "コース一覧の取得に失敗しました。", "", err)
	}

	var lessonIDs []uuid.UUID
	for _, c := range courses {
		for _, l := range c.Lessons {
			lessonIDs = append(lessonIDs, l.LessonID)
		}
	}
	counts, err := s.catalogRepo.CountVocabularyByLessons(ctx, s.db, lessonIDs)
	if err != nil {
		logger.Error("Failed to count vocabulary", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "単語数の取得に失敗しました。", "", err)
	}

	responses := make([]*model.CourseWithLessons, 0, len(courses))
	for _, c := range courses {
		lessons := make([]*model.LessonSummary, 0, len(c.Lessons))
		for _, l := range c.Lessons {
			lessons = append(lessons, &model.LessonSummary{
				LessonID:        l.LessonID,
				Title:           l.Title,
				SortOrder:       l.SortOrder,
				VocabularyCount: counts[l.LessonID],
			})
		}
		responses = append(responses, &model.CourseWithLessons{
			CourseID:    c.CourseID,
			Title:       c.Title,
			HSKLevel:    c.HSKLevel,
			Description: c.Description,
			SortOrder:   c.SortOrder,
			Lessons:     lessons,
		})
	}

	logger.Info("Successfully retrieved courses", "count", len(responses))
	return responses, nil
}

// GetStudentAllLessonProgress はレッスンIDをキーにした進捗を返します。進捗がなければ空の map
func (s *courseService) GetStudentAllLessonProgress(ctx context.Context, studentID uuid.UUID) (map[uuid.UUID]*model.LessonProgress, error) {
	logger := middleware.GetLogger(ctx).With("student_id", studentID)

	rows, err := s.lessonRepo.FindByStudent(ctx, s.db, studentID)
	if err != nil {
		logger.Error("Failed to find lesson progress", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "レッスン進捗の取得に失敗しました。", "", err)
	}

	progress := make(map[uuid.UUID]*model.LessonProgress, len(rows))
	for _, p := range rows {
		progress[p.LessonID] = p
	}
	return progress, nil
}

// GetStudentItemProgressForLesson はレッスンの全単語について進捗を返します。
// まだ触れていない単語は NEW として埋める
func (s *courseService) GetStudentItemProgressForLesson(ctx context.Context, studentID, lessonID uuid.UUID) (map[uuid.UUID]*model.ItemProgressResponse, error) {
	logger := middleware.GetLogger(ctx).With("student_id", studentID, "lesson_id", lessonID)

	if _, err := s.catalogRepo.FindLesson(ctx, s.db, lessonID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("LESSON_NOT_FOUND", "レッスンが見つかりません。", "lesson_id", err)
		}
		logger.Error("Failed to find lesson", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "レッスンの取得に失敗しました。", "", err)
	}

	vocabularies, err := s.catalogRepo.FindVocabularyByLesson(ctx, s.db, lessonID)
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "単語一覧の取得に失敗しました。", "", err)
	}
	items, err := s.itemRepo.GetForLesson(ctx, s.db, studentID, lessonID)
	if err != nil {
		logger.Error("Failed to get item progress for lesson", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "単語ごとの進捗の取得に失敗しました。", "", err)
	}

	responses := make(map[uuid.UUID]*model.ItemProgressResponse, len(vocabularies))
	for _, v := range vocabularies {
		resp := &model.ItemProgressResponse{
			VocabularyID: v.VocabularyID,
			Hanzi:        v.Hanzi,
			Pinyin:       v.Pinyin,
			Meaning:      v.Meaning,
			Status:       model.StatusNew,
		}
		if p, ok := items[v.VocabularyID]; ok {
			resp.SeenCount = p.SeenCount
			resp.CorrectCount = p.CorrectCount
			resp.WrongCount = p.WrongCount
			resp.MasteryScore = p.MasteryScore
			resp.Status = p.Status
			resp.LastSeenAt = p.LastSeenAt
			resp.NextReviewAt = p.NextReviewAt
		}
		responses[v.VocabularyID] = resp
	}

	logger.Debug("Item progress for lesson retrieved", "vocabulary", len(vocabularies), "touched", len(items))
	return responses, nil
}

func (s *courseService) GetPracticeOverview(ctx context.Context, studentID uuid.UUID, hskLevels []int) (*model.PracticeOverviewResponse, error) {
	courses, err := s.GetCoursesForPractice(ctx, hskLevels)
	if err != nil {
		return nil, err
	}
	progress, err := s.GetStudentAllLessonProgress(ctx, studentID)
	if err != nil {
		return nil, err
	}
	return &model.PracticeOverviewResponse{Courses: courses, LessonProgress: progress}, nil
}
