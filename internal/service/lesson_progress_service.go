package service

import (
	"context"
	"math"
	"sync"

	"vocab_mastery/internal/mastery"
	"vocab_mastery/internal/middleware"
	"vocab_mastery/internal/model"
	"vocab_mastery/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LessonProgressService は LessonProgress の唯一の書き込み元です。
// 毎回全件を読み直して上書きする (差分更新はしない)。
type LessonProgressService interface {
	// Recompute はレッスンの集計をやり直します。単語が0件のレッスンは何も書かずに nil を返す
	Recompute(ctx context.Context, studentID, lessonID uuid.UUID) (*model.LessonProgress, error)
	// RecomputeOrDefer は失敗してもエラーを返さず、再試行キューに積みます
	RecomputeOrDefer(ctx context.Context, studentID, lessonID uuid.UUID)
	// RetryDeferred はキューに積まれた再集計を実行し、成功件数を返します
	RetryDeferred(ctx context.Context) int
	PendingCount() int
}

type lessonKey struct {
	studentID uuid.UUID
	lessonID  uuid.UUID
}

type lessonProgressService struct {
	db          *gorm.DB
	catalogRepo repository.CatalogRepository
	itemRepo    repository.ItemProgressRepository
	lessonRepo  repository.LessonProgressRepository
	sessionRepo repository.SessionRepository

	mu      sync.Mutex
	pending map[lessonKey]struct{}
}

func NewLessonProgressService(
	db *gorm.DB,
	catalogRepo repository.CatalogRepository,
	itemRepo repository.ItemProgressRepository,
	lessonRepo repository.LessonProgressRepository,
	sessionRepo repository.SessionRepository,
) LessonProgressService {
	return &lessonProgressService{
		db:          db,
		catalogRepo: catalogRepo,
		itemRepo:    itemRepo,
		lessonRepo:  lessonRepo,
		sessionRepo: sessionRepo,
		pending:     make(map[lessonKey]struct{}),
	}
}

func (s *lessonProgressService) Recompute(ctx context.Context, studentID, lessonID uuid.UUID) (*model.LessonProgress, error) {
	logger := middleware.GetLogger(ctx).With("student_id", studentID, "lesson_id", lessonID)

	total, err := s.catalogRepo.CountVocabularyByLesson(ctx, s.db, lessonID)
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "レッスンの単語数の取得に失敗しました。", "", err)
	}
	if total == 0 {
		logger.Debug("Lesson has no vocabulary, skipping recompute")
		s.clearPending(studentID, lessonID)
		return nil, nil
	}

	items, err := s.itemRepo.GetForLesson(ctx, s.db, studentID, lessonID)
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "単語ごとの進捗の取得に失敗しました。", "", err)
	}

	totalTime, err := s.sessionRepo.SumDuration(ctx, s.db, studentID, lessonID)
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "練習時間の集計に失敗しました。", "", err)
	}

	progress := aggregateLesson(studentID, lessonID, total, items, totalTime)
	if err := s.lessonRepo.Upsert(ctx, s.db, progress); err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "レッスン進捗の保存に失敗しました。", "", err)
	}

	s.clearPending(studentID, lessonID)

	logger.Debug("Lesson progress recomputed",
		"learned", progress.LearnedCount,
		"mastered", progress.MasteredCount,
		"percent", progress.MasteryPercent,
	)
	return progress, nil
}

func (s *lessonProgressService) RecomputeOrDefer(ctx context.Context, studentID, lessonID uuid.UUID) {
	if _, err := s.Recompute(ctx, studentID, lessonID); err != nil {
		middleware.GetLogger(ctx).Warn("Lesson progress recompute failed, deferred for retry",
			"student_id", studentID, "lesson_id", lessonID, "error", err)
		s.mu.Lock()
		s.pending[lessonKey{studentID: studentID, lessonID: lessonID}] = struct{}{}
		s.mu.Unlock()
	}
}

func (s *lessonProgressService) RetryDeferred(ctx context.Context) int {
	s.mu.Lock()
	keys := make([]lessonKey, 0, len(s.pending))
	for k := range s.pending {
		keys = append(keys, k)
	}
	s.mu.Unlock()

	succeeded := 0
	for _, k := range keys {
		if ctx.Err() != nil {
			break
		}
		// 失敗した場合は RecomputeOrDefer がキューに残す
		if _, err := s.Recompute(ctx, k.studentID, k.lessonID); err != nil {
			middleware.GetLogger(ctx).Warn("Deferred lesson recompute failed again",
				"student_id", k.studentID, "lesson_id", k.lessonID, "error", err)
			continue
		}
		succeeded++
	}
	return succeeded
}

func (s *lessonProgressService) clearPending(studentID, lessonID uuid.UUID) {
	s.mu.Lock()
	delete(s.pending, lessonKey{studentID: studentID, lessonID: lessonID})
	s.mu.Unlock()
}

func (s *lessonProgressService) PendingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// aggregateLesson は単語ごとの進捗からレッスンの集計値を作ります
func aggregateLesson(studentID, lessonID uuid.UUID, totalVocabulary int64, items map[uuid.UUID]*model.ItemProgress, totalTimeSec int64) *model.LessonProgress {
	learned, mastered := 0, 0
	for _, item := range items {
		if item.SeenCount >= 1 {
			learned++
		}
		if mastery.IsMastered(item.MasteryScore) {
			mastered++
		}
	}

	percent := 0.0
	if totalVocabulary > 0 {
		percent = math.Round(float64(mastered)*100/float64(totalVocabulary)*100) / 100
		percent = math.Min(100, math.Max(0, percent))
	}

	return &model.LessonProgress{
		StudentID:      studentID,
		LessonID:       lessonID,
		LearnedCount:   learned,
		MasteredCount:  mastered,
		MasteryPercent: percent,
		TotalTimeSec:   totalTimeSec,
	}
}
