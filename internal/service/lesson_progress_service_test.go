package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"vocab_mastery/internal/mastery"
	"vocab_mastery/internal/model"
	"vocab_mastery/internal/repository"
	"vocab_mastery/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func Test_aggregateLesson(t *testing.T) {
	studentID, lessonID := uuid.New(), uuid.New()
	item := func(seen int, score float64) *model.ItemProgress {
		return &model.ItemProgress{VocabularyID: uuid.New(), SeenCount: seen, MasteryScore: score}
	}

	tests := []struct {
		name         string
		total        int64
		items        []*model.ItemProgress
		wantLearned  int
		wantMastered int
		wantPercent  float64
	}{
		{"正常系: 進捗なし", 4, nil, 0, 0, 0},
		{"正常系: 閾値ちょうどは習得", 4, []*model.ItemProgress{item(3, 0.8), item(1, 0.79)}, 2, 1, 25},
		{"正常系: 10語中4語習得で40", 10, []*model.ItemProgress{item(2, 0.8), item(3, 0.85), item(4, 0.9), item(5, 1), item(1, 0.15), item(1, 0)}, 6, 4, 40},
		{"正常系: 割合は小数2桁で丸める", 3, []*model.ItemProgress{item(5, 0.9)}, 1, 1, 33.33},
		{"正常系: 全件習得で100", 2, []*model.ItemProgress{item(6, 0.9), item(7, 1)}, 2, 2, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := make(map[uuid.UUID]*model.ItemProgress, len(tt.items))
			for _, it := range tt.items {
				items[it.VocabularyID] = it
			}
			got := aggregateLesson(studentID, lessonID, tt.total, items, 42)
			assert.Equal(t, tt.wantLearned, got.LearnedCount)
			assert.Equal(t, tt.wantMastered, got.MasteredCount)
			assert.InDelta(t, tt.wantPercent, got.MasteryPercent, 1e-9)
			assert.Equal(t, int64(42), got.TotalTimeSec)
		})
	}
}

func Test_lessonProgressService_Recompute(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	svc := newTestServices(db, testConfig())
	itemRepo := repository.NewGormItemProgressRepository()

	studentID := uuid.New()
	lesson, vocab := seedLesson(t, db, 4)
	now := time.Now().UTC()

	// 単語0: 習得, 単語1: 学習中, 単語2-3: 未着手
	require.NoError(t, db.Transaction(func(tx *gorm.DB) error {
		for i := 0; i < 6; i++ {
			if _, err := itemRepo.Upsert(ctx, tx, studentID, vocab[0].VocabularyID, mastery.Answer(true), now); err != nil {
				return err
			}
		}
		_, err := itemRepo.Upsert(ctx, tx, studentID, vocab[1].VocabularyID, mastery.Lookup(), now)
		return err
	}))

	t.Run("正常系: 全件を読み直して集計する", func(t *testing.T) {
		got, err := svc.lesson.Recompute(ctx, studentID, lesson.LessonID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, 2, got.LearnedCount)
		assert.Equal(t, 1, got.MasteredCount)
		assert.InDelta(t, 25.0, got.MasteryPercent, 1e-9)
	})

	t.Run("正常系: 再計算しても行は1件のまま", func(t *testing.T) {
		_, err := svc.lesson.Recompute(ctx, studentID, lesson.LessonID)
		require.NoError(t, err)
		var count int64
		require.NoError(t, db.Model(&model.LessonProgress{}).Where("student_id = ?", studentID).Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})

	t.Run("正常系: 他の生徒の進捗は混ざらない", func(t *testing.T) {
		got, err := svc.lesson.Recompute(ctx, uuid.New(), lesson.LessonID)
		require.NoError(t, err)
		assert.Zero(t, got.LearnedCount)
		assert.Zero(t, got.MasteredCount)
	})

	t.Run("正常系: 単語0件のレッスンは何も書かない", func(t *testing.T) {
		empty, _ := seedLesson(t, db, 0)
		got, err := svc.lesson.Recompute(ctx, studentID, empty.LessonID)
		require.NoError(t, err)
		assert.Nil(t, got)

		var count int64
		require.NoError(t, db.Model(&model.LessonProgress{}).Where("lesson_id = ?", empty.LessonID).Count(&count).Error)
		assert.Zero(t, count)
	})
}

func Test_lessonProgressService_RecomputeOrDefer(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)

	catalogRepo := mocks.NewCatalogRepository(t)
	itemRepo := mocks.NewItemProgressRepository(t)
	lessonRepo := mocks.NewLessonProgressRepository(t)
	sessionRepo := mocks.NewSessionRepository(t)
	svc := NewLessonProgressService(db, catalogRepo, itemRepo, lessonRepo, sessionRepo)

	studentID, lessonID := uuid.New(), uuid.New()
	vocabularyID := uuid.New()

	// 1回目は失敗してキューに積まれる
	catalogRepo.On("CountVocabularyByLesson", mock.Anything, db, lessonID).
		Return(int64(0), errors.New("db error counting vocabulary")).Once()

	svc.RecomputeOrDefer(ctx, studentID, lessonID)
	assert.Equal(t, 1, svc.PendingCount())

	// 同じキーは1件にまとまる
	catalogRepo.On("CountVocabularyByLesson", mock.Anything, db, lessonID).
		Return(int64(0), errors.New("db error counting vocabulary")).Once()
	svc.RecomputeOrDefer(ctx, studentID, lessonID)
	assert.Equal(t, 1, svc.PendingCount())

	// 再試行で成功するとキューから消える
	catalogRepo.On("CountVocabularyByLesson", mock.Anything, db, lessonID).Return(int64(1), nil).Once()
	itemRepo.On("GetForLesson", mock.Anything, db, studentID, lessonID).
		Return(map[uuid.UUID]*model.ItemProgress{vocabularyID: {VocabularyID: vocabularyID, SeenCount: 1, MasteryScore: 0.9}}, nil).Once()
	sessionRepo.On("SumDuration", mock.Anything, db, studentID, lessonID).Return(int64(300), nil).Once()
	lessonRepo.On("Upsert", mock.Anything, db, mock.MatchedBy(func(p *model.LessonProgress) bool {
		return p.StudentID == studentID && p.LessonID == lessonID &&
			p.MasteredCount == 1 && p.MasteryPercent == 100 && p.TotalTimeSec == 300
	})).Return(nil).Once()

	assert.Equal(t, 1, svc.RetryDeferred(ctx))
	assert.Zero(t, svc.PendingCount())
}

func Test_lessonProgressService_RetryDeferred_StillFailing(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)

	catalogRepo := mocks.NewCatalogRepository(t)
	svc := NewLessonProgressService(db, catalogRepo, mocks.NewItemProgressRepository(t), mocks.NewLessonProgressRepository(t), mocks.NewSessionRepository(t))

	lessonID := uuid.New()
	catalogRepo.On("CountVocabularyByLesson", mock.Anything, db, lessonID).
		Return(int64(0), errors.New("db down")).Twice()

	svc.RecomputeOrDefer(ctx, uuid.New(), lessonID)
	assert.Equal(t, 0, svc.RetryDeferred(ctx))
	assert.Equal(t, 1, svc.PendingCount(), "失敗した再集計はキューに残る")
}
