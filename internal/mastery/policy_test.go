package mastery

import (
	"math/rand"
	"testing"
	"time"

	"vocab_mastery/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreAnswer(t *testing.T) {
	tests := []struct {
		name      string
		current   float64
		isCorrect bool
		want      float64
	}{
		{name: "正解: 0 -> 0.15", current: 0, isCorrect: true, want: 0.15},
		{name: "正解: 0.65 -> 0.8 (誤差で境界を割らない)", current: 0.65, isCorrect: true, want: 0.8},
		{name: "正解: 上限でクランプ", current: 0.95, isCorrect: true, want: 1},
		{name: "不正解: 0.5 -> 0.4", current: 0.5, isCorrect: false, want: 0.4},
		{name: "不正解: 下限でクランプ", current: 0.05, isCorrect: false, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ScoreAnswer(tt.current, tt.isCorrect))
		})
	}
}

func TestScoreFlashcard(t *testing.T) {
	tests := []struct {
		name    string
		current float64
		grade   model.FlashcardGrade
		want    float64
	}{
		{name: "HARD: 0.3 -> 0.2", current: 0.3, grade: model.GradeHard, want: 0.2},
		{name: "HARD: 下限でクランプ", current: 0.05, grade: model.GradeHard, want: 0},
		{name: "GOOD: 0.7 -> 0.8", current: 0.7, grade: model.GradeGood, want: 0.8},
		{name: "EASY: 0.75 -> 0.9", current: 0.75, grade: model.GradeEasy, want: 0.9},
		{name: "EASY: 上限でクランプ", current: 0.9, grade: model.GradeEasy, want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ScoreFlashcard(tt.current, tt.grade))
		})
	}
}

func TestSchedule(t *testing.T) {
	now := time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC)

	assert.Equal(t, now.Add(3*24*time.Hour), ScheduleByScore(0.8, now))
	assert.Equal(t, now.Add(24*time.Hour), ScheduleByScore(0.5, now))
	assert.Equal(t, now.Add(24*time.Hour), ScheduleByScore(0.79, now))
	assert.Equal(t, now.Add(10*time.Minute), ScheduleByScore(0.49, now))

	// フラッシュカードはスコアではなく評価で決まる
	assert.Equal(t, now.Add(10*time.Minute), ScheduleByGrade(model.GradeHard, now))
	assert.Equal(t, now.Add(24*time.Hour), ScheduleByGrade(model.GradeGood, now))
	assert.Equal(t, now.Add(3*24*time.Hour), ScheduleByGrade(model.GradeEasy, now))
}

func TestDeriveStatus(t *testing.T) {
	assert.Equal(t, model.StatusNew, DeriveStatus(0, 0))
	assert.Equal(t, model.StatusLearning, DeriveStatus(0, 1))
	assert.Equal(t, model.StatusLearning, DeriveStatus(0.79, 5))
	assert.Equal(t, model.StatusMastered, DeriveStatus(0.8, 5))
	assert.Equal(t, model.StatusMastered, DeriveStatus(1, 9))
}

func TestApply_FirstCorrectAnswer(t *testing.T) {
	now := time.Now()
	p := &model.ItemProgress{}

	require.NoError(t, Apply(p, Answer(true), now))

	assert.Equal(t, 1, p.SeenCount)
	assert.Equal(t, 1, p.CorrectCount)
	assert.Equal(t, 0, p.WrongCount)
	assert.Equal(t, 0.15, p.MasteryScore)
	assert.Equal(t, model.StatusLearning, p.Status)
	require.NotNil(t, p.NextReviewAt)
	assert.WithinDuration(t, now.Add(10*time.Minute), *p.NextReviewAt, time.Second)
	require.NotNil(t, p.LastSeenAt)
	assert.Equal(t, now, *p.LastSeenAt)
}

func TestApply_EasyFlashcardReachesMastered(t *testing.T) {
	now := time.Now()
	p := &model.ItemProgress{SeenCount: 6, CorrectCount: 5, WrongCount: 1, MasteryScore: 0.75, Status: model.StatusLearning}

	require.NoError(t, Apply(p, Flashcard(model.GradeEasy), now))

	assert.Equal(t, 0.9, p.MasteryScore)
	assert.Equal(t, model.StatusMastered, p.Status)
	assert.Equal(t, 7, p.SeenCount)
	assert.Equal(t, 6, p.CorrectCount)
	assert.WithinDuration(t, now.Add(72*time.Hour), *p.NextReviewAt, time.Second)
}

func TestApply_WrongAnswerAtFloorStaysLearning(t *testing.T) {
	now := time.Now()
	p := &model.ItemProgress{SeenCount: 1, CorrectCount: 0, WrongCount: 1, MasteryScore: 0.05, Status: model.StatusLearning}

	require.NoError(t, Apply(p, Answer(false), now))

	assert.Equal(t, 0.0, p.MasteryScore)
	assert.Equal(t, model.StatusLearning, p.Status)
	assert.Equal(t, 2, p.WrongCount)
}

func TestApply_HardFlashcardCountsAsWrong(t *testing.T) {
	p := &model.ItemProgress{}
	require.NoError(t, Apply(p, Flashcard(model.GradeHard), time.Now()))
	assert.Equal(t, 1, p.WrongCount)
	assert.Equal(t, 0, p.CorrectCount)
}

func TestApply_Lookup(t *testing.T) {
	now := time.Now()

	t.Run("初回: LEARNING になり復習日時が設定される", func(t *testing.T) {
		p := &model.ItemProgress{}
		require.NoError(t, Apply(p, Lookup(), now))
		assert.Equal(t, 1, p.SeenCount)
		assert.Equal(t, 0, p.CorrectCount+p.WrongCount)
		assert.Equal(t, 0.0, p.MasteryScore)
		assert.Equal(t, model.StatusLearning, p.Status)
		require.NotNil(t, p.NextReviewAt)
		assert.WithinDuration(t, now.Add(10*time.Minute), *p.NextReviewAt, time.Second)
	})

	t.Run("既存: スコアと復習日時は変わらない", func(t *testing.T) {
		review := now.Add(48 * time.Hour)
		p := &model.ItemProgress{SeenCount: 4, CorrectCount: 4, MasteryScore: 0.6, Status: model.StatusLearning, NextReviewAt: &review}
		require.NoError(t, Apply(p, Lookup(), now))
		assert.Equal(t, 5, p.SeenCount)
		assert.Equal(t, 0.6, p.MasteryScore)
		assert.Equal(t, review, *p.NextReviewAt)
	})
}

func TestApply_InvalidDelta(t *testing.T) {
	p := &model.ItemProgress{SeenCount: 2}

	err := Apply(p, Flashcard("MEDIUM"), time.Now())
	assert.ErrorIs(t, err, ErrUnknownInteraction)
	assert.Equal(t, 2, p.SeenCount, "不正な入力では状態を変更しない")

	err = Apply(p, Delta{}, time.Now())
	assert.ErrorIs(t, err, ErrUnknownInteraction)
}

// ランダムな操作列でもカウンタ・スコア・ステータスの不変条件が保たれること
func TestApply_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	grades := []model.FlashcardGrade{model.GradeHard, model.GradeGood, model.GradeEasy}

	for run := 0; run < 50; run++ {
		p := &model.ItemProgress{}
		prevSeen := 0
		for step := 0; step < 40; step++ {
			var d Delta
			switch rng.Intn(3) {
			case 0:
				d = Answer(rng.Intn(2) == 0)
			case 1:
				d = Flashcard(grades[rng.Intn(len(grades))])
			default:
				d = Lookup()
			}
			require.NoError(t, Apply(p, d, time.Now()))

			assert.Equal(t, prevSeen+1, p.SeenCount)
			assert.LessOrEqual(t, p.CorrectCount+p.WrongCount, p.SeenCount)
			assert.GreaterOrEqual(t, p.MasteryScore, 0.0)
			assert.LessOrEqual(t, p.MasteryScore, 1.0)
			assert.Equal(t, p.MasteryScore >= MasteryThreshold, p.Status == model.StatusMastered)
			assert.NotEqual(t, model.StatusNew, p.Status)
			prevSeen = p.SeenCount
		}
	}
}
