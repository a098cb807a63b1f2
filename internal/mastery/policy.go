// Package mastery は単語ごとの習熟度スコア・ステータス・次回復習日時を計算する純粋関数群です。
// DB やコンテキストには依存しません。
package mastery

import (
	"errors"
	"math"
	"time"

	"vocab_mastery/internal/model"
)

const (
	// MasteryThreshold 以上のスコアで MASTERED とみなす
	MasteryThreshold = 0.8

	answerCorrectDelta   = 0.15
	answerIncorrectDelta = -0.10

	flashcardHardDelta = -0.10
	flashcardGoodDelta = 0.10
	flashcardEasyDelta = 0.15

	// 浮動小数の誤差で 0.8 の境界を割らないよう小数4桁に丸める
	scorePrecision = 10000
)

const (
	shortInterval  = 10 * time.Minute
	mediumInterval = 24 * time.Hour
	longInterval   = 3 * 24 * time.Hour
)

var ErrUnknownInteraction = errors.New("mastery: unknown interaction")

// Kind はインタラクションの種類
type Kind int

const (
	KindAnswer    Kind = iota + 1 // クイズ・リスニング・筆記の採点
	KindFlashcard                 // フラッシュカードの自己評価
	KindLookup                    // 受動的な閲覧 (採点なし)
)

// Delta は1回のインタラクションで ItemProgress に適用する変化
type Delta struct {
	Kind      Kind
	IsCorrect bool
	Grade     model.FlashcardGrade
}

func Answer(isCorrect bool) Delta {
	return Delta{Kind: KindAnswer, IsCorrect: isCorrect}
}

func Flashcard(grade model.FlashcardGrade) Delta {
	return Delta{Kind: KindFlashcard, Grade: grade, IsCorrect: grade != model.GradeHard}
}

func Lookup() Delta {
	return Delta{Kind: KindLookup}
}

func (d Delta) Validate() error {
	switch d.Kind {
	case KindAnswer, KindLookup:
		return nil
	case KindFlashcard:
		if d.Grade.Valid() {
			return nil
		}
	}
	return ErrUnknownInteraction
}

// Apply は直前の状態 p に d を適用します。スコアは必ず前回値から計算し、リセットしない。
// ステータスは DeriveStatus のみで決定する。
func Apply(p *model.ItemProgress, d Delta, now time.Time) error {
	if err := d.Validate(); err != nil {
		return err
	}

	p.SeenCount++

	switch d.Kind {
	case KindAnswer:
		countOutcome(p, d.IsCorrect)
		p.MasteryScore = ScoreAnswer(p.MasteryScore, d.IsCorrect)
		next := ScheduleByScore(p.MasteryScore, now)
		p.NextReviewAt = &next
	case KindFlashcard:
		countOutcome(p, d.IsCorrect)
		p.MasteryScore = ScoreFlashcard(p.MasteryScore, d.Grade)
		next := ScheduleByGrade(d.Grade, now)
		p.NextReviewAt = &next
	case KindLookup:
		// スコアは変えない。初回のみ復習日時を設定
		if p.NextReviewAt == nil {
			next := now.Add(shortInterval)
			p.NextReviewAt = &next
		}
	}

	p.Status = DeriveStatus(p.MasteryScore, p.SeenCount)
	p.LastSeenAt = &now
	return nil
}

func countOutcome(p *model.ItemProgress, isCorrect bool) {
	if isCorrect {
		p.CorrectCount++
	} else {
		p.WrongCount++
	}
}

// ScoreAnswer はクイズ・リスニング・筆記の正誤からスコアを計算します
func ScoreAnswer(current float64, isCorrect bool) float64 {
	if isCorrect {
		return Clamp(current + answerCorrectDelta)
	}
	return Clamp(current + answerIncorrectDelta)
}

// ScoreFlashcard はフラッシュカードの自己評価からスコアを計算します
func ScoreFlashcard(current float64, grade model.FlashcardGrade) float64 {
	switch grade {
	case model.GradeHard:
		return Clamp(current + flashcardHardDelta)
	case model.GradeGood:
		return Clamp(current + flashcardGoodDelta)
	case model.GradeEasy:
		return Clamp(current + flashcardEasyDelta)
	}
	return Clamp(current)
}

// ScheduleByScore は採点後のスコア帯から次回復習日時を決めます
func ScheduleByScore(score float64, now time.Time) time.Time {
	switch {
	case score >= MasteryThreshold:
		return now.Add(longInterval)
	case score >= 0.5:
		return now.Add(mediumInterval)
	default:
		return now.Add(shortInterval)
	}
}

// ScheduleByGrade はフラッシュカードの評価そのものから次回復習日時を決めます。
// スコア帯とは連動させない。
func ScheduleByGrade(grade model.FlashcardGrade, now time.Time) time.Time {
	switch grade {
	case model.GradeEasy:
		return now.Add(longInterval)
	case model.GradeGood:
		return now.Add(mediumInterval)
	default:
		return now.Add(shortInterval)
	}
}

// DeriveStatus はスコアと閲覧回数からステータスを導出します。
// ItemProgress.Status に書き込むのはこの関数の結果だけ。
func DeriveStatus(score float64, seenCount int) model.MasteryStatus {
	switch {
	case score >= MasteryThreshold:
		return model.StatusMastered
	case seenCount == 0 && score == 0:
		return model.StatusNew
	default:
		return model.StatusLearning
	}
}

// IsMastered はスコアが習得済みの閾値に達しているか判定します
func IsMastered(score float64) bool {
	return score >= MasteryThreshold
}

// Clamp はスコアを [0, 1] に収め、小数4桁に丸めます
func Clamp(score float64) float64 {
	score = math.Round(score*scorePrecision) / scorePrecision
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}
