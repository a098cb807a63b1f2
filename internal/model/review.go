// internal/model/review.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// ContextKey はリクエストコンテキストに値を格納するためのキー型
type ContextKey string

const (
	StudentIDKey ContextKey = "studentID"
)

// DueReviewResponse は復習期限が来た単語のレスポンスDTO
type DueReviewResponse struct {
	VocabularyID uuid.UUID     `json:"vocabulary_id"`
	LessonID     uuid.UUID     `json:"lesson_id"`
	Hanzi        string        `json:"hanzi"`
	Pinyin       string        `json:"pinyin"`
	Meaning      string        `json:"meaning"` // 正解表示用に含める
	MasteryScore float64       `json:"mastery_score"`
	Status       MasteryStatus `json:"status"`
	NextReviewAt time.Time     `json:"next_review_at"`
}
