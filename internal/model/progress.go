// internal/model/progress.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type MasteryStatus string

const (
	StatusNew      MasteryStatus = "NEW"
	StatusLearning MasteryStatus = "LEARNING"
	StatusMastered MasteryStatus = "MASTERED"
)

// ItemProgress は生徒×単語ごとの習熟度を表します
type ItemProgress struct {
	ProgressID   uuid.UUID     `gorm:"type:uuid;primaryKey" json:"progress_id"`
	StudentID    uuid.UUID     `gorm:"type:uuid;not null;index:idx_student_vocabulary,unique" json:"student_id"` // 複合ユニークインデックスの一部
	VocabularyID uuid.UUID     `gorm:"type:uuid;not null;index:idx_student_vocabulary,unique" json:"vocabulary_id"`
	SeenCount    int           `gorm:"not null;default:0" json:"seen_count"`
	CorrectCount int           `gorm:"not null;default:0" json:"correct_count"`
	WrongCount   int           `gorm:"not null;default:0" json:"wrong_count"`
	MasteryScore float64       `gorm:"not null;default:0" json:"mastery_score"`
	Status       MasteryStatus `gorm:"type:varchar(16);not null;default:'LEARNING';index" json:"status"` // mastery.DeriveStatus 以外から書き込まない
	LastSeenAt   *time.Time    `json:"last_seen_at"`
	NextReviewAt *time.Time    `gorm:"index" json:"next_review_at"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`

	// 関連 (Preload用)。VocabularyID から推論させて belongs-to にする
	Vocabulary *Vocabulary `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (ItemProgress) TableName() string {
	return "item_progress"
}

// LessonProgress は生徒×レッスンの集計値。LessonProgressService のみが書き込む
type LessonProgress struct {
	LessonProgressID uuid.UUID `gorm:"type:uuid;primaryKey" json:"lesson_progress_id"`
	StudentID        uuid.UUID `gorm:"type:uuid;not null;index:idx_student_lesson,unique" json:"student_id"`
	LessonID         uuid.UUID `gorm:"type:uuid;not null;index:idx_student_lesson,unique" json:"lesson_id"`
	LearnedCount     int       `gorm:"not null;default:0" json:"learned_count"`
	MasteredCount    int       `gorm:"not null;default:0" json:"mastered_count"`
	MasteryPercent   float64   `gorm:"not null;default:0" json:"mastery_percent"`
	TotalTimeSec     int64     `gorm:"not null;default:0" json:"total_time_sec"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (LessonProgress) TableName() string {
	return "lesson_progress"
}

// ItemProgressResponse はレッスン内の単語ごとの進捗レスポンス。
// 記録がない単語は NEW として返す
type ItemProgressResponse struct {
	VocabularyID uuid.UUID     `json:"vocabulary_id"`
	Hanzi        string        `json:"hanzi"`
	Pinyin       string        `json:"pinyin"`
	Meaning      string        `json:"meaning"`
	SeenCount    int           `json:"seen_count"`
	CorrectCount int           `json:"correct_count"`
	WrongCount   int           `json:"wrong_count"`
	MasteryScore float64       `json:"mastery_score"`
	Status       MasteryStatus `json:"status"`
	LastSeenAt   *time.Time    `json:"last_seen_at"`
	NextReviewAt *time.Time    `json:"next_review_at"`
}
