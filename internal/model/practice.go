// internal/model/practice.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type PracticeMode string

const (
	ModeFlashcard PracticeMode = "FLASHCARD"
	ModeQuiz      PracticeMode = "QUIZ"
	ModeListen    PracticeMode = "LISTEN"
	ModeWrite     PracticeMode = "WRITE"
)

func (m PracticeMode) Valid() bool {
	switch m {
	case ModeFlashcard, ModeQuiz, ModeListen, ModeWrite:
		return true
	}
	return false
}

type QuestionType string

const (
	QuestionMeaningChoice QuestionType = "MEANING_CHOICE"
	QuestionHanziChoice   QuestionType = "HANZI_CHOICE"
	QuestionPinyinChoice  QuestionType = "PINYIN_CHOICE"
	QuestionListenChoice  QuestionType = "LISTEN_CHOICE"
	QuestionWriteHanzi    QuestionType = "WRITE_HANZI"
	QuestionFlashcard     QuestionType = "FLASHCARD" // 評価操作専用 (RecordFlashcardGrading)
)

// Scored はクイズ・リスニング・筆記の採点対象となる問題形式か判定します
func (q QuestionType) Scored() bool {
	switch q {
	case QuestionMeaningChoice, QuestionHanziChoice, QuestionPinyinChoice, QuestionListenChoice, QuestionWriteHanzi:
		return true
	}
	return false
}

type FlashcardGrade string

const (
	GradeHard FlashcardGrade = "HARD"
	GradeGood FlashcardGrade = "GOOD"
	GradeEasy FlashcardGrade = "EASY"
)

func (g FlashcardGrade) Valid() bool {
	switch g {
	case GradeHard, GradeGood, GradeEasy:
		return true
	}
	return false
}

// PracticeSession は1レッスン・1モードの練習区間
type PracticeSession struct {
	SessionID   uuid.UUID    `gorm:"type:uuid;primaryKey" json:"session_id"`
	StudentID   uuid.UUID    `gorm:"type:uuid;not null;index:idx_session_student_lesson" json:"student_id"`
	LessonID    uuid.UUID    `gorm:"type:uuid;not null;index:idx_session_student_lesson" json:"lesson_id"`
	Mode        PracticeMode `gorm:"type:varchar(16);not null" json:"mode"`
	StartedAt   time.Time    `gorm:"not null" json:"started_at"`
	EndedAt     *time.Time   `json:"ended_at"` // 終了するまで NULL
	DurationSec int64        `gorm:"not null;default:0" json:"duration_sec"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

func (PracticeSession) TableName() string {
	return "practice_sessions"
}

// PracticeAttempt は回答の監査ログ (追記のみ)
type PracticeAttempt struct {
	AttemptID     uuid.UUID      `gorm:"type:uuid;primaryKey" json:"attempt_id"`
	SessionID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"session_id"`
	VocabularyID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"vocabulary_id"`
	QuestionType  QuestionType   `gorm:"type:varchar(32);not null" json:"question_type"`
	UserAnswer    *string        `json:"user_answer"`
	CorrectAnswer string         `gorm:"not null" json:"correct_answer"`
	IsCorrect     bool           `gorm:"not null" json:"is_correct"`
	TimeSpentSec  int            `gorm:"not null;default:0" json:"time_spent_sec"`
	Metadata      datatypes.JSON `json:"metadata,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
}

func (PracticeAttempt) TableName() string {
	return "practice_attempts"
}

// AttemptInput はサービス層に渡す回答内容
type AttemptInput struct {
	VocabularyID  uuid.UUID
	QuestionType  QuestionType
	UserAnswer    *string
	CorrectAnswer string
	IsCorrect     bool
	TimeSpentSec  int
}

// AttemptResult は回答記録後の監査ログと単語進捗
type AttemptResult struct {
	Attempt  *PracticeAttempt `json:"attempt"`
	Progress *ItemProgress    `json:"progress"`
}

// --- リクエスト / レスポンス DTO ---

type StartSessionRequest struct {
	LessonID uuid.UUID `json:"lesson_id" validate:"required"`
	Mode     string    `json:"mode" validate:"required"`
}

type StartSessionResponse struct {
	SessionID uuid.UUID `json:"session_id"`
}

type FinishSessionRequest struct {
	DurationSec *int64 `json:"duration_sec" validate:"required"`
}

type RecordAttemptRequest struct {
	VocabularyID  uuid.UUID `json:"vocabulary_id" validate:"required"`
	QuestionType  string    `json:"question_type" validate:"required"`
	UserAnswer    *string   `json:"user_answer"`
	CorrectAnswer string    `json:"correct_answer" validate:"required"`
	IsCorrect     *bool     `json:"is_correct" validate:"required"`
	TimeSpentSec  *int      `json:"time_spent_sec" validate:"required"`
}

type FlashcardActionRequest struct {
	VocabularyID uuid.UUID `json:"vocabulary_id" validate:"required"`
	LessonID     uuid.UUID `json:"lesson_id" validate:"required"`
	SessionID    uuid.UUID `json:"session_id" validate:"required"`
	Action       string    `json:"action" validate:"required"`
}

type VocabSeenRequest struct {
	VocabularyID uuid.UUID `json:"vocabulary_id" validate:"required"`
	LessonID     uuid.UUID `json:"lesson_id" validate:"required"`
}
