// internal/model/catalog.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Course は HSK レベルごとのコース (カタログは読み取り専用)
type Course struct {
	CourseID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"course_id"`
	Title       string    `gorm:"not null;uniqueIndex" json:"title"`
	HSKLevel    int       `gorm:"not null;index" json:"hsk_level"`
	Description string    `json:"description"`
	SortOrder   int       `gorm:"not null;default:0" json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Lessons []*Lesson `gorm:"foreignKey:CourseID;references:CourseID" json:"lessons,omitempty"`
}

func (Course) TableName() string {
	return "courses"
}

// Lesson はコース内のレッスン
type Lesson struct {
	LessonID  uuid.UUID `gorm:"type:uuid;primaryKey" json:"lesson_id"`
	CourseID  uuid.UUID `gorm:"type:uuid;not null;index:idx_course_lesson_title,unique" json:"course_id"`
	Title     string    `gorm:"not null;index:idx_course_lesson_title,unique" json:"title"`
	SortOrder int       `gorm:"not null;default:0" json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Vocabularies []*Vocabulary `gorm:"foreignKey:LessonID;references:LessonID" json:"-"`
}

func (Lesson) TableName() string {
	return "lessons"
}

// Vocabulary はレッスンに属する単語 (漢字・ピンイン・意味)
type Vocabulary struct {
	VocabularyID uuid.UUID `gorm:"type:uuid;primaryKey" json:"vocabulary_id"`
	LessonID     uuid.UUID `gorm:"type:uuid;not null;index:idx_lesson_hanzi,unique" json:"lesson_id"`
	Hanzi        string    `gorm:"not null;index:idx_lesson_hanzi,unique" json:"hanzi"`
	Pinyin       string    `gorm:"not null" json:"pinyin"`
	Meaning      string    `gorm:"not null" json:"meaning"`
	SortOrder    int       `gorm:"not null;default:0" json:"sort_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Vocabulary) TableName() string {
	return "vocabularies"
}

// LessonSummary はコース一覧用のレッスン情報 (単語数付き)
type LessonSummary struct {
	LessonID        uuid.UUID `json:"lesson_id"`
	Title           string    `json:"title"`
	SortOrder       int       `json:"sort_order"`
	VocabularyCount int64     `json:"vocabulary_count"`
}

// CourseWithLessons は練習画面向けのコース情報
type CourseWithLessons struct {
	CourseID    uuid.UUID        `json:"course_id"`
	Title       string           `json:"title"`
	HSKLevel    int              `json:"hsk_level"`
	Description string           `json:"description"`
	SortOrder   int              `json:"sort_order"`
	Lessons     []*LessonSummary `json:"lessons"`
}

// PracticeOverviewResponse はコース一覧と生徒のレッスン進捗をまとめたレスポンス
type PracticeOverviewResponse struct {
	Courses        []*CourseWithLessons           `json:"courses"`
	LessonProgress map[uuid.UUID]*LessonProgress `json:"lesson_progress"`
}
