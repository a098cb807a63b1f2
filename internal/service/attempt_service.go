//go:generate mockery --name AttemptService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"vocab_mastery/internal/mastery"
	"vocab_mastery/internal/middleware"
	"vocab_mastery/internal/model"
	"vocab_mastery/internal/repository"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AttemptService は練習中の回答・評価・閲覧を記録し、単語の習熟度を更新します。
// 流れ: 入力検証 → 回答ログ追記 → 習熟度更新 (行ロック) → レッスン集計
type AttemptService interface {
	RecordAttempt(ctx context.Context, studentID, sessionID uuid.UUID, in model.AttemptInput) (*model.AttemptResult, error)
	RecordFlashcardGrading(ctx context.Context, studentID, vocabularyID, lessonID, sessionID uuid.UUID, grade model.FlashcardGrade) (*model.AttemptResult, error)
	RecordLookup(ctx context.Context, studentID, vocabularyID, lessonID uuid.UUID) (*model.ItemProgress, error)
}

type attemptService struct {
	db          *gorm.DB
	sessionRepo repository.SessionRepository
	attemptRepo repository.AttemptRepository
	itemRepo    repository.ItemProgressRepository
	catalogRepo repository.CatalogRepository
	lessonSvc   LessonProgressService
}

func NewAttemptService(
	db *gorm.DB,
	sessionRepo repository.SessionRepository,
	attemptRepo repository.AttemptRepository,
	itemRepo repository.ItemProgressRepository,
	catalogRepo repository.CatalogRepository,
	lessonSvc LessonProgressService,
) AttemptService {
	return &attemptService{
		db:          db,
		sessionRepo: sessionRepo,
		attemptRepo: attemptRepo,
		itemRepo:    itemRepo,
		catalogRepo: catalogRepo,
		lessonSvc:   lessonSvc,
	}
}

func (s *attemptService) RecordAttempt(ctx context.Context, studentID, sessionID uuid.UUID, in model.AttemptInput) (*model.AttemptResult, error) {
	logger := middleware.GetLogger(ctx).With("student_id", studentID, "session_id", sessionID, "vocabulary_id", in.VocabularyID)

	// --- 検証 (書き込み前にすべて行う) ---
	if !in.QuestionType.Scored() {
		return nil, model.NewAppError("VALIDATION_ERROR", "問題形式が不正です。", "question_type", model.ErrInvalidInput)
	}
	if in.TimeSpentSec < 0 {
		return nil, model.NewAppError("VALIDATION_ERROR", "回答時間に負の値は指定できません。", "time_spent_sec", model.ErrInvalidInput)
	}
	session, err := s.openSession(ctx, studentID, sessionID)
	if err != nil {
		return nil, err
	}
	if _, err := s.vocabularyInLesson(ctx, in.VocabularyID, session.LessonID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	attempt := &model.PracticeAttempt{
		AttemptID:     uuid.New(),
		SessionID:     session.SessionID,
		VocabularyID:  in.VocabularyID,
		QuestionType:  in.QuestionType,
		UserAnswer:    in.UserAnswer,
		CorrectAnswer: in.CorrectAnswer,
		IsCorrect:     in.IsCorrect,
		TimeSpentSec:  in.TimeSpentSec,
		CreatedAt:     now,
	}

	progress, err := s.appendAndScore(ctx, session, attempt, mastery.Answer(in.IsCorrect), now)
	if err != nil {
		logger.Error("Failed to record practice attempt", "error", err)
		return nil, err
	}

	logger.Info("Practice attempt recorded",
		"question_type", in.QuestionType,
		"is_correct", in.IsCorrect,
		"mastery_score", progress.MasteryScore,
		"status", progress.Status,
	)
	return &model.AttemptResult{Attempt: attempt, Progress: progress}, nil
}

func (s *attemptService) RecordFlashcardGrading(ctx context.Context, studentID, vocabularyID, lessonID, sessionID uuid.UUID, grade model.FlashcardGrade) (*model.AttemptResult, error) {
	logger := middleware.GetLogger(ctx).With("student_id", studentID, "session_id", sessionID, "vocabulary_id", vocabularyID)

	if !grade.Valid() {
		return nil, model.NewAppError("VALIDATION_ERROR", "評価は HARD / GOOD / EASY のいずれかを指定してください。", "action", model.ErrInvalidInput)
	}
	if err := s.lessonExists(ctx, lessonID); err != nil {
		return nil, err
	}
	session, err := s.openSession(ctx, studentID, sessionID)
	if err != nil {
		return nil, err
	}
	if session.LessonID != lessonID {
		return nil, model.NewAppError("VALIDATION_ERROR", "セッションのレッスンと一致しません。", "lesson_id", model.ErrInvalidInput)
	}
	vocabulary, err := s.vocabularyInLesson(ctx, vocabularyID, lessonID)
	if err != nil {
		return nil, err
	}

	metadata, err := json.Marshal(map[string]string{"grade": string(grade)})
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "評価の記録に失敗しました。", "", err)
	}

	now := time.Now().UTC()
	delta := mastery.Flashcard(grade)
	attempt := &model.PracticeAttempt{
		AttemptID:     uuid.New(),
		SessionID:     session.SessionID,
		VocabularyID:  vocabularyID,
		QuestionType:  model.QuestionFlashcard,
		CorrectAnswer: vocabulary.Hanzi,
		IsCorrect:     delta.IsCorrect,
		Metadata:      datatypes.JSON(metadata),
		CreatedAt:     now,
	}

	progress, err := s.appendAndScore(ctx, session, attempt, delta, now)
	if err != nil {
		logger.Error("Failed to record flashcard grading", "error", err)
		return nil, err
	}

	logger.Info("Flashcard grading recorded", "grade", grade, "mastery_score", progress.MasteryScore, "status", progress.Status)
	return &model.AttemptResult{Attempt: attempt, Progress: progress}, nil
}

func (s *attemptService) RecordLookup(ctx context.Context, studentID, vocabularyID, lessonID uuid.UUID) (*model.ItemProgress, error) {
	logger := middleware.GetLogger(ctx).With("student_id", studentID, "vocabulary_id", vocabularyID, "lesson_id", lessonID)

	if err := s.lessonExists(ctx, lessonID); err != nil {
		return nil, err
	}
	if _, err := s.vocabularyInLesson(ctx, vocabularyID, lessonID); err != nil {
		return nil, err
	}

	progress, err := s.upsertProgress(ctx, studentID, vocabularyID, mastery.Lookup(), time.Now().UTC())
	if err != nil {
		logger.Error("Failed to record vocabulary lookup", "error", err)
		return nil, err
	}
	s.lessonSvc.RecomputeOrDefer(ctx, studentID, lessonID)

	logger.Debug("Vocabulary lookup recorded", "seen_count", progress.SeenCount)
	return progress, nil
}

// appendAndScore は回答ログを先にコミットし、その後で習熟度を更新します。
// 習熟度の更新に失敗しても回答ログは残り、エラーは呼び出し元に返す。
func (s *attemptService) appendAndScore(ctx context.Context, session *model.PracticeSession, attempt *model.PracticeAttempt, delta mastery.Delta, now time.Time) (*model.ItemProgress, error) {
	if err := s.attemptRepo.Create(ctx, s.db, attempt); err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "回答の記録に失敗しました。", "", err)
	}

	progress, err := s.upsertProgress(ctx, session.StudentID, attempt.VocabularyID, delta, now)
	if err != nil {
		return nil, err
	}

	// 集計の失敗は単語の更新を巻き戻さない
	s.lessonSvc.RecomputeOrDefer(ctx, session.StudentID, session.LessonID)
	return progress, nil
}

func (s *attemptService) upsertProgress(ctx context.Context, studentID, vocabularyID uuid.UUID, delta mastery.Delta, now time.Time) (*model.ItemProgress, error) {
	var progress *model.ItemProgress
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		progress, err = s.itemRepo.Upsert(ctx, tx, studentID, vocabularyID, delta, now)
		return err
	})
	if err != nil {
		if errors.Is(err, model.ErrConcurrency) {
			return nil, model.NewAppError("CONCURRENT_UPDATE", "同じ単語への更新が競合しました。もう一度お試しください。", "", err)
		}
		return nil, model.NewAppError("SCORING_FAILED", "習熟度の更新に失敗しました。", "", err)
	}
	return progress, nil
}

// openSession は呼び出し元の生徒の、終了していないセッションを返します
func (s *attemptService) openSession(ctx context.Context, studentID, sessionID uuid.UUID) (*model.PracticeSession, error) {
	session, err := loadOwnedSession(ctx, s.db, s.sessionRepo, studentID, sessionID)
	if err != nil {
		return nil, err
	}
	if session.EndedAt != nil {
		return nil, model.NewAppError("SESSION_ALREADY_FINISHED", "このセッションは既に終了しています。", "session_id", model.ErrConflict)
	}
	return session, nil
}

func (s *attemptService) lessonExists(ctx context.Context, lessonID uuid.UUID) error {
	if _, err := s.catalogRepo.FindLesson(ctx, s.db, lessonID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.NewAppError("LESSON_NOT_FOUND", "レッスンが見つかりません。", "lesson_id", err)
		}
		return model.NewAppError("INTERNAL_SERVER_ERROR", "レッスンの確認中にエラーが発生しました。", "", err)
	}
	return nil
}

// vocabularyInLesson は単語が存在し、指定レッスンに属しているか確認します
func (s *attemptService) vocabularyInLesson(ctx context.Context, vocabularyID, lessonID uuid.UUID) (*model.Vocabulary, error) {
	vocabulary, err := s.catalogRepo.FindVocabulary(ctx, s.db, vocabularyID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("VOCABULARY_NOT_FOUND", "単語が見つかりません。", "vocabulary_id", err)
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "単語の取得に失敗しました。", "", err)
	}
	if vocabulary.LessonID != lessonID {
		return nil, model.NewAppError("VALIDATION_ERROR", "単語がレッスンに属していません。", "vocabulary_id", model.ErrInvalidInput)
	}
	return vocabulary, nil
}
