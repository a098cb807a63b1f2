//go:generate mockery --name ReviewService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"time"

	"vocab_mastery/internal/config"
	"vocab_mastery/internal/middleware"
	"vocab_mastery/internal/model"
	"vocab_mastery/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReviewService は next_review_at を過ぎた単語を返します。
// next_review_at は目安であり、期限前の練習を妨げない
type ReviewService interface {
	GetDueReviews(ctx context.Context, studentID uuid.UUID) ([]*model.DueReviewResponse, error)
}

type reviewService struct {
	db       *gorm.DB
	itemRepo repository.ItemProgressRepository
	cfg      *config.Config
}

func NewReviewService(db *gorm.DB, itemRepo repository.ItemProgressRepository, cfg *config.Config) ReviewService {
	return &reviewService{
		db:       db,
		itemRepo: itemRepo,
		cfg:      cfg,
	}
}

func (s *reviewService) GetDueReviews(ctx context.Context, studentID uuid.UUID) ([]*model.DueReviewResponse, error) {
	logger := middleware.GetLogger(ctx).With("student_id", studentID)

	progresses, err := s.itemRepo.FindDue(ctx, s.db, studentID, time.Now().UTC(), s.cfg.Practice.ReviewLimit)
	if err != nil {
		logger.Error("Failed to find due reviews from repository", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "復習単語の取得に失敗しました。", "", err)
	}

	responses := make([]*model.DueReviewResponse, 0, len(progresses))
	for _, p := range progresses {
		if p.Vocabulary == nil || p.NextReviewAt == nil {
			logger.Warn("Found progress without vocabulary or schedule, skipping", "progress_id", p.ProgressID)
			continue
		}
		responses = append(responses, &model.DueReviewResponse{
			VocabularyID: p.VocabularyID,
			LessonID:     p.Vocabulary.LessonID,
			Hanzi:        p.Vocabulary.Hanzi,
			Pinyin:       p.Vocabulary.Pinyin,
			Meaning:      p.Vocabulary.Meaning,
			MasteryScore: p.MasteryScore,
			Status:       p.Status,
			NextReviewAt: *p.NextReviewAt,
		})
	}

	logger.Info("Successfully retrieved due reviews", "count", len(responses))
	return responses, nil
}
