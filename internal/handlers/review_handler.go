// internal/handlers/review_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"vocab_mastery/internal/model"
	"vocab_mastery/internal/service"
	"vocab_mastery/internal/webutil"
)

type ReviewHandler struct {
	service service.ReviewService
	logger  *slog.Logger
}

func NewReviewHandler(s service.ReviewService, logger *slog.Logger) *ReviewHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReviewHandler{service: s, logger: logger}
}

// GetDueReviews: GET /reviews/due
func (h *ReviewHandler) GetDueReviews(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetDueReviews"))

	studentID, ok := studentFromRequest(w, r, logger)
	if !ok {
		return
	}

	reviews, err := h.service.GetDueReviews(r.Context(), studentID)
	if err != nil {
		logger.Error("Error getting due reviews in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if reviews == nil {
		reviews = []*model.DueReviewResponse{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, reviews, logger)
}
