package handlers

import (
	"log/slog"
	"net/http"

	"vocab_mastery/internal/model"
	"vocab_mastery/internal/service"
	"vocab_mastery/internal/webutil"

	"github.com/google/uuid"
)

// ProgressHandler は生徒ごとの進捗参照 (読み取り専用)
type ProgressHandler struct {
	service service.CourseService
	logger  *slog.Logger
}

func NewProgressHandler(s service.CourseService, logger *slog.Logger) *ProgressHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProgressHandler{service: s, logger: logger}
}

// GetLessonItemProgress: GET /progress/lessons/{lesson_id}/items
func (h *ProgressHandler) GetLessonItemProgress(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetLessonItemProgress"))

	studentID, ok := studentFromRequest(w, r, logger)
	if !ok {
		return
	}
	lessonID, ok := uuidParam(w, r, logger, "lesson_id")
	if !ok {
		return
	}

	items, err := h.service.GetStudentItemProgressForLesson(r.Context(), studentID, lessonID)
	if err != nil {
		logger.Error("Error getting item progress in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	if items == nil {
		items = map[uuid.UUID]*model.ItemProgressResponse{}
	}

	webutil.RespondWithJSON(w, http.StatusOK, items, logger)
}

// GetAllLessonProgress: GET /progress/lessons
func (h *ProgressHandler) GetAllLessonProgress(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetAllLessonProgress"))

	studentID, ok := studentFromRequest(w, r, logger)
	if !ok {
		return
	}

	progress, err := h.service.GetStudentAllLessonProgress(r.Context(), studentID)
	if err != nil {
		logger.Error("Error getting lesson progress in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	if progress == nil {
		progress = map[uuid.UUID]*model.LessonProgress{}
	}

	webutil.RespondWithJSON(w, http.StatusOK, progress, logger)
}
