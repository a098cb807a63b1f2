package handlers

import (
	"log/slog"
	"net/http"

	"vocab_mastery/internal/model"
	"vocab_mastery/internal/service"
	"vocab_mastery/internal/webutil"
)

type CourseHandler struct {
	service service.CourseService
	logger  *slog.Logger
}

func NewCourseHandler(s service.CourseService, logger *slog.Logger) *CourseHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CourseHandler{service: s, logger: logger}
}

// GetCourses: GET /courses?hsk_level=1&hsk_level=2
func (h *CourseHandler) GetCourses(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetCourses"))

	levels, ok := hskLevelsQuery(w, r, logger)
	if !ok {
		return
	}

	courses, err := h.service.GetCoursesForPractice(r.Context(), levels)
	if err != nil {
		logger.Error("Error listing courses in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	if courses == nil {
		courses = []*model.CourseWithLessons{}
	}

	logger.Info("Courses listed successfully", slog.Int("count", len(courses)))
	webutil.RespondWithJSON(w, http.StatusOK, courses, logger)
}

// GetPracticeOverview: GET /practice/overview?hsk_level=1
func (h *CourseHandler) GetPracticeOverview(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetPracticeOverview"))

	studentID, ok := studentFromRequest(w, r, logger)
	if !ok {
		return
	}
	levels, ok := hskLevelsQuery(w, r, logger)
	if !ok {
		return
	}

	overview, err := h.service.GetPracticeOverview(r.Context(), studentID, levels)
	if err != nil {
		logger.Error("Error building practice overview in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, overview, logger)
}
