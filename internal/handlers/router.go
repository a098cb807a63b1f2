package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"vocab_mastery/internal/config"
	"vocab_mastery/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"gorm.io/gorm"
)

// Handlers はルーターに載せるハンドラ一式
type Handlers struct {
	Practice *PracticeHandler
	Progress *ProgressHandler
	Course   *CourseHandler
	Review   *ReviewHandler
}

// NewRouter は API 全体のルーティングを組み立てます。
// auth は /api/v1 配下に適用する認証ミドルウェア (JWT または開発用)
func NewRouter(h Handlers, auth func(http.Handler) http.Handler, db *gorm.DB, cfg *config.Config, logger *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		ExposedHeaders:   cfg.CORS.ExposedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
		Debug:            false,
	})
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(auth)

		r.Get("/courses", h.Course.GetCourses)

		r.Route("/practice", func(r chi.Router) {
			r.Get("/overview", h.Course.GetPracticeOverview)
			r.Post("/sessions", h.Practice.StartSession)
			r.Post("/sessions/{session_id}/finish", h.Practice.FinishSession)
			r.Post("/sessions/{session_id}/attempts", h.Practice.RecordAttempt)
			r.Post("/flashcards", h.Practice.RecordFlashcardAction)
			r.Post("/lookups", h.Practice.RecordVocabSeen)
		})

		r.Route("/progress", func(r chi.Router) {
			r.Get("/lessons", h.Progress.GetAllLessonProgress)
			r.Get("/lessons/{lesson_id}/items", h.Progress.GetLessonItemProgress)
		})

		r.Get("/reviews/due", h.Review.GetDueReviews)
	})

	// Health Check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		sqlDB, err := db.DB()
		if err != nil {
			middleware.GetLogger(ctx).Error("Health check failed: could not get DB object", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			middleware.GetLogger(ctx).Error("Health check failed: could not ping DB", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	return r
}
