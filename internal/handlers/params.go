package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"vocab_mastery/internal/middleware"
	"vocab_mastery/internal/model"
	"vocab_mastery/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// studentFromRequest は認証済みの生徒IDを取り出します。取れなければ 401 を書いて false
func studentFromRequest(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (uuid.UUID, bool) {
	studentID, err := middleware.GetStudentIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return uuid.Nil, false
	}
	return studentID, true
}

func uuidParam(w http.ResponseWriter, r *http.Request, logger *slog.Logger, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		logger.Warn("Invalid path parameter", slog.String("param", name), slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_PATH_PARAM", "IDの形式が正しくありません。", name, model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return uuid.Nil, false
	}
	return id, true
}

// hskLevelsQuery は ?hsk_level=1&hsk_level=2 を読み取ります。範囲チェックはサービス側
func hskLevelsQuery(w http.ResponseWriter, r *http.Request, logger *slog.Logger) ([]int, bool) {
	values := r.URL.Query()["hsk_level"]
	levels := make([]int, 0, len(values))
	for _, v := range values {
		level, err := strconv.Atoi(v)
		if err != nil {
			logger.Warn("Invalid hsk_level query", slog.String("value", v))
			appErr := model.NewAppError("VALIDATION_ERROR", "HSKレベルは数値で指定してください。", "hsk_level", model.ErrInvalidInput)
			webutil.HandleError(w, logger, appErr)
			return nil, false
		}
		levels = append(levels, level)
	}
	return levels, true
}
