// internal/middleware/dev_auth.go
package middleware

import (
	"net/http"

	"vocab_mastery/internal/model"
	"vocab_mastery/internal/webutil"

	"github.com/google/uuid"
)

// DevStudentContextMiddleware は開発時用ミドルウェアです。
// X-Student-ID ヘッダーからUUIDを抽出し、コンテキストに設定します。
func DevStudentContextMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLogger(r.Context())

		studentIDStr := r.Header.Get("X-Student-ID")
		if studentIDStr == "" {
			logger.Warn("[DEV AUTH] Failed: X-Student-ID header missing")
			webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "[DEV] X-Student-ID ヘッダーが必要です。", "", model.ErrUnauthorized))
			return
		}

		studentID, err := uuid.Parse(studentIDStr)
		if err != nil {
			logger.Warn("[DEV AUTH] Failed: Invalid X-Student-ID format", "value", studentIDStr)
			webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "[DEV] X-Student-ID の形式が正しくありません。", "", model.ErrUnauthorized))
			return
		}

		logger.Debug("[DEV AUTH] Student ID set to context (no validation)", "student_id", studentID)
		next.ServeHTTP(w, r.WithContext(withStudent(r.Context(), studentID)))
	})
}
