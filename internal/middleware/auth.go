package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"vocab_mastery/internal/config"
	"vocab_mastery/internal/model"
	"vocab_mastery/internal/webutil"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var errUnexpectedSigningMethod = errors.New("unexpected signing method")

// JWTAuthMiddleware は Authorization ヘッダーの Bearer トークンを検証し、
// sub クレームの生徒IDをコンテキストに格納します。トークンの発行は外部の認証基盤が行う。
func JWTAuthMiddleware(cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := GetLogger(r.Context())

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn("JWT auth failed: Authorization header missing")
				webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "Authorizationヘッダーが必要です。", "", model.ErrUnauthorized))
				return
			}

			scheme, tokenString, found := strings.Cut(authHeader, " ")
			if !found || !strings.EqualFold(scheme, "bearer") || tokenString == "" {
				logger.Warn("JWT auth failed: Invalid Authorization header format")
				webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "Authorizationヘッダーの形式が正しくありません。", "", model.ErrUnauthorized))
				return
			}

			// 署名と有効期限(exp)を検証
			token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, errUnexpectedSigningMethod
				}
				return []byte(cfg.JWT.SecretKey), nil
			}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
			if err != nil || !token.Valid {
				logger.Warn("JWT auth failed: Invalid token", "error", err)
				webutil.HandleError(w, logger, model.NewAppError("INVALID_TOKEN", "トークンが無効です。", "", model.ErrUnauthorized))
				return
			}

			subject, err := token.Claims.GetSubject()
			if err != nil || subject == "" {
				logger.Warn("JWT auth failed: Subject (sub) claim missing", "error", err)
				webutil.HandleError(w, logger, model.NewAppError("INVALID_TOKEN", "トークンに生徒情報が含まれていません。", "", model.ErrUnauthorized))
				return
			}

			studentID, err := uuid.Parse(subject)
			if err != nil {
				logger.Warn("JWT auth failed: Invalid subject (sub) format", "subject", subject, "error", err)
				webutil.HandleError(w, logger, model.NewAppError("INVALID_TOKEN", "トークンの生徒情報が不正です。", "", model.ErrUnauthorized))
				return
			}

			next.ServeHTTP(w, r.WithContext(withStudent(r.Context(), studentID)))
		})
	}
}

// withStudent は生徒IDをコンテキストとリクエストロガーの両方に設定する
func withStudent(ctx context.Context, studentID uuid.UUID) context.Context {
	ctx = context.WithValue(ctx, model.StudentIDKey, studentID)
	return WithLogger(ctx, GetLogger(ctx).With("student_id", studentID.String()))
}

func GetStudentIDFromContext(ctx context.Context) (uuid.UUID, error) {
	value, ok := ctx.Value(model.StudentIDKey).(uuid.UUID)
	if !ok || value == uuid.Nil {
		return uuid.Nil, model.NewAppError("UNAUTHORIZED", "コンテキストから生徒情報を取得できませんでした。", "", model.ErrUnauthorized)
	}
	return value, nil
}
