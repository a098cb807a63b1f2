package webutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"vocab_mastery/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"NotFound", model.ErrNotFound, http.StatusNotFound},
		{"ラップされたNotFound", fmt.Errorf("repo: %w", model.ErrNotFound), http.StatusNotFound},
		{"AppError(InvalidInput)", model.NewAppError("VALIDATION_ERROR", "x", "", model.ErrInvalidInput), http.StatusBadRequest},
		{"Conflict", model.ErrConflict, http.StatusConflict},
		{"Concurrency", model.NewAppError("CONCURRENT_UPDATE", "x", "", model.ErrConcurrency), http.StatusConflict},
		{"Unauthorized", model.ErrUnauthorized, http.StatusUnauthorized},
		{"Forbidden", model.ErrForbidden, http.StatusForbidden},
		{"未知のエラー", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestHandleError(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("AppErrorは詳細をそのまま返す", func(t *testing.T) {
		rr := httptest.NewRecorder()
		HandleError(rr, logger, model.NewAppError("SESSION_NOT_FOUND", "セッションが見つかりません。", "session_id", model.ErrNotFound))

		assert.Equal(t, http.StatusNotFound, rr.Code)
		var resp model.APIErrorResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "SESSION_NOT_FOUND", resp.Error.Code)
		assert.Equal(t, "session_id", resp.Error.Field)
	})

	t.Run("予期せぬエラーは汎用メッセージ", func(t *testing.T) {
		rr := httptest.NewRecorder()
		HandleError(rr, logger, errors.New("pq: connection refused"))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.NotContains(t, rr.Body.String(), "connection refused")
		assert.Contains(t, rr.Body.String(), "INTERNAL_SERVER_ERROR")
	})
}

func TestDecodeAndValidate(t *testing.T) {
	type payload struct {
		LessonID uuid.UUID `json:"lesson_id" validate:"required"`
		Mode     string    `json:"mode" validate:"required"`
	}

	tests := []struct {
		name      string
		body      string
		wantField string
		wantErr   bool
	}{
		{name: "正常系", body: `{"lesson_id":"` + uuid.NewString() + `","mode":"QUIZ"}`},
		{name: "未知のフィールド", body: `{"mode":"QUIZ","extra":1}`, wantErr: true},
		{name: "JSON不正", body: `{`, wantErr: true},
		{name: "必須項目なし", body: `{"mode":"QUIZ"}`, wantErr: true, wantField: "lesson_id"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			var dst payload

			err := DecodeAndValidate(rr, req, &dst)
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, model.ErrInvalidInput)
			if tt.wantField != "" {
				var appErr *model.AppError
				require.ErrorAs(t, err, &appErr)
				assert.Equal(t, tt.wantField, appErr.Detail.Field)
				assert.Contains(t, appErr.Detail.Message, "レッスンID")
			}
		})
	}
}
