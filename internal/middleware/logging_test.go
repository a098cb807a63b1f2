package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// logLines は JSON ハンドラの出力を1行ずつ map にします
func logLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var lines []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		lines = append(lines, m)
	}
	return lines
}

func TestLoggingMiddleware(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		level         slog.Level
		expectedLevel string
		expectDetail  bool
	}{
		{name: "正常系: 2xx は INFO", status: http.StatusOK, level: slog.LevelInfo, expectedLevel: "INFO"},
		{name: "正常系: 4xx は WARN", status: http.StatusNotFound, level: slog.LevelInfo, expectedLevel: "WARN"},
		{name: "正常系: 5xx は ERROR", status: http.StatusInternalServerError, level: slog.LevelInfo, expectedLevel: "ERROR"},
		{name: "正常系: DEBUG ではヘッダーとボディも出す", status: http.StatusCreated, level: slog.LevelDebug, expectedLevel: "INFO", expectDetail: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: tc.level}))

			var fromCtx *slog.Logger
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				fromCtx = GetLogger(r.Context())
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(`{"ok":true}`))
			})

			req := httptest.NewRequest(http.MethodPost, "/api/v1/practice/sessions", strings.NewReader(`{"mode":"QUIZ"}`))
			req.Header.Set("Authorization", "Bearer secret-token")
			rec := httptest.NewRecorder()
			LoggingMiddleware(logger)(next).ServeHTTP(rec, req)

			assert.Equal(t, tc.status, rec.Code)
			assert.NotSame(t, slog.Default(), fromCtx, "リクエスト用ロガーがコンテキストに入っていること")

			lines := logLines(t, &buf)
			require.NotEmpty(t, lines)
			completed := lines[0]
			assert.Equal(t, "Request completed", completed["msg"])
			assert.Equal(t, tc.expectedLevel, completed["level"])
			assert.Equal(t, float64(tc.status), completed["status"])
			assert.Equal(t, "/api/v1/practice/sessions", completed["path"])

			if !tc.expectDetail {
				assert.Len(t, lines, 1)
				return
			}
			require.Len(t, lines, 3)
			headers, ok := lines[1]["headers"].(map[string]interface{})
			require.True(t, ok)
			assert.Equal(t, "[SENSITIVE]", headers["Authorization"])
			assert.Equal(t, `{"mode":"QUIZ"}`, lines[1]["body"])
			assert.Equal(t, `{"ok":true}`, lines[2]["body"])
		})
	}
}

func TestGetLogger_Default(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Same(t, slog.Default(), GetLogger(req.Context()))
}
