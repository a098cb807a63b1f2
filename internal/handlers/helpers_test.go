// helpers_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"vocab_mastery/internal/config"
	"vocab_mastery/internal/handlers"
	"vocab_mastery/internal/middleware"
	"vocab_mastery/internal/model"
	"vocab_mastery/internal/repository"
	"vocab_mastery/internal/service/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// httpRequestDetails はHTTPリクエストの送信に必要な情報をまとめます。
type httpRequestDetails struct {
	Method    string
	Path      string
	Body      interface{}
	StudentID *uuid.UUID // nil なら X-Student-ID を付けない
}

// sendRequest はHTTPリクエストを送信し、ステータスを検証してボディを返します。
func sendRequest(t *testing.T, server *httptest.Server, details httpRequestDetails, expectedCode int) []byte {
	t.Helper()

	var reqBody io.Reader
	if details.Body != nil {
		if s, ok := details.Body.(string); ok {
			reqBody = strings.NewReader(s)
		} else {
			b, err := json.Marshal(details.Body)
			require.NoError(t, err, "Failed to marshal request body")
			reqBody = bytes.NewBuffer(b)
		}
	}

	req, err := http.NewRequest(details.Method, server.URL+details.Path, reqBody)
	require.NoError(t, err, "Failed to create request")
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if details.StudentID != nil {
		req.Header.Set("X-Student-ID", details.StudentID.String())
	}

	resp, err := server.Client().Do(req)
	require.NoError(t, err, "Failed to execute request")
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "Failed to read response body")
	assert.Equal(t, expectedCode, resp.StatusCode, "Status code mismatch, body: %s", string(body))
	return body
}

// verifyErrorResponse はエラーレスポンスのコードと(指定があれば)フィールドを検証します。
func verifyErrorResponse(t *testing.T, body []byte, expectedCode, expectedField string) {
	t.Helper()
	if expectedCode == "" {
		return
	}
	var errResp model.APIErrorResponse
	require.NoError(t, json.Unmarshal(body, &errResp), "Error response is not APIErrorResponse JSON: %s", string(body))
	assert.Equal(t, expectedCode, errResp.Error.Code)
	assert.NotEmpty(t, errResp.Error.Message)
	if expectedField != "" {
		assert.Equal(t, expectedField, errResp.Error.Field)
	}
}

// setupTestDB はテストごとに独立したインメモリDBを作ります。
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to connect database for handler testing")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, repository.AutoMigrate(db), "failed to migrate database for handler testing")
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		CORS: config.CORSConfig{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST"},
			AllowedHeaders: []string{"Content-Type", "X-Student-ID"},
		},
		Practice: config.PracticeConfig{
			MaxSessionDurationSec: 3600,
			ReviewLimit:           10,
		},
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// mockServices はハンドラテスト用のサービスモック一式
type mockServices struct {
	session *mocks.SessionService
	attempt *mocks.AttemptService
	course  *mocks.CourseService
	review  *mocks.ReviewService
}

// newMockServer はモックサービスを本番と同じルーターに載せたサーバーを起動します。
// 認証は X-Student-ID ヘッダーを使う開発用ミドルウェア
func newMockServer(t *testing.T) (*httptest.Server, *mockServices) {
	t.Helper()
	m := &mockServices{
		session: mocks.NewSessionService(t),
		attempt: mocks.NewAttemptService(t),
		course:  mocks.NewCourseService(t),
		review:  mocks.NewReviewService(t),
	}
	l := testLogger()
	h := handlers.Handlers{
		Practice: handlers.NewPracticeHandler(m.session, m.attempt, l),
		Progress: handlers.NewProgressHandler(m.course, l),
		Course:   handlers.NewCourseHandler(m.course, l),
		Review:   handlers.NewReviewHandler(m.review, l),
	}
	router := handlers.NewRouter(h, middleware.DevStudentContextMiddleware, setupTestDB(t), testConfig(), l)
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server, m
}
