package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vocab_mastery/internal/config"
	"vocab_mastery/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key"

func signToken(t *testing.T, method jwt.SigningMethod, key interface{}, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return s
}

// studentEcho はコンテキストの生徒IDをそのまま返すハンドラ
func studentEcho(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := GetStudentIDFromContext(r.Context())
		require.NoError(t, err)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(id.String()))
	})
}

func TestJWTAuthMiddleware(t *testing.T) {
	cfg := &config.Config{JWT: config.JWTConfig{SecretKey: testSecret}}
	studentID := uuid.New()
	exp := time.Now().Add(time.Hour).Unix()

	tests := []struct {
		name         string
		header       string
		expectedCode int
		expectedErr  string
	}{
		{
			name:         "正常系: 有効なトークン",
			header:       "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{"sub": studentID.String(), "exp": exp}),
			expectedCode: http.StatusOK,
		},
		{
			name:         "正常系: スキームは大文字小文字を区別しない",
			header:       "bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{"sub": studentID.String(), "exp": exp}),
			expectedCode: http.StatusOK,
		},
		{
			name:         "異常系: ヘッダーなし",
			header:       "",
			expectedCode: http.StatusUnauthorized,
			expectedErr:  "UNAUTHORIZED",
		},
		{
			name:         "異常系: Bearer 以外のスキーム",
			header:       "Basic dXNlcjpwYXNz",
			expectedCode: http.StatusUnauthorized,
			expectedErr:  "UNAUTHORIZED",
		},
		{
			name:         "異常系: 署名鍵が違う",
			header:       "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte("other"), jwt.MapClaims{"sub": studentID.String(), "exp": exp}),
			expectedCode: http.StatusUnauthorized,
			expectedErr:  "INVALID_TOKEN",
		},
		{
			name:         "異常系: HS512 は受け付けない",
			header:       "Bearer " + signToken(t, jwt.SigningMethodHS512, []byte(testSecret), jwt.MapClaims{"sub": studentID.String(), "exp": exp}),
			expectedCode: http.StatusUnauthorized,
			expectedErr:  "INVALID_TOKEN",
		},
		{
			name:         "異常系: 期限切れ",
			header:       "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{"sub": studentID.String(), "exp": time.Now().Add(-time.Minute).Unix()}),
			expectedCode: http.StatusUnauthorized,
			expectedErr:  "INVALID_TOKEN",
		},
		{
			name:         "異常系: sub なし",
			header:       "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{"exp": exp}),
			expectedCode: http.StatusUnauthorized,
			expectedErr:  "INVALID_TOKEN",
		},
		{
			name:         "異常系: sub が UUID でない",
			header:       "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{"sub": "student-1", "exp": exp}),
			expectedCode: http.StatusUnauthorized,
			expectedErr:  "INVALID_TOKEN",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()

			JWTAuthMiddleware(cfg)(studentEcho(t)).ServeHTTP(rec, req)

			assert.Equal(t, tc.expectedCode, rec.Code)
			if tc.expectedErr == "" {
				assert.Equal(t, studentID.String(), rec.Body.String())
				return
			}
			var errResp model.APIErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
			assert.Equal(t, tc.expectedErr, errResp.Error.Code)
		})
	}
}

func TestDevStudentContextMiddleware(t *testing.T) {
	studentID := uuid.New()

	tests := []struct {
		name         string
		header       string
		expectedCode int
	}{
		{name: "正常系: ヘッダーの生徒IDを設定", header: studentID.String(), expectedCode: http.StatusOK},
		{name: "異常系: ヘッダーなし", header: "", expectedCode: http.StatusUnauthorized},
		{name: "異常系: UUID でない", header: "abc", expectedCode: http.StatusUnauthorized},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("X-Student-ID", tc.header)
			}
			rec := httptest.NewRecorder()

			DevStudentContextMiddleware(studentEcho(t)).ServeHTTP(rec, req)

			assert.Equal(t, tc.expectedCode, rec.Code)
			if tc.expectedCode == http.StatusOK {
				assert.Equal(t, studentID.String(), rec.Body.String())
			}
		})
	}
}

func TestGetStudentIDFromContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, err := GetStudentIDFromContext(req.Context())
	assert.ErrorIs(t, err, model.ErrUnauthorized)

	id := uuid.New()
	got, err := GetStudentIDFromContext(withStudent(req.Context(), id))
	require.NoError(t, err)
	assert.Equal(t, id, got)
}
