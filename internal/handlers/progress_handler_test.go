package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"vocab_mastery/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProgressHandler_GetLessonItemProgress(t *testing.T) {
	studentID := uuid.New()
	lessonID := uuid.New()
	touched := uuid.New()
	untouched := uuid.New()

	tests := []struct {
		name          string
		path          string
		setupMock     func(m *mockServices)
		expectedCode  int
		expectedError string
	}{
		{
			name: "正常系: 未学習の単語は NEW",
			path: "/api/v1/progress/lessons/" + lessonID.String() + "/items",
			setupMock: func(m *mockServices) {
				m.course.On("GetStudentItemProgressForLesson", mock.Anything, studentID, lessonID).
					Return(map[uuid.UUID]*model.ItemProgressResponse{
						touched:   {VocabularyID: touched, SeenCount: 3, MasteryScore: 0.45, Status: model.StatusLearning},
						untouched: {VocabularyID: untouched, Status: model.StatusNew},
					}, nil).Once()
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "異常系: lesson_id の形式が不正",
			path:          "/api/v1/progress/lessons/xyz/items",
			setupMock:     func(m *mockServices) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "INVALID_PATH_PARAM",
		},
		{
			name: "異常系: レッスンが存在しない",
			path: "/api/v1/progress/lessons/" + lessonID.String() + "/items",
			setupMock: func(m *mockServices) {
				m.course.On("GetStudentItemProgressForLesson", mock.Anything, studentID, lessonID).
					Return(nil, model.NewAppError("LESSON_NOT_FOUND", "レッスンが見つかりません。", "lesson_id", model.ErrNotFound)).Once()
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "LESSON_NOT_FOUND",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			server, m := newMockServer(t)
			tc.setupMock(m)

			body := sendRequest(t, server, httpRequestDetails{
				Method:    http.MethodGet,
				Path:      tc.path,
				StudentID: &studentID,
			}, tc.expectedCode)

			if tc.expectedError != "" {
				verifyErrorResponse(t, body, tc.expectedError, "lesson_id")
				return
			}
			var resp map[uuid.UUID]*model.ItemProgressResponse
			require.NoError(t, json.Unmarshal(body, &resp))
			require.Len(t, resp, 2)
			assert.Equal(t, model.StatusNew, resp[untouched].Status)
			assert.Equal(t, 3, resp[touched].SeenCount)
		})
	}
}

func TestProgressHandler_GetAllLessonProgress(t *testing.T) {
	studentID := uuid.New()

	t.Run("正常系: 進捗なしは空オブジェクト", func(t *testing.T) {
		server, m := newMockServer(t)
		m.course.On("GetStudentAllLessonProgress", mock.Anything, studentID).Return(nil, nil).Once()

		body := sendRequest(t, server, httpRequestDetails{
			Method:    http.MethodGet,
			Path:      "/api/v1/progress/lessons",
			StudentID: &studentID,
		}, http.StatusOK)
		assert.JSONEq(t, `{}`, string(body))
	})

	t.Run("異常系: 認証なし", func(t *testing.T) {
		server, _ := newMockServer(t)
		body := sendRequest(t, server, httpRequestDetails{
			Method: http.MethodGet,
			Path:   "/api/v1/progress/lessons",
		}, http.StatusUnauthorized)
		verifyErrorResponse(t, body, "UNAUTHORIZED", "")
	})
}
