package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learning_backend/internal/feature/quizzes/domain/entity"
	"learning_backend/internal/feature/quizzes/usecase"
	jwtmw "learning_backend/internal/platform/jwt"
)

// mockQuizUsecase is a mock implementation of the QuizUsecase interface.
type mockQuizUsecase struct {
	ListQuizzesFunc func(ctx context.Context, moduleID uint) ([]entity.Quiz, error)
	GetQuizFunc     func(ctx context.Context, moduleID, quizID uint) (*entity.Quiz, error)
	CreateQuizFunc  func(ctx context.Context, q *entity.Quiz) error
	UpdateQuizFunc  func(ctx context.Context, moduleID, quizID uint, upd entity.QuizUpdate) error
	DeleteQuizFunc  func(ctx context.Context, moduleID, quizID uint) error
}

func (m *mockQuizUsecase) ListQuizzes(ctx context.Context, moduleID uint) ([]entity.Quiz, error) {
	if m.ListQuizzesFunc != nil {
		return m.ListQuizzesFunc(ctx, moduleID)
	}
	return nil, nil
}

func (m *mockQuizUsecase) GetQuiz(ctx context.Context, moduleID, quizID uint) (*entity.Quiz, error) {
	if m.GetQuizFunc != nil {
		return m.GetQuizFunc(ctx, moduleID, quizID)
	}
	return nil, usecase.ErrQuizNotFound
}

func (m *mockQuizUsecase) CreateQuiz(ctx context.Context, q *entity.Quiz) error {
	if m.CreateQuizFunc != nil {
		return m.CreateQuizFunc(ctx, q)
	}
	return nil
}

func (m *mockQuizUsecase) UpdateQuiz(ctx context.Context, moduleID, quizID uint, upd entity.QuizUpdate) error {
	if m.UpdateQuizFunc != nil {
		return m.UpdateQuizFunc(ctx, moduleID, quizID, upd)
	}
	return nil
}

func (m *mockQuizUsecase) DeleteQuiz(ctx context.Context, moduleID, quizID uint) error {
	if m.DeleteQuizFunc != nil {
		return m.DeleteQuizFunc(ctx, moduleID, quizID)
	}
	return nil
}

func newRouter(qu QuizUsecase, au AttemptUsecase, tokenUserID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if tokenUserID != 0 {
			c.Set(jwtmw.ContextUserID, tokenUserID)
		}
		c.Next()
	})

	qh := NewQuizHandler(qu)
	r.GET("/modules/:moduleId/quizzes", qh.List)
	r.POST("/modules/:moduleId/quizzes", qh.Create)
	r.GET("/modules/:moduleId/quizzes/:quizId", qh.Get)
	r.PUT("/modules/:moduleId/quizzes/:quizId", qh.Update)
	r.DELETE("/modules/:moduleId/quizzes/:quizId", qh.Delete)

	ah := NewAttemptHandler(au)
	r.POST("/users/:userId/quizzes/:quizId/attempts", ah.Record)
	r.GET("/users/:userId/quizzes/:quizId/attempts", ah.List)
	return r
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var got map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	return got
}

func TestQuizHandler_Create(t *testing.T) {
	tests := []struct {
		name            string
		body            string
		usecaseErr      error
		expectedStatus  int
		expectedMessage string
		expectCall      bool
	}{
		{"success", `{"title":"Basics","description":"Warm-up"}`, nil, http.StatusOK, "Quiz created successfully!", true},
		{"missing description", `{"title":"Basics"}`, nil, http.StatusBadRequest, "Invalid data", false},
		{"malformed json", `{"title":`, nil, http.StatusBadRequest, "Invalid data", false},
		{"denylisted title", `{"title":"x'--","description":"d"}`, nil, http.StatusBadRequest, "An unknown error has occurred.", false},
		{"module missing", `{"title":"Basics","description":"Warm-up"}`, usecase.ErrModuleNotFound, http.StatusNotFound, "Module not found", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			qu := &mockQuizUsecase{CreateQuizFunc: func(ctx context.Context, q *entity.Quiz) error {
				called = true
				assert.Equal(t, uint(3), q.ModuleID)
				return tt.usecaseErr
			}}

			w := do(newRouter(qu, usecase.NewAttemptUsecase(), 5), http.MethodPost, "/modules/3/quizzes", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectCall, called)
			got := decode(t, w)
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, tt.expectedMessage, got["success"])
			} else {
				assert.Equal(t, tt.expectedMessage, got["error"])
			}
		})
	}
}

func TestQuizHandler_Reads(t *testing.T) {
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	qu := &mockQuizUsecase{
		ListQuizzesFunc: func(ctx context.Context, moduleID uint) ([]entity.Quiz, error) {
			return []entity.Quiz{{ID: 1, ModuleID: moduleID, Title: "A", CreatedDate: created}}, nil
		},
		GetQuizFunc: func(ctx context.Context, moduleID, quizID uint) (*entity.Quiz, error) {
			if quizID != 1 {
				return nil, usecase.ErrQuizNotFound
			}
			return &entity.Quiz{ID: 1, ModuleID: moduleID, Title: "A", CreatedDate: created}, nil
		},
	}
	r := newRouter(qu, usecase.NewAttemptUsecase(), 5)

	w := do(r, http.MethodGet, "/modules/3/quizzes", "")
	require.Equal(t, http.StatusOK, w.Code)
	quizzes := decode(t, w)["quizzes"].([]any)
	require.Len(t, quizzes, 1)
	assert.Equal(t, float64(1), quizzes[0].(map[string]any)["quizId"])

	w = do(r, http.MethodGet, "/modules/3/quizzes/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	quiz := decode(t, w)["quiz"].(map[string]any)
	assert.Equal(t, "2025-01-01T00:00:00Z", quiz["createdDate"])
	assert.Nil(t, quiz["updatedAt"])

	w = do(r, http.MethodGet, "/modules/3/quizzes/2", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Quiz not found", decode(t, w)["error"])

	w = do(r, http.MethodGet, "/modules/3/quizzes/zz", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid Quiz ID", decode(t, w)["error"])
}

func TestQuizHandler_UpdateAndDelete(t *testing.T) {
	var gotUpd entity.QuizUpdate
	qu := &mockQuizUsecase{
		UpdateQuizFunc: func(ctx context.Context, moduleID, quizID uint, upd entity.QuizUpdate) error {
			gotUpd = upd
			return nil
		},
		DeleteQuizFunc: func(ctx context.Context, moduleID, quizID uint) error {
			return usecase.ErrQuizNotFound
		},
	}
	r := newRouter(qu, usecase.NewAttemptUsecase(), 5)

	w := do(r, http.MethodPut, "/modules/3/quizzes/1", `{"description":"Harder"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Quiz updated successfully!", decode(t, w)["success"])
	assert.Nil(t, gotUpd.Title)
	require.NotNil(t, gotUpd.Description)
	assert.Equal(t, "Harder", *gotUpd.Description)

	w = do(r, http.MethodPut, "/modules/3/quizzes/1", `{"title":"a\rb"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodDelete, "/modules/3/quizzes/1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAttemptHandler(t *testing.T) {
	tests := []struct {
		name           string
		tokenUserID    uint
		method         string
		path           string
		body           string
		expectedStatus int
	}{
		{"record is not implemented", 5, http.MethodPost, "/users/5/quizzes/2/attempts", `{"score":80}`, http.StatusNotImplemented},
		{"list is not implemented", 5, http.MethodGet, "/users/5/quizzes/2/attempts", "", http.StatusNotImplemented},
		{"missing score", 5, http.MethodPost, "/users/5/quizzes/2/attempts", `{}`, http.StatusBadRequest},
		{"another user", 5, http.MethodGet, "/users/6/quizzes/2/attempts", "", http.StatusForbidden},
		{"token without user id", 0, http.MethodGet, "/users/5/quizzes/2/attempts", "", http.StatusUnauthorized},
		{"invalid quiz id", 5, http.MethodGet, "/users/5/quizzes/x/attempts", "", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(newRouter(&mockQuizUsecase{}, usecase.NewAttemptUsecase(), tt.tokenUserID), tt.method, tt.path, tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusNotImplemented {
				assert.Equal(t, "NOT_IMPLEMENTED", decode(t, w)["code"])
			}
		})
	}
}
