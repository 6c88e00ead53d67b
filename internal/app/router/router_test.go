package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authhandler "learning_backend/internal/feature/auth/transport/handler"
	moduleentity "learning_backend/internal/feature/modules/domain/entity"
	modulehandler "learning_backend/internal/feature/modules/transport/handler"
	progressentity "learning_backend/internal/feature/progress/domain/entity"
	progresshandler "learning_backend/internal/feature/progress/transport/handler"
	quizusecase "learning_backend/internal/feature/quizzes/usecase"
	quizhandler "learning_backend/internal/feature/quizzes/transport/handler"
	platformhandler "learning_backend/internal/platform/http/handler"
	jwtmw "learning_backend/internal/platform/jwt"
	"learning_backend/internal/shared/ratelimiter"
)

const testSecret = "router-test-secret"

type stubAuth struct{}

func (stubAuth) Register(ctx context.Context, email, password, createdAt, role string) (string, error) {
	return "reg-token", nil
}

func (stubAuth) Login(ctx context.Context, email, password string) (string, error) {
	return "session-token", nil
}

type stubProgress struct{}

func (stubProgress) UpdateProgress(ctx context.Context, userID, moduleID, currentContentID uint, isCompleted *bool) error {
	return nil
}

func (stubProgress) GetUserProgress(ctx context.Context, userID uint) ([]progressentity.Progress, error) {
	return []progressentity.Progress{}, nil
}

func (stubProgress) GetUserProgressByModule(ctx context.Context, userID, moduleID uint) (*progressentity.Progress, error) {
	return &progressentity.Progress{UserID: userID, ModuleID: moduleID}, nil
}

func (stubProgress) GetUserProgressSummary(ctx context.Context, userID uint) (*progressentity.Summary, error) {
	s := progressentity.NewSummary(2, 1)
	return &s, nil
}

type stubModules struct{ created int }

func (s *stubModules) ListModules(ctx context.Context) ([]moduleentity.Module, error) {
	return []moduleentity.Module{{ID: 1, Title: "Go"}}, nil
}

func (s *stubModules) GetModule(ctx context.Context, id uint) (*moduleentity.Module, error) {
	return &moduleentity.Module{ID: id}, nil
}

func (s *stubModules) CreateModule(ctx context.Context, m *moduleentity.Module) error {
	s.created++
	return nil
}

func (s *stubModules) UpdateModule(ctx context.Context, id uint, upd moduleentity.ModuleUpdate) error {
	return nil
}

func (s *stubModules) DeleteModule(ctx context.Context, id uint) error { return nil }

func newTestRouter(t *testing.T, modules *stubModules, limiter ratelimiter.Limiter) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := Handlers{
		Auth:     authhandler.NewAuthHandler(stubAuth{}, nil),
		Progress: progresshandler.NewProgressHandler(stubProgress{}),
		Modules:  modulehandler.NewModuleHandler(modules),
		Contents: modulehandler.NewContentHandler(nil),
		Quizzes:  quizhandler.NewQuizHandler(nil),
		Attempts: quizhandler.NewAttemptHandler(quizusecase.NewAttemptUsecase()),
		Status:   platformhandler.NewStatusHandler(time.Now()),
	}
	return NewRouter(h, Options{
		Verifier:       jwtmw.NewVerifier(testSecret),
		AdminKeyID:     "admin",
		AuthLimiter:    limiter,
		RequestTimeout: time.Second,
		CORSOrigins:    []string{"https://app.example"},
	})
}

func token(t *testing.T, claims map[string]any) string {
	t.Helper()
	tok, err := jwtmw.NewIssuer(testSecret).Issue(claims, time.Hour)
	require.NoError(t, err)
	return tok
}

func serve(r http.Handler, method, path, bearer, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRouter_PublicRoutes(t *testing.T) {
	r := newTestRouter(t, &stubModules{}, nil)

	w := serve(r, http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = serve(r, http.MethodHead, "/healthz", "", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(r, http.MethodGet, "/v1/", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "DigitalAcademy API is up and running.")

	w = serve(r, http.MethodPost, "/v1/auth/login", "", `{"email":"a@example.com","password":"Passw0rd!x"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "session-token")
}

func TestRouter_ProgressRequiresMatchingUser(t *testing.T) {
	r := newTestRouter(t, &stubModules{}, nil)
	session := token(t, map[string]any{jwtmw.ClaimUserID: 5, jwtmw.ClaimEmail: "a@example.com"})
	registration := token(t, map[string]any{jwtmw.ClaimEmail: "a@example.com"})

	tests := []struct {
		name           string
		bearer         string
		path           string
		expectedStatus int
	}{
		{"no token", "", "/v1/users/5/progress", http.StatusUnauthorized},
		{"registration token", registration, "/v1/users/5/progress", http.StatusUnauthorized},
		{"other user", session, "/v1/users/6/progress", http.StatusForbidden},
		{"own list", session, "/v1/users/5/progress", http.StatusOK},
		{"own summary", session, "/v1/users/5/progress/summary", http.StatusOK},
		{"own module", session, "/v1/users/5/progress/3", http.StatusOK},
		{"attempts", session, "/v1/users/5/quizzes/2/attempts", http.StatusNotImplemented},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(r, http.MethodGet, tt.path, tt.bearer, "")
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestRouter_CatalogueWritesRequireAdminKeyID(t *testing.T) {
	modules := &stubModules{}
	r := newTestRouter(t, modules, nil)
	learner := token(t, map[string]any{jwtmw.ClaimUserID: 5, jwtmw.ClaimEmail: "a@example.com"})
	admin := token(t, map[string]any{jwtmw.ClaimUserID: 1, jwtmw.ClaimEmail: "ops@example.com", jwtmw.ClaimKeyID: "admin"})
	body := `{"title":"Go","description":"Intro","difficultyLevel":"beginner"}`

	w := serve(r, http.MethodGet, "/v1/modules", learner, "")
	assert.Equal(t, http.StatusOK, w.Code, "reads need any valid token")

	w = serve(r, http.MethodPost, "/v1/modules", learner, body)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Zero(t, modules.created)

	w = serve(r, http.MethodPost, "/v1/modules", admin, body)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, modules.created)
}

func TestRouter_AuthRateLimit(t *testing.T) {
	r := newTestRouter(t, &stubModules{}, ratelimiter.NewKeyedLimiter(0.001, 2, time.Minute))
	body := `{"email":"a@example.com","password":"Passw0rd!x"}`

	for i := 0; i < 2; i++ {
		w := serve(r, http.MethodPost, "/v1/auth/login", "", body)
		require.Equal(t, http.StatusOK, w.Code)
	}
	w := serve(r, http.MethodPost, "/v1/auth/login", "", body)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestRouter_CORS(t *testing.T) {
	r := newTestRouter(t, &stubModules{}, nil)

	req := httptest.NewRequest(http.MethodOptions, "/v1/modules", nil)
	req.Header.Set("Origin", "https://app.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://app.example", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCorsConfig(t *testing.T) {
	assert.True(t, corsConfig(nil).AllowAllOrigins)

	cfg := corsConfig([]string{"https://app.example"})
	assert.False(t, cfg.AllowAllOrigins)
	assert.Equal(t, []string{"https://app.example"}, cfg.AllowOrigins)
	assert.Contains(t, cfg.AllowHeaders, "Authorization")
	require.NoError(t, cfg.Validate())
}
