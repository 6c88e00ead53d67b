// Package router assembles the gin engine and mounts every route under /v1.
package router

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "learning_backend/internal/feature/auth/transport/handler"
	modulehandler "learning_backend/internal/feature/modules/transport/handler"
	progresshandler "learning_backend/internal/feature/progress/transport/handler"
	quizhandler "learning_backend/internal/feature/quizzes/transport/handler"
	platformhandler "learning_backend/internal/platform/http/handler"
	"learning_backend/internal/platform/http/middleware"
	jwtmw "learning_backend/internal/platform/jwt"
	"learning_backend/internal/shared/ratelimiter"
)

// Handlers are the feature handlers the router mounts.
type Handlers struct {
	Auth     *authhandler.AuthHandler
	Progress *progresshandler.ProgressHandler
	Modules  *modulehandler.ModuleHandler
	Contents *modulehandler.ContentHandler
	Quizzes  *quizhandler.QuizHandler
	Attempts *quizhandler.AttemptHandler
	Status   *platformhandler.StatusHandler
}

// Options configure the cross-cutting middleware.
type Options struct {
	Verifier       jwtmw.TokenVerifier
	AdminKeyID     string // keyid required on catalogue writes; empty means any valid token
	AuthLimiter    ratelimiter.Limiter
	RequestTimeout time.Duration
	CORSOrigins    []string
	Logger         *slog.Logger
}

func NewRouter(h Handlers, opts Options) *gin.Engine {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r := gin.New()
	r.Use(
		middleware.RequestLogger(logger),
		gin.Recovery(),
		cors.New(corsConfig(opts.CORSOrigins)),
		middleware.Timeout(opts.RequestTimeout),
	)

	// 導通確認用
	r.GET("/healthz", platformhandler.Health)
	r.HEAD("/healthz", platformhandler.Health)
	r.OPTIONS("/healthz", platformhandler.Health)

	v1 := r.Group("/v1")
	v1.Any("/", h.Status.Status)

	// 認証不要
	auth := v1.Group("/auth")
	if opts.AuthLimiter != nil {
		auth.Use(middleware.RateLimit(opts.AuthLimiter))
	}
	auth.POST("/register", h.Auth.Register)
	auth.POST("/login", h.Auth.Login)

	// 認証必須のルート
	authed := v1.Group("", jwtmw.AuthRequired(opts.Verifier, ""))
	{
		progress := authed.Group("/users/:userId/progress")
		progress.GET("", h.Progress.List)
		progress.GET("/summary", h.Progress.Summary)
		progress.GET("/:moduleId", h.Progress.GetByModule)
		progress.POST("/:moduleId", h.Progress.Update)

		attempts := authed.Group("/users/:userId/quizzes/:quizId/attempts")
		attempts.GET("", h.Attempts.List)
		attempts.POST("", h.Attempts.Record)

		authed.GET("/modules", h.Modules.List)
		authed.GET("/modules/:moduleId", h.Modules.Get)
		authed.GET("/modules/:moduleId/contents", h.Contents.List)
		authed.GET("/modules/:moduleId/contents/:contentId", h.Contents.Get)
		authed.GET("/modules/:moduleId/quizzes", h.Quizzes.List)
		authed.GET("/modules/:moduleId/quizzes/:quizId", h.Quizzes.Get)
	}

	// カタログの更新は ADMIN_KEY_ID の keyid を持つトークンに限る
	admin := v1.Group("/modules", jwtmw.AuthRequired(opts.Verifier, opts.AdminKeyID))
	{
		admin.POST("", h.Modules.Create)
		admin.PUT("/:moduleId", h.Modules.Update)
		admin.DELETE("/:moduleId", h.Modules.Delete)

		admin.POST("/:moduleId/contents", h.Contents.Create)
		admin.PUT("/:moduleId/contents/:contentId", h.Contents.Update)
		admin.DELETE("/:moduleId/contents/:contentId", h.Contents.Delete)

		admin.POST("/:moduleId/quizzes", h.Quizzes.Create)
		admin.PUT("/:moduleId/quizzes/:quizId", h.Quizzes.Update)
		admin.DELETE("/:moduleId/quizzes/:quizId", h.Quizzes.Delete)
	}

	return r
}

// corsConfig allows every origin when origins is empty.
func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	cfg.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodHead, http.MethodOptions}
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization")
	cfg.ExposeHeaders = []string{middleware.HeaderRequestID}
	cfg.MaxAge = 12 * time.Hour
	return cfg
}
