package di

import (
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"learning_backend/internal/app/router"
	"learning_backend/internal/config"
	authadapters "learning_backend/internal/feature/auth/adapters"
	authhandler "learning_backend/internal/feature/auth/transport/handler"
	authusecase "learning_backend/internal/feature/auth/usecase"
	moduleadapters "learning_backend/internal/feature/modules/adapters"
	modulehandler "learning_backend/internal/feature/modules/transport/handler"
	moduleusecase "learning_backend/internal/feature/modules/usecase"
	progresshandler "learning_backend/internal/feature/progress/transport/handler"
	progressusecase "learning_backend/internal/feature/progress/usecase"
	quizadapters "learning_backend/internal/feature/quizzes/adapters"
	quizhandler "learning_backend/internal/feature/quizzes/transport/handler"
	quizusecase "learning_backend/internal/feature/quizzes/usecase"
	platformhandler "learning_backend/internal/platform/http/handler"
	jwtmw "learning_backend/internal/platform/jwt"
)

// NewHandlers wires every store, usecase and handler. rdb may be nil.
func NewHandlers(cfg *config.Config, gdb *gorm.DB, sdb *sqlx.DB, rdb *redis.Client, startedAt time.Time) router.Handlers {
	// Repository
	userRepo := authadapters.NewUserPostgres(gdb)
	moduleRepo := moduleadapters.NewModulePostgres(gdb)
	contentRepo := moduleadapters.NewContentPostgres(gdb)
	quizRepo := quizadapters.NewQuizPostgres(gdb)
	progressRepo := NewProgressRepository(rdb, sdb, cfg.SummaryTTL)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, jwtmw.NewIssuer(cfg.JWTSecret))
	progressUC := progressusecase.NewProgressUsecase(progressRepo)
	moduleUC := moduleusecase.NewModuleUsecase(moduleRepo)
	contentUC := moduleusecase.NewContentUsecase(moduleRepo, contentRepo)
	quizUC := quizusecase.NewQuizUsecase(quizRepo)
	attemptUC := quizusecase.NewAttemptUsecase()

	// Handler
	return router.Handlers{
		Auth:     authhandler.NewAuthHandler(authUC, NewCaptchaVerifier(cfg.Captcha)),
		Progress: progresshandler.NewProgressHandler(progressUC),
		Modules:  modulehandler.NewModuleHandler(moduleUC),
		Contents: modulehandler.NewContentHandler(contentUC),
		Quizzes:  quizhandler.NewQuizHandler(quizUC),
		Attempts: quizhandler.NewAttemptHandler(attemptUC),
		Status:   platformhandler.NewStatusHandler(startedAt),
	}
}
