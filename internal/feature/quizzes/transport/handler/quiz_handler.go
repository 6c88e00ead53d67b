// Package handler provides the HTTP handlers for quizzes and quiz attempts.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"learning_backend/internal/api"
	"learning_backend/internal/feature/quizzes/domain/entity"
	"learning_backend/internal/feature/quizzes/transport/http/dto"
	"learning_backend/internal/shared/apperror"
	"learning_backend/internal/shared/inputguard"
)

var (
	// ErrInvalidModuleID is returned when the path moduleId is not a positive integer.
	ErrInvalidModuleID = apperror.New(apperror.KindValidation, "INVALID_MODULE_ID", "Invalid Module ID")

	// ErrInvalidQuizID is returned when the path quizId is not a positive integer.
	ErrInvalidQuizID = apperror.New(apperror.KindValidation, "INVALID_QUIZ_ID", "Invalid Quiz ID")

	// ErrInvalidQuizData is returned when a quiz body cannot be bound.
	ErrInvalidQuizData = apperror.New(apperror.KindValidation, "INVALID_DATA", "Invalid data")
)

// QuizUsecase is the quiz business logic used by the handler.
type QuizUsecase interface {
	ListQuizzes(ctx context.Context, moduleID uint) ([]entity.Quiz, error)
	GetQuiz(ctx context.Context, moduleID, quizID uint) (*entity.Quiz, error)
	CreateQuiz(ctx context.Context, q *entity.Quiz) error
	UpdateQuiz(ctx context.Context, moduleID, quizID uint, upd entity.QuizUpdate) error
	DeleteQuiz(ctx context.Context, moduleID, quizID uint) error
}

// QuizHandler serves /modules/:moduleId/quizzes routes.
type QuizHandler struct {
	quizzes QuizUsecase
}

// NewQuizHandler creates a QuizHandler.
func NewQuizHandler(quizzes QuizUsecase) *QuizHandler {
	return &QuizHandler{quizzes: quizzes}
}

// List handles GET /modules/:moduleId/quizzes.
func (h *QuizHandler) List(c *gin.Context) {
	moduleID, err := api.PathID(c, "moduleId", ErrInvalidModuleID)
	if err != nil {
		api.WriteError(c, err)
		return
	}

	qs, err := h.quizzes.ListQuizzes(c.Request.Context(), moduleID)
	if err != nil {
		slog.Warn("list quizzes failed", "error", err, "module_id", moduleID)
		api.WriteError(c, err)
		return
	}

	out := make([]dto.Quiz, 0, len(qs))
	for _, q := range qs {
		out = append(out, dto.FromQuiz(q))
	}
	c.JSON(http.StatusOK, dto.QuizListResponse{Success: true, Quizzes: out})
}

// Get handles GET /modules/:moduleId/quizzes/:quizId.
func (h *QuizHandler) Get(c *gin.Context) {
	moduleID, quizID, ok := quizPath(c)
	if !ok {
		return
	}

	q, err := h.quizzes.GetQuiz(c.Request.Context(), moduleID, quizID)
	if err != nil {
		slog.Warn("get quiz failed", "error", err, "module_id", moduleID, "quiz_id", quizID)
		api.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.QuizResponse{Success: true, Quiz: dto.FromQuiz(*q)})
}

// Create handles POST /modules/:moduleId/quizzes.
func (h *QuizHandler) Create(c *gin.Context) {
	moduleID, err := api.PathID(c, "moduleId", ErrInvalidModuleID)
	if err != nil {
		api.WriteError(c, err)
		return
	}

	var req dto.CreateQuizReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("create quiz validation failed", "error", err, "module_id", moduleID)
		api.WriteError(c, ErrInvalidQuizData.Wrap(err))
		return
	}
	if err := inputguard.Check(req.Title, req.Description); err != nil {
		slog.Warn("create quiz rejected by input guard", "remote_addr", c.ClientIP())
		api.WriteError(c, err)
		return
	}

	q := &entity.Quiz{ModuleID: moduleID, Title: req.Title, Description: req.Description}
	if err := h.quizzes.CreateQuiz(c.Request.Context(), q); err != nil {
		slog.Warn("create quiz failed", "error", err, "module_id", moduleID)
		api.WriteError(c, err)
		return
	}

	slog.Info("quiz created", "module_id", moduleID, "quiz_id", q.ID)
	c.JSON(http.StatusOK, api.SuccessResponse{Success: "Quiz created successfully!"})
}

// Update handles PUT /modules/:moduleId/quizzes/:quizId.
func (h *QuizHandler) Update(c *gin.Context) {
	moduleID, quizID, ok := quizPath(c)
	if !ok {
		return
	}

	var req dto.UpdateQuizReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("update quiz validation failed", "error", err, "quiz_id", quizID)
		api.WriteError(c, ErrInvalidQuizData.Wrap(err))
		return
	}
	if err := inputguard.CheckOptional(req.Title, req.Description); err != nil {
		slog.Warn("update quiz rejected by input guard", "remote_addr", c.ClientIP())
		api.WriteError(c, err)
		return
	}

	upd := entity.QuizUpdate{Title: req.Title, Description: req.Description}
	if err := h.quizzes.UpdateQuiz(c.Request.Context(), moduleID, quizID, upd); err != nil {
		slog.Warn("update quiz failed", "error", err, "module_id", moduleID, "quiz_id", quizID)
		api.WriteError(c, err)
		return
	}

	slog.Info("quiz updated", "module_id", moduleID, "quiz_id", quizID)
	c.JSON(http.StatusOK, api.SuccessResponse{Success: "Quiz updated successfully!"})
}

// Delete handles DELETE /modules/:moduleId/quizzes/:quizId.
func (h *QuizHandler) Delete(c *gin.Context) {
	moduleID, quizID, ok := quizPath(c)
	if !ok {
		return
	}

	if err := h.quizzes.DeleteQuiz(c.Request.Context(), moduleID, quizID); err != nil {
		slog.Warn("delete quiz failed", "error", err, "module_id", moduleID, "quiz_id", quizID)
		api.WriteError(c, err)
		return
	}

	slog.Info("quiz deleted", "module_id", moduleID, "quiz_id", quizID)
	c.JSON(http.StatusOK, api.SuccessResponse{Success: "Quiz deleted successfully!"})
}

func quizPath(c *gin.Context) (uint, uint, bool) {
	moduleID, err := api.PathID(c, "moduleId", ErrInvalidModuleID)
	if err != nil {
		api.WriteError(c, err)
		return 0, 0, false
	}
	quizID, err := api.PathID(c, "quizId", ErrInvalidQuizID)
	if err != nil {
		api.WriteError(c, err)
		return 0, 0, false
	}
	return moduleID, quizID, true
}
