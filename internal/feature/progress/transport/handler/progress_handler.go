// Package handler provides the HTTP handlers for learner progress.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"learning_backend/internal/api"
	"learning_backend/internal/feature/progress/domain/entity"
	"learning_backend/internal/feature/progress/transport/http/dto"
	"learning_backend/internal/feature/progress/usecase"
	jwtmw "learning_backend/internal/platform/jwt"
	"learning_backend/internal/shared/apperror"
)

// ErrInvalidModuleID is returned when the path moduleId is not a positive integer.
var ErrInvalidModuleID = apperror.New(apperror.KindValidation, "INVALID_MODULE_ID", "Invalid Module ID")

// ProgressUsecase is the progress business logic used by the handler.
type ProgressUsecase interface {
	UpdateProgress(ctx context.Context, userID, moduleID, currentContentID uint, isCompleted *bool) error
	GetUserProgress(ctx context.Context, userID uint) ([]entity.Progress, error)
	GetUserProgressByModule(ctx context.Context, userID, moduleID uint) (*entity.Progress, error)
	GetUserProgressSummary(ctx context.Context, userID uint) (*entity.Summary, error)
}

// ProgressHandler serves /users/:userId/progress routes. It must run behind jwtmw.AuthRequired.
type ProgressHandler struct {
	progress ProgressUsecase
}

// NewProgressHandler creates a ProgressHandler.
func NewProgressHandler(progress ProgressUsecase) *ProgressHandler {
	return &ProgressHandler{progress: progress}
}

// List handles GET /users/:userId/progress.
func (h *ProgressHandler) List(c *gin.Context) {
	userID, ok := h.authorizeUser(c)
	if !ok {
		return
	}

	rows, err := h.progress.GetUserProgress(c.Request.Context(), userID)
	if err != nil {
		slog.Warn("get user progress failed", "error", err, "user_id", userID)
		api.WriteError(c, err)
		return
	}

	out := make([]dto.Progress, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.FromEntity(r))
	}
	c.JSON(http.StatusOK, dto.ProgressListResponse{Success: true, UserProgress: out})
}

// GetByModule handles GET /users/:userId/progress/:moduleId.
// A module the learner has not started yields userProgress: null rather than 404.
func (h *ProgressHandler) GetByModule(c *gin.Context) {
	userID, ok := h.authorizeUser(c)
	if !ok {
		return
	}
	moduleID, err := api.PathID(c, "moduleId", ErrInvalidModuleID)
	if err != nil {
		api.WriteError(c, err)
		return
	}

	p, err := h.progress.GetUserProgressByModule(c.Request.Context(), userID, moduleID)
	switch {
	case errors.Is(err, usecase.ErrProgressNotFound):
		c.JSON(http.StatusOK, dto.ProgressResponse{Success: true})
		return
	case err != nil:
		slog.Warn("get user progress by module failed", "error", err, "user_id", userID, "module_id", moduleID)
		api.WriteError(c, err)
		return
	}

	out := dto.FromEntity(*p)
	c.JSON(http.StatusOK, dto.ProgressResponse{Success: true, UserProgress: &out})
}

// Update handles POST /users/:userId/progress/:moduleId.
func (h *ProgressHandler) Update(c *gin.Context) {
	userID, ok := h.authorizeUser(c)
	if !ok {
		return
	}
	moduleID, err := api.PathID(c, "moduleId", ErrInvalidModuleID)
	if err != nil {
		api.WriteError(c, err)
		return
	}

	var req dto.UpdateProgressReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("update progress validation failed", "error", err, "user_id", userID)
		api.WriteError(c, api.ErrInvalidRequest.Wrap(err))
		return
	}

	if err := h.progress.UpdateProgress(c.Request.Context(), userID, moduleID, req.CurrentContentID, req.Bool()); err != nil {
		slog.Warn("update progress failed", "error", err, "user_id", userID, "module_id", moduleID)
		api.WriteError(c, err)
		return
	}

	slog.Info("user progress updated", "user_id", userID, "module_id", moduleID)
	c.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: "User progress updated successfully"})
}

// Summary handles GET /users/:userId/progress/summary.
func (h *ProgressHandler) Summary(c *gin.Context) {
	userID, ok := h.authorizeUser(c)
	if !ok {
		return
	}

	s, err := h.progress.GetUserProgressSummary(c.Request.Context(), userID)
	if err != nil {
		slog.Warn("get progress summary failed", "error", err, "user_id", userID)
		api.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SummaryResponse{
		Success: true,
		ProgressSummary: dto.Summary{
			TotalModules:        s.TotalModules,
			CompletedModules:    s.CompletedModules,
			PercentageCompleted: s.PercentageCompleted,
		},
	})
}

// authorizeUser writes the error response and returns false when the path userId is not the caller's.
func (h *ProgressHandler) authorizeUser(c *gin.Context) (uint, bool) {
	userID, err := jwtmw.PathUser(c, "userId")
	if err != nil {
		api.WriteError(c, err)
		return 0, false
	}
	return userID, true
}
