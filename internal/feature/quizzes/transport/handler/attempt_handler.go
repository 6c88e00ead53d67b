package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"learning_backend/internal/api"
	"learning_backend/internal/feature/quizzes/domain/entity"
	"learning_backend/internal/feature/quizzes/transport/http/dto"
	jwtmw "learning_backend/internal/platform/jwt"
)

// AttemptUsecase is the quiz attempt business logic used by the handler.
type AttemptUsecase interface {
	RecordAttempt(ctx context.Context, userID, quizID uint, score int) (*entity.Attempt, error)
	ListAttempts(ctx context.Context, userID, quizID uint) ([]entity.Attempt, error)
}

// AttemptHandler serves /users/:userId/quizzes/:quizId/attempts. It must run behind jwtmw.AuthRequired.
type AttemptHandler struct {
	attempts AttemptUsecase
}

// NewAttemptHandler creates an AttemptHandler.
func NewAttemptHandler(attempts AttemptUsecase) *AttemptHandler {
	return &AttemptHandler{attempts: attempts}
}

// Record handles POST /users/:userId/quizzes/:quizId/attempts.
func (h *AttemptHandler) Record(c *gin.Context) {
	userID, quizID, ok := attemptPath(c)
	if !ok {
		return
	}

	var req dto.AttemptReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("record attempt validation failed", "error", err, "user_id", userID)
		api.WriteError(c, api.ErrInvalidRequest.Wrap(err))
		return
	}

	a, err := h.attempts.RecordAttempt(c.Request.Context(), userID, quizID, *req.Score)
	if err != nil {
		slog.Warn("record attempt failed", "error", err, "user_id", userID, "quiz_id", quizID)
		api.WriteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.AttemptResponse{Success: true, Attempt: dto.FromAttempt(*a)})
}

// List handles GET /users/:userId/quizzes/:quizId/attempts.
func (h *AttemptHandler) List(c *gin.Context) {
	userID, quizID, ok := attemptPath(c)
	if !ok {
		return
	}

	as, err := h.attempts.ListAttempts(c.Request.Context(), userID, quizID)
	if err != nil {
		slog.Warn("list attempts failed", "error", err, "user_id", userID, "quiz_id", quizID)
		api.WriteError(c, err)
		return
	}

	out := make([]dto.Attempt, 0, len(as))
	for _, a := range as {
		out = append(out, dto.FromAttempt(a))
	}
	c.JSON(http.StatusOK, dto.AttemptListResponse{Success: true, Attempts: out})
}

func attemptPath(c *gin.Context) (uint, uint, bool) {
	userID, err := jwtmw.PathUser(c, "userId")
	if err != nil {
		api.WriteError(c, err)
		return 0, 0, false
	}
	quizID, err := api.PathID(c, "quizId", ErrInvalidQuizID)
	if err != nil {
		api.WriteError(c, err)
		return 0, 0, false
	}
	return userID, quizID, true
}
