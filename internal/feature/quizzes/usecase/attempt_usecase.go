package usecase

import (
	"context"

	"learning_backend/internal/feature/quizzes/domain/entity"
)

// attemptUsecase reserves the attempt operations. Both answer ErrAttemptsNotImplemented.
type attemptUsecase struct{}

// NewAttemptUsecase creates an attemptUsecase.
func NewAttemptUsecase() *attemptUsecase {
	return &attemptUsecase{}
}

// RecordAttempt will store a scored attempt of userID at quizID.
func (u *attemptUsecase) RecordAttempt(ctx context.Context, userID, quizID uint, score int) (*entity.Attempt, error) {
	return nil, ErrAttemptsNotImplemented
}

// ListAttempts will return userID's attempts at quizID.
func (u *attemptUsecase) ListAttempts(ctx context.Context, userID, quizID uint) ([]entity.Attempt, error) {
	return nil, ErrAttemptsNotImplemented
}
