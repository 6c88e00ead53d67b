// Package dto holds the request and response bodies of the quiz routes.
package dto

import (
	"time"

	"learning_backend/internal/feature/quizzes/domain/entity"
)

// CreateQuizReq is the body of POST /modules/:moduleId/quizzes.
type CreateQuizReq struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// UpdateQuizReq is the body of PUT /modules/:moduleId/quizzes/:quizId.
type UpdateQuizReq struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// AttemptReq is the body of POST /users/:userId/quizzes/:quizId/attempts.
type AttemptReq struct {
	Score *int `json:"score" binding:"required,min=0"`
}

// Quiz renders a quiz.
type Quiz struct {
	QuizID      uint       `json:"quizId"`
	ModuleID    uint       `json:"moduleId"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	CreatedDate time.Time  `json:"createdDate"`
	UpdatedAt   *time.Time `json:"updatedAt"`
}

// Attempt renders a quiz attempt.
type Attempt struct {
	AttemptID   uint      `json:"attemptId"`
	UserID      uint      `json:"userId"`
	QuizID      uint      `json:"quizId"`
	Score       int       `json:"score"`
	AttemptedAt time.Time `json:"attemptedAt"`
}

// QuizListResponse is returned by GET /modules/:moduleId/quizzes.
type QuizListResponse struct {
	Success bool   `json:"success"`
	Quizzes []Quiz `json:"quizzes"`
}

// QuizResponse is returned by GET /modules/:moduleId/quizzes/:quizId.
type QuizResponse struct {
	Success bool `json:"success"`
	Quiz    Quiz `json:"quiz"`
}

// AttemptResponse is returned once an attempt is recorded.
type AttemptResponse struct {
	Success bool    `json:"success"`
	Attempt Attempt `json:"attempt"`
}

// AttemptListResponse lists a learner's attempts at one quiz.
type AttemptListResponse struct {
	Success  bool      `json:"success"`
	Attempts []Attempt `json:"attempts"`
}

// FromQuiz converts a domain quiz.
func FromQuiz(q entity.Quiz) Quiz {
	return Quiz{
		QuizID:      q.ID,
		ModuleID:    q.ModuleID,
		Title:       q.Title,
		Description: q.Description,
		CreatedDate: q.CreatedDate,
		UpdatedAt:   q.UpdatedAt,
	}
}

// FromAttempt converts a domain attempt.
func FromAttempt(a entity.Attempt) Attempt {
	return Attempt{
		AttemptID:   a.ID,
		UserID:      a.UserID,
		QuizID:      a.QuizID,
		Score:       a.Score,
		AttemptedAt: a.AttemptedAt,
	}
}
