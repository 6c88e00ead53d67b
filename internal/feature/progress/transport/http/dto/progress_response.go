// Package dto holds the request and response bodies of the progress routes.
package dto

import (
	"time"

	"learning_backend/internal/feature/progress/domain/entity"
)

// Progress renders a progress row. IsCompleted is 0 or 1.
type Progress struct {
	ProgressID       uint       `json:"progressId"`
	UserID           uint       `json:"userId"`
	ModuleID         uint       `json:"moduleId"`
	CurrentContentID uint       `json:"currentContentId"`
	IsCompleted      int        `json:"isCompleted"`
	StartedAt        time.Time  `json:"startedAt"`
	CompletedAt      *time.Time `json:"completedAt"`
}

// FromEntity converts a domain row.
func FromEntity(p entity.Progress) Progress {
	completed := 0
	if p.IsCompleted {
		completed = 1
	}
	return Progress{
		ProgressID:       p.ID,
		UserID:           p.UserID,
		ModuleID:         p.ModuleID,
		CurrentContentID: p.CurrentContentID,
		IsCompleted:      completed,
		StartedAt:        p.StartedAt,
		CompletedAt:      p.CompletedAt,
	}
}

// ProgressListResponse is returned by GET /users/:userId/progress.
type ProgressListResponse struct {
	Success      bool       `json:"success"`
	UserProgress []Progress `json:"userProgress"`
}

// ProgressResponse is returned by GET /users/:userId/progress/:moduleId.
// UserProgress is null when the learner has not started the module.
type ProgressResponse struct {
	Success      bool      `json:"success"`
	UserProgress *Progress `json:"userProgress"`
}

// Summary is the aggregate view of a learner's progress.
type Summary struct {
	TotalModules        int64   `json:"totalModules"`
	CompletedModules    int64   `json:"completedModules"`
	PercentageCompleted float64 `json:"percentageCompleted"`
}

// SummaryResponse is returned by GET /users/:userId/progress/summary.
type SummaryResponse struct {
	Success         bool    `json:"success"`
	ProgressSummary Summary `json:"progressSummary"`
}

// MessageResponse confirms a write.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
