// Package entity holds the progress feature's domain types.
package entity

import "time"

// Progress is one learner's position in one module.
type Progress struct {
	ID               uint       `db:"id"`
	UserID           uint       `db:"user_id"`
	ModuleID         uint       `db:"module_id"`
	CurrentContentID uint       `db:"current_content_id"`
	IsCompleted      bool       `db:"is_completed"`
	StartedAt        time.Time  `db:"started_at"`
	CompletedAt      *time.Time `db:"completed_at"`
}

// Summary aggregates a learner's progress across modules.
type Summary struct {
	TotalModules        int64
	CompletedModules    int64
	PercentageCompleted float64
}

// NewSummary derives the completion percentage. A learner with no modules is at 0%.
func NewSummary(total, completed int64) Summary {
	s := Summary{TotalModules: total, CompletedModules: completed}
	if total > 0 {
		s.PercentageCompleted = float64(completed) / float64(total) * 100
	}
	return s
}
