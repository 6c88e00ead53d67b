// Package entity holds the quiz types.
package entity

import "time"

// Quiz belongs to exactly one module.
type Quiz struct {
	ID          uint
	ModuleID    uint
	Title       string
	Description string
	CreatedDate time.Time
	UpdatedAt   *time.Time
}

// QuizUpdate lists the quiz fields a partial update may change. Nil means unchanged.
type QuizUpdate struct {
	Title       *string
	Description *string
}

// Columns returns the set fields keyed by column name.
func (u QuizUpdate) Columns() map[string]any {
	cols := map[string]any{}
	if u.Title != nil {
		cols["title"] = *u.Title
	}
	if u.Description != nil {
		cols["description"] = *u.Description
	}
	return cols
}

// Attempt is one learner's scored try at a quiz.
type Attempt struct {
	ID          uint
	UserID      uint
	QuizID      uint
	Score       int
	AttemptedAt time.Time
}
