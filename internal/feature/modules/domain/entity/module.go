// Package entity holds the course catalogue types: modules and their ordered contents.
package entity

import "time"

// Module is a unit of the course catalogue.
type Module struct {
	ID              uint
	Title           string
	Description     string
	DifficultyLevel string
	Duration        int
	Prerequisites   string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	Contents        []Content
}

// Content is one lesson item of a module. Sequence orders contents within the module.
type Content struct {
	ID          uint
	ModuleID    uint
	ContentType string
	Content     string
	Sequence    int
}

// ModuleUpdate lists the module fields a partial update may change. Nil means unchanged.
type ModuleUpdate struct {
	Title           *string
	Description     *string
	DifficultyLevel *string
	Duration        *int
	Prerequisites   *string
}

// Columns returns the set fields keyed by column name.
func (u ModuleUpdate) Columns() map[string]any {
	cols := map[string]any{}
	if u.Title != nil {
		cols["title"] = *u.Title
	}
	if u.Description != nil {
		cols["description"] = *u.Description
	}
	if u.DifficultyLevel != nil {
		cols["difficulty_level"] = *u.DifficultyLevel
	}
	if u.Duration != nil {
		cols["duration"] = *u.Duration
	}
	if u.Prerequisites != nil {
		cols["prerequisites"] = *u.Prerequisites
	}
	return cols
}

// ContentUpdate lists the content fields a partial update may change.
type ContentUpdate struct {
	ContentType *string
	Content     *string
	Sequence    *int
}

// Columns returns the set fields keyed by column name.
func (u ContentUpdate) Columns() map[string]any {
	cols := map[string]any{}
	if u.ContentType != nil {
		cols["content_type"] = *u.ContentType
	}
	if u.Content != nil {
		cols["content"] = *u.Content
	}
	if u.Sequence != nil {
		cols["sequence"] = *u.Sequence
	}
	return cols
}
