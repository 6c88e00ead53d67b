// Package dto holds the request and response bodies of the module and content routes.
package dto

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/gin-gonic/gin/binding"

	"learning_backend/internal/feature/modules/domain/entity"
)

var (
	// ErrContentsNotArray is returned when contents is present but not a JSON array.
	ErrContentsNotArray = errors.New("contents must be an array")
)

// CreateModuleReq is the body of POST /modules.
// Contents stays raw so that a non-array value can be told apart from a bad module.
type CreateModuleReq struct {
	Title           string          `json:"title" binding:"required"`
	Description     string          `json:"description" binding:"required"`
	DifficultyLevel string          `json:"difficultyLevel" binding:"required"`
	Duration        *int            `json:"duration" binding:"omitempty,min=0"`
	Prerequisites   string          `json:"prerequisites"`
	Contents        json.RawMessage `json:"contents"`
}

// ContentItem is one element of CreateModuleReq.Contents.
type ContentItem struct {
	ContentType string `json:"contentType" binding:"required"`
	Content     string `json:"content" binding:"required"`
	Sequence    *int   `json:"sequence" binding:"required"`
}

// Items decodes and validates Contents. A missing or null value yields no items.
// It returns ErrContentsNotArray or the validation error of the first bad item.
func (r CreateModuleReq) Items() ([]ContentItem, error) {
	raw := bytes.TrimSpace(r.Contents)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}
	if raw[0] != '[' {
		return nil, ErrContentsNotArray
	}
	var items []ContentItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	for i := range items {
		if err := binding.Validator.ValidateStruct(&items[i]); err != nil {
			return nil, err
		}
	}
	return items, nil
}

// Entity builds the module to create from the request and its decoded items.
func (r CreateModuleReq) Entity(items []ContentItem) *entity.Module {
	m := &entity.Module{
		Title:           r.Title,
		Description:     r.Description,
		DifficultyLevel: r.DifficultyLevel,
		Prerequisites:   r.Prerequisites,
	}
	if r.Duration != nil {
		m.Duration = *r.Duration
	}
	for _, it := range items {
		m.Contents = append(m.Contents, entity.Content{
			ContentType: it.ContentType,
			Content:     it.Content,
			Sequence:    *it.Sequence,
		})
	}
	return m
}

// Strings lists every free-text field, contents included, for the input guard.
func (r CreateModuleReq) Strings(items []ContentItem) []string {
	out := []string{r.Title, r.Description, r.DifficultyLevel, r.Prerequisites}
	for _, it := range items {
		out = append(out, it.ContentType, it.Content)
	}
	return out
}

// UpdateModuleReq is the body of PUT /modules/:moduleId. Absent fields are left unchanged.
type UpdateModuleReq struct {
	Title           *string `json:"title"`
	Description     *string `json:"description"`
	DifficultyLevel *string `json:"difficultyLevel"`
	Duration        *int    `json:"duration" binding:"omitempty,min=0"`
	Prerequisites   *string `json:"prerequisites"`
}

// Update converts the request into a domain update.
func (r UpdateModuleReq) Update() entity.ModuleUpdate {
	return entity.ModuleUpdate{
		Title:           r.Title,
		Description:     r.Description,
		DifficultyLevel: r.DifficultyLevel,
		Duration:        r.Duration,
		Prerequisites:   r.Prerequisites,
	}
}
