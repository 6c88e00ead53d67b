package dto

import (
	"time"

	"learning_backend/internal/feature/modules/domain/entity"
)

// Module renders a module without its contents.
type Module struct {
	ModuleID        uint      `json:"moduleId"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	DifficultyLevel string    `json:"difficultyLevel"`
	Duration        int       `json:"duration"`
	Prerequisites   string    `json:"prerequisites"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ModuleDetail is a module together with its ordered contents.
type ModuleDetail struct {
	Module
	Contents []Content `json:"contents"`
}

// Content renders one content item.
type Content struct {
	ContentID   uint   `json:"contentId"`
	ModuleID    uint   `json:"moduleId"`
	ContentType string `json:"contentType"`
	Content     string `json:"content"`
	Sequence    int    `json:"sequence"`
}

// ModuleListResponse is returned by GET /modules.
type ModuleListResponse struct {
	Success bool     `json:"success"`
	Modules []Module `json:"modules"`
}

// ModuleResponse is returned by GET /modules/:moduleId.
type ModuleResponse struct {
	Success bool         `json:"success"`
	Module  ModuleDetail `json:"module"`
}

// ContentListResponse is returned by GET /modules/:moduleId/contents.
type ContentListResponse struct {
	Success  bool      `json:"success"`
	Contents []Content `json:"contents"`
}

// ContentResponse is returned by GET /modules/:moduleId/contents/:contentId.
type ContentResponse struct {
	Success bool    `json:"success"`
	Content Content `json:"content"`
}

// FromModule converts a domain module, dropping contents.
func FromModule(m entity.Module) Module {
	return Module{
		ModuleID:        m.ID,
		Title:           m.Title,
		Description:     m.Description,
		DifficultyLevel: m.DifficultyLevel,
		Duration:        m.Duration,
		Prerequisites:   m.Prerequisites,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// FromModuleDetail converts a domain module with its contents.
func FromModuleDetail(m entity.Module) ModuleDetail {
	return ModuleDetail{Module: FromModule(m), Contents: FromContents(m.Contents)}
}

// FromContent converts a domain content item.
func FromContent(c entity.Content) Content {
	return Content{
		ContentID:   c.ID,
		ModuleID:    c.ModuleID,
		ContentType: c.ContentType,
		Content:     c.Content,
		Sequence:    c.Sequence,
	}
}

// FromContents converts a slice; the result is never nil.
func FromContents(cs []entity.Content) []Content {
	out := make([]Content, 0, len(cs))
	for _, c := range cs {
		out = append(out, FromContent(c))
	}
	return out
}
