package dto

import "learning_backend/internal/feature/modules/domain/entity"

// CreateContentReq is the body of POST /modules/:moduleId/contents.
type CreateContentReq struct {
	ContentType string `json:"contentType" binding:"required"`
	Content     string `json:"content" binding:"required"`
	Sequence    *int   `json:"sequence" binding:"required"`
}

// Entity builds the content to create under moduleID.
func (r CreateContentReq) Entity(moduleID uint) *entity.Content {
	return &entity.Content{
		ModuleID:    moduleID,
		ContentType: r.ContentType,
		Content:     r.Content,
		Sequence:    *r.Sequence,
	}
}

// UpdateContentReq is the body of PUT /modules/:moduleId/contents/:contentId.
type UpdateContentReq struct {
	ContentType *string `json:"contentType"`
	Content     *string `json:"content"`
	Sequence    *int    `json:"sequence"`
}

// Update converts the request into a domain update.
func (r UpdateContentReq) Update() entity.ContentUpdate {
	return entity.ContentUpdate{
		ContentType: r.ContentType,
		Content:     r.Content,
		Sequence:    r.Sequence,
	}
}
