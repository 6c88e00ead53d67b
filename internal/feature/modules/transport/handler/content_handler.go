package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"learning_backend/internal/api"
	"learning_backend/internal/feature/modules/domain/entity"
	"learning_backend/internal/feature/modules/transport/http/dto"
	"learning_backend/internal/shared/apperror"
	"learning_backend/internal/shared/inputguard"
)

var (
	// ErrInvalidContentID is returned when the path contentId is not a positive integer.
	ErrInvalidContentID = apperror.New(apperror.KindValidation, "INVALID_CONTENT_ID", "Invalid Content ID")

	// ErrNoContentData is returned when a content body is missing a required field.
	ErrNoContentData = apperror.New(apperror.KindValidation, "NO_CONTENT_DATA", "No content data provided.")
)

// ContentUsecase is the content business logic used by the handler.
type ContentUsecase interface {
	ListContents(ctx context.Context, moduleID uint) ([]entity.Content, error)
	GetContent(ctx context.Context, moduleID, contentID uint) (*entity.Content, error)
	CreateContent(ctx context.Context, c *entity.Content) error
	UpdateContent(ctx context.Context, moduleID, contentID uint, upd entity.ContentUpdate) error
	DeleteContent(ctx context.Context, moduleID, contentID uint) error
}

// ContentHandler serves /modules/:moduleId/contents routes.
type ContentHandler struct {
	contents ContentUsecase
}

// NewContentHandler creates a ContentHandler.
func NewContentHandler(contents ContentUsecase) *ContentHandler {
	return &ContentHandler{contents: contents}
}

// List handles GET /modules/:moduleId/contents.
func (h *ContentHandler) List(c *gin.Context) {
	moduleID, err := api.PathID(c, "moduleId", ErrInvalidModuleID)
	if err != nil {
		api.WriteError(c, err)
		return
	}

	cs, err := h.contents.ListContents(c.Request.Context(), moduleID)
	if err != nil {
		slog.Warn("list contents failed", "error", err, "module_id", moduleID)
		api.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ContentListResponse{Success: true, Contents: dto.FromContents(cs)})
}

// Get handles GET /modules/:moduleId/contents/:contentId.
func (h *ContentHandler) Get(c *gin.Context) {
	moduleID, contentID, ok := contentPath(c)
	if !ok {
		return
	}

	ct, err := h.contents.GetContent(c.Request.Context(), moduleID, contentID)
	if err != nil {
		slog.Warn("get content failed", "error", err, "module_id", moduleID, "content_id", contentID)
		api.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ContentResponse{Success: true, Content: dto.FromContent(*ct)})
}

// Create handles POST /modules/:moduleId/contents. The module must exist.
func (h *ContentHandler) Create(c *gin.Context) {
	moduleID, err := api.PathID(c, "moduleId", ErrInvalidModuleID)
	if err != nil {
		api.WriteError(c, err)
		return
	}

	var req dto.CreateContentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("create content validation failed", "error", err, "module_id", moduleID)
		api.WriteError(c, ErrNoContentData.Wrap(err))
		return
	}
	if err := inputguard.Check(req.ContentType, req.Content); err != nil {
		slog.Warn("create content rejected by input guard", "remote_addr", c.ClientIP())
		api.WriteError(c, err)
		return
	}

	ct := req.Entity(moduleID)
	if err := h.contents.CreateContent(c.Request.Context(), ct); err != nil {
		slog.Warn("create content failed", "error", err, "module_id", moduleID)
		api.WriteError(c, err)
		return
	}

	slog.Info("module content created", "module_id", moduleID, "content_id", ct.ID)
	c.JSON(http.StatusOK, api.SuccessResponse{Success: "Module content created successfully!"})
}

// Update handles PUT /modules/:moduleId/contents/:contentId.
func (h *ContentHandler) Update(c *gin.Context) {
	moduleID, contentID, ok := contentPath(c)
	if !ok {
		return
	}

	var req dto.UpdateContentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("update content validation failed", "error", err, "content_id", contentID)
		api.WriteError(c, ErrNoContentData.Wrap(err))
		return
	}
	if err := inputguard.CheckOptional(req.ContentType, req.Content); err != nil {
		slog.Warn("update content rejected by input guard", "remote_addr", c.ClientIP())
		api.WriteError(c, err)
		return
	}

	if err := h.contents.UpdateContent(c.Request.Context(), moduleID, contentID, req.Update()); err != nil {
		slog.Warn("update content failed", "error", err, "module_id", moduleID, "content_id", contentID)
		api.WriteError(c, err)
		return
	}

	slog.Info("module content updated", "module_id", moduleID, "content_id", contentID)
	c.JSON(http.StatusOK, api.SuccessResponse{Success: "Module content updated successfully!"})
}

// Delete handles DELETE /modules/:moduleId/contents/:contentId.
func (h *ContentHandler) Delete(c *gin.Context) {
	moduleID, contentID, ok := contentPath(c)
	if !ok {
		return
	}

	if err := h.contents.DeleteContent(c.Request.Context(), moduleID, contentID); err != nil {
		slog.Warn("delete content failed", "error", err, "module_id", moduleID, "content_id", contentID)
		api.WriteError(c, err)
		return
	}

	slog.Info("module content deleted", "module_id", moduleID, "content_id", contentID)
	c.JSON(http.StatusOK, api.SuccessResponse{Success: "Content deleted successfully!"})
}

func contentPath(c *gin.Context) (uint, uint, bool) {
	moduleID, err := api.PathID(c, "moduleId", ErrInvalidModuleID)
	if err != nil {
		api.WriteError(c, err)
		return 0, 0, false
	}
	contentID, err := api.PathID(c, "contentId", ErrInvalidContentID)
	if err != nil {
		api.WriteError(c, err)
		return 0, 0, false
	}
	return moduleID, contentID, true
}
