// Package handler provides the HTTP handlers for modules and their contents.
package handler

import (
	"context"
	"errors"
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
	// ErrInvalidModuleID is returned when the path moduleId is not a positive integer.
	ErrInvalidModuleID = apperror.New(apperror.KindValidation, "INVALID_MODULE_ID", "Invalid Module ID")

	// ErrInvalidModuleData is returned when a required module field is missing or mistyped.
	ErrInvalidModuleData = apperror.New(apperror.KindValidation, "INVALID_MODULE_DATA", "Invalid module data")

	// ErrInvalidContentsFormat is returned when contents is not an array.
	ErrInvalidContentsFormat = apperror.New(apperror.KindValidation, "INVALID_CONTENTS_FORMAT", "Invalid contents format")

	// ErrInvalidContentItem is returned when an element of contents lacks a field.
	ErrInvalidContentItem = apperror.New(apperror.KindValidation, "INVALID_CONTENT_ITEM", "Invalid content item")
)

// ModuleUsecase is the module business logic used by the handler.
type ModuleUsecase interface {
	ListModules(ctx context.Context) ([]entity.Module, error)
	GetModule(ctx context.Context, id uint) (*entity.Module, error)
	CreateModule(ctx context.Context, m *entity.Module) error
	UpdateModule(ctx context.Context, id uint, upd entity.ModuleUpdate) error
	DeleteModule(ctx context.Context, id uint) error
}

// ModuleHandler serves /modules routes.
type ModuleHandler struct {
	modules ModuleUsecase
}

// NewModuleHandler creates a ModuleHandler.
func NewModuleHandler(modules ModuleUsecase) *ModuleHandler {
	return &ModuleHandler{modules: modules}
}

// List handles GET /modules.
func (h *ModuleHandler) List(c *gin.Context) {
	mods, err := h.modules.ListModules(c.Request.Context())
	if err != nil {
		slog.Warn("list modules failed", "error", err, "remote_addr", c.ClientIP())
		api.WriteError(c, err)
		return
	}

	out := make([]dto.Module, 0, len(mods))
	for _, m := range mods {
		out = append(out, dto.FromModule(m))
	}
	c.JSON(http.StatusOK, dto.ModuleListResponse{Success: true, Modules: out})
}

// Get handles GET /modules/:moduleId.
func (h *ModuleHandler) Get(c *gin.Context) {
	id, err := api.PathID(c, "moduleId", ErrInvalidModuleID)
	if err != nil {
		api.WriteError(c, err)
		return
	}

	m, err := h.modules.GetModule(c.Request.Context(), id)
	if err != nil {
		slog.Warn("get module failed", "error", err, "module_id", id, "remote_addr", c.ClientIP())
		api.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ModuleResponse{Success: true, Module: dto.FromModuleDetail(*m)})
}

// Create handles POST /modules.
//   - 400 "Invalid module data" when title, description or difficultyLevel is missing
//   - 400 "Invalid contents format" when contents is not an array
//   - 400 "Invalid content item" when an item lacks contentType, content or sequence
func (h *ModuleHandler) Create(c *gin.Context) {
	var req dto.CreateModuleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("create module validation failed", "error", err, "remote_addr", c.ClientIP())
		api.WriteError(c, ErrInvalidModuleData.Wrap(err))
		return
	}
	items, err := req.Items()
	if err != nil {
		slog.Warn("create module contents rejected", "error", err, "remote_addr", c.ClientIP())
		if errors.Is(err, dto.ErrContentsNotArray) {
			api.WriteError(c, ErrInvalidContentsFormat.Wrap(err))
		} else {
			api.WriteError(c, ErrInvalidContentItem.Wrap(err))
		}
		return
	}
	if err := inputguard.Check(req.Strings(items)...); err != nil {
		slog.Warn("create module rejected by input guard", "remote_addr", c.ClientIP())
		api.WriteError(c, err)
		return
	}

	m := req.Entity(items)
	if err := h.modules.CreateModule(c.Request.Context(), m); err != nil {
		slog.Warn("create module failed", "error", err, "remote_addr", c.ClientIP())
		api.WriteError(c, err)
		return
	}

	slog.Info("module created", "module_id", m.ID, "contents", len(m.Contents))
	c.JSON(http.StatusOK, api.SuccessResponse{Success: "Module created successfully!"})
}

// Update handles PUT /modules/:moduleId.
func (h *ModuleHandler) Update(c *gin.Context) {
	id, err := api.PathID(c, "moduleId", ErrInvalidModuleID)
	if err != nil {
		api.WriteError(c, err)
		return
	}

	var req dto.UpdateModuleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("update module validation failed", "error", err, "module_id", id)
		api.WriteError(c, ErrInvalidModuleData.Wrap(err))
		return
	}
	if err := inputguard.CheckOptional(req.Title, req.Description, req.DifficultyLevel, req.Prerequisites); err != nil {
		slog.Warn("update module rejected by input guard", "remote_addr", c.ClientIP())
		api.WriteError(c, err)
		return
	}

	if err := h.modules.UpdateModule(c.Request.Context(), id, req.Update()); err != nil {
		slog.Warn("update module failed", "error", err, "module_id", id)
		api.WriteError(c, err)
		return
	}

	slog.Info("module updated", "module_id", id)
	c.JSON(http.StatusOK, api.SuccessResponse{Success: "Module updated successfully!"})
}

// Delete handles DELETE /modules/:moduleId. Contents go with the module.
func (h *ModuleHandler) Delete(c *gin.Context) {
	id, err := api.PathID(c, "moduleId", ErrInvalidModuleID)
	if err != nil {
		api.WriteError(c, err)
		return
	}

	if err := h.modules.DeleteModule(c.Request.Context(), id); err != nil {
		slog.Warn("delete module failed", "error", err, "module_id", id)
		api.WriteError(c, err)
		return
	}

	slog.Info("module deleted", "module_id", id)
	c.JSON(http.StatusOK, api.SuccessResponse{Success: "Module deleted successfully!"})
}
