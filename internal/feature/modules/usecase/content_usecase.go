package usecase

import (
	"context"

	"learning_backend/internal/feature/modules/domain/entity"
)

// ContentRepository abstracts module content storage.
type ContentRepository interface {
	ListByModule(ctx context.Context, moduleID uint) ([]entity.Content, error)
	FindByID(ctx context.Context, moduleID, contentID uint) (*entity.Content, error)
	Create(ctx context.Context, c *entity.Content) error
	Update(ctx context.Context, moduleID, contentID uint, cols map[string]any) error
	Delete(ctx context.Context, moduleID, contentID uint) error
}

type contentUsecase struct {
	modules  ModuleRepository
	contents ContentRepository
}

// NewContentUsecase creates a contentUsecase.
func NewContentUsecase(modules ModuleRepository, contents ContentRepository) *contentUsecase {
	return &contentUsecase{modules: modules, contents: contents}
}

// ListContents returns the module's contents ordered by sequence.
func (u *contentUsecase) ListContents(ctx context.Context, moduleID uint) ([]entity.Content, error) {
	return u.contents.ListByModule(ctx, moduleID)
}

// GetContent returns ErrContentNotFound when the module has no such content.
func (u *contentUsecase) GetContent(ctx context.Context, moduleID, contentID uint) (*entity.Content, error) {
	return u.contents.FindByID(ctx, moduleID, contentID)
}

// CreateContent appends c to an existing module.
func (u *contentUsecase) CreateContent(ctx context.Context, c *entity.Content) error {
	if _, err := u.modules.FindByID(ctx, c.ModuleID); err != nil {
		return err
	}
	return u.contents.Create(ctx, c)
}

// UpdateContent applies the set fields of upd.
func (u *contentUsecase) UpdateContent(ctx context.Context, moduleID, contentID uint, upd entity.ContentUpdate) error {
	cols := upd.Columns()
	if len(cols) == 0 {
		return ErrNoUpdateFields
	}
	return u.contents.Update(ctx, moduleID, contentID, cols)
}

// DeleteContent removes one content item.
func (u *contentUsecase) DeleteContent(ctx context.Context, moduleID, contentID uint) error {
	return u.contents.Delete(ctx, moduleID, contentID)
}
