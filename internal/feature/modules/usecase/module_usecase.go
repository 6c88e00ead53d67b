package usecase

import (
	"context"

	"learning_backend/internal/feature/modules/domain/entity"
)

// ModuleRepository abstracts module storage.
// Interfaces are declared by the consumer (usecase), not the provider (adapters).
type ModuleRepository interface {
	List(ctx context.Context) ([]entity.Module, error)

	// FindByID loads the module with its contents ordered by sequence.
	FindByID(ctx context.Context, id uint) (*entity.Module, error)

	// Create inserts the module and its contents atomically, setting their IDs.
	Create(ctx context.Context, m *entity.Module) error

	Update(ctx context.Context, id uint, cols map[string]any) error

	// Delete removes the module's contents and then the module, atomically.
	Delete(ctx context.Context, id uint) error
}

type moduleUsecase struct {
	repo ModuleRepository
}

// NewModuleUsecase creates a moduleUsecase.
func NewModuleUsecase(repo ModuleRepository) *moduleUsecase {
	return &moduleUsecase{repo: repo}
}

// ListModules returns every module without contents.
func (u *moduleUsecase) ListModules(ctx context.Context) ([]entity.Module, error) {
	return u.repo.List(ctx)
}

// GetModule returns ErrModuleNotFound when the module does not exist.
func (u *moduleUsecase) GetModule(ctx context.Context, id uint) (*entity.Module, error) {
	return u.repo.FindByID(ctx, id)
}

// CreateModule stores m together with m.Contents.
func (u *moduleUsecase) CreateModule(ctx context.Context, m *entity.Module) error {
	return u.repo.Create(ctx, m)
}

// UpdateModule applies the set fields of upd.
func (u *moduleUsecase) UpdateModule(ctx context.Context, id uint, upd entity.ModuleUpdate) error {
	cols := upd.Columns()
	if len(cols) == 0 {
		return ErrNoUpdateFields
	}
	return u.repo.Update(ctx, id, cols)
}

// DeleteModule removes the module and all of its contents.
func (u *moduleUsecase) DeleteModule(ctx context.Context, id uint) error {
	return u.repo.Delete(ctx, id)
}
