package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"learning_backend/internal/feature/modules/domain/entity"
	"learning_backend/internal/feature/modules/usecase"
	"learning_backend/internal/shared/apperror"
)

type contentPostgres struct {
	db *gorm.DB
}

var _ usecase.ContentRepository = (*contentPostgres)(nil)

// NewContentPostgres creates a module content store over db.
func NewContentPostgres(db *gorm.DB) *contentPostgres {
	return &contentPostgres{db: db}
}

func (r *contentPostgres) ListByModule(ctx context.Context, moduleID uint) ([]entity.Content, error) {
	var rows []ContentModel
	err := r.db.WithContext(ctx).
		Where("module_id = ?", moduleID).
		Order("sequence, id").
		Find(&rows).Error
	if err != nil {
		return nil, apperror.Store(err)
	}
	out := make([]entity.Content, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].toEntity())
	}
	return out, nil
}

func (r *contentPostgres) FindByID(ctx context.Context, moduleID, contentID uint) (*entity.Content, error) {
	var m ContentModel
	err := r.db.WithContext(ctx).
		Where("module_id = ? AND id = ?", moduleID, contentID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrContentNotFound
		}
		return nil, apperror.Store(err)
	}
	out := m.toEntity()
	return &out, nil
}

// Create inserts c. A foreign key violation means the module is gone.
func (r *contentPostgres) Create(ctx context.Context, c *entity.Content) error {
	if c == nil {
		return errors.New("nil content")
	}
	m := contentToModel(c)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return usecase.ErrModuleNotFound
		}
		return apperror.Store(err)
	}
	c.ID = m.ID
	return nil
}

func (r *contentPostgres) Update(ctx context.Context, moduleID, contentID uint, cols map[string]any) error {
	res := r.db.WithContext(ctx).
		Model(&ContentModel{}).
		Where("module_id = ? AND id = ?", moduleID, contentID).
		Updates(cols)
	if res.Error != nil {
		return apperror.Store(res.Error)
	}
	if res.RowsAffected == 0 {
		return usecase.ErrContentNotFound
	}
	return nil
}

func (r *contentPostgres) Delete(ctx context.Context, moduleID, contentID uint) error {
	res := r.db.WithContext(ctx).
		Where("module_id = ? AND id = ?", moduleID, contentID).
		Delete(&ContentModel{})
	if res.Error != nil {
		return apperror.Store(res.Error)
	}
	if res.RowsAffected == 0 {
		return usecase.ErrContentNotFound
	}
	return nil
}
