package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"learning_backend/internal/feature/modules/domain/entity"
	"learning_backend/internal/feature/modules/usecase"
	"learning_backend/internal/shared/apperror"
)

type modulePostgres struct {
	db *gorm.DB
}

var _ usecase.ModuleRepository = (*modulePostgres)(nil)

// NewModulePostgres creates a module store over db.
func NewModulePostgres(db *gorm.DB) *modulePostgres {
	return &modulePostgres{db: db}
}

func (r *modulePostgres) List(ctx context.Context) ([]entity.Module, error) {
	var rows []ModuleModel
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, apperror.Store(err)
	}
	out := make([]entity.Module, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].toEntity())
	}
	return out, nil
}

// FindByID returns usecase.ErrModuleNotFound when no module has id.
// A module without contents has an empty, non-nil Contents slice.
func (r *modulePostgres) FindByID(ctx context.Context, id uint) (*entity.Module, error) {
	var m ModuleModel
	err := r.db.WithContext(ctx).
		Preload("Contents", func(db *gorm.DB) *gorm.DB { return db.Order("sequence, id") }).
		First(&m, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrModuleNotFound
		}
		return nil, apperror.Store(err)
	}
	if m.Contents == nil {
		m.Contents = []ContentModel{}
	}
	out := m.toEntity()
	return &out, nil
}

// Create inserts the module row and then its contents in one transaction.
func (r *modulePostgres) Create(ctx context.Context, m *entity.Module) error {
	if m == nil {
		return errors.New("nil module")
	}
	model := moduleToModel(m)
	contents := make([]ContentModel, 0, len(m.Contents))

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(&model).Error; err != nil {
			return err
		}
		for i := range m.Contents {
			c := contentToModel(&m.Contents[i])
			c.ModuleID = model.ID
			contents = append(contents, c)
		}
		if len(contents) == 0 {
			return nil
		}
		return tx.Create(&contents).Error
	})
	if err != nil {
		return apperror.Store(err)
	}

	m.ID = model.ID
	m.CreatedAt = model.CreatedAt
	m.UpdatedAt = model.UpdatedAt
	for i := range contents {
		m.Contents[i].ID = contents[i].ID
		m.Contents[i].ModuleID = model.ID
	}
	return nil
}

// Update sets cols on the module and stamps updated_at.
func (r *modulePostgres) Update(ctx context.Context, id uint, cols map[string]any) error {
	res := r.db.WithContext(ctx).Model(&ModuleModel{}).Where("id = ?", id).Updates(cols)
	if res.Error != nil {
		return apperror.Store(res.Error)
	}
	if res.RowsAffected == 0 {
		return usecase.ErrModuleNotFound
	}
	return nil
}

// Delete removes the module's contents and then the module. Either both go or neither does.
func (r *modulePostgres) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("module_id = ?", id).Delete(&ContentModel{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&ModuleModel{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return usecase.ErrModuleNotFound
		}
		return nil
	})
	switch {
	case err == nil:
		return nil
	case errors.Is(err, usecase.ErrModuleNotFound):
		return usecase.ErrModuleNotFound
	default:
		// begin と commit の失敗もここに来る
		return apperror.Store(err)
	}
}
