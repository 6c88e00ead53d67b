package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"learning_backend/internal/feature/quizzes/domain/entity"
	"learning_backend/internal/feature/quizzes/usecase"
	"learning_backend/internal/shared/apperror"
)

// modulesTable is owned by the modules feature; quizzes only check that a row exists.
const modulesTable = "modules"

type quizPostgres struct {
	db *gorm.DB
}

var _ usecase.QuizRepository = (*quizPostgres)(nil)

// NewQuizPostgres creates a quiz store over db.
func NewQuizPostgres(db *gorm.DB) *quizPostgres {
	return &quizPostgres{db: db}
}

func (r *quizPostgres) ListByModule(ctx context.Context, moduleID uint) ([]entity.Quiz, error) {
	var rows []QuizModel
	err := r.db.WithContext(ctx).
		Where("module_id = ?", moduleID).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, apperror.Store(err)
	}
	out := make([]entity.Quiz, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].toEntity())
	}
	return out, nil
}

func (r *quizPostgres) FindByID(ctx context.Context, moduleID, quizID uint) (*entity.Quiz, error) {
	var m QuizModel
	err := r.db.WithContext(ctx).
		Where("module_id = ? AND id = ?", moduleID, quizID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrQuizNotFound
		}
		return nil, apperror.Store(err)
	}
	out := m.toEntity()
	return &out, nil
}

// Create checks the module and inserts q in one transaction.
func (r *quizPostgres) Create(ctx context.Context, q *entity.Quiz) error {
	if q == nil {
		return errors.New("nil quiz")
	}
	m := quizToModel(q)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Table(modulesTable).Where("id = ?", q.ModuleID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return usecase.ErrModuleNotFound
		}
		return tx.Create(&m).Error
	})
	switch {
	case err == nil:
	case errors.Is(err, usecase.ErrModuleNotFound), errors.Is(err, gorm.ErrForeignKeyViolated):
		return usecase.ErrModuleNotFound
	default:
		return apperror.Store(err)
	}
	q.ID = m.ID
	q.CreatedDate = m.CreatedDate
	return nil
}

func (r *quizPostgres) Update(ctx context.Context, moduleID, quizID uint, cols map[string]any) error {
	res := r.db.WithContext(ctx).
		Model(&QuizModel{}).
		Where("module_id = ? AND id = ?", moduleID, quizID).
		Updates(cols)
	if res.Error != nil {
		return apperror.Store(res.Error)
	}
	if res.RowsAffected == 0 {
		return usecase.ErrQuizNotFound
	}
	return nil
}

func (r *quizPostgres) Delete(ctx context.Context, moduleID, quizID uint) error {
	res := r.db.WithContext(ctx).
		Where("module_id = ? AND id = ?", moduleID, quizID).
		Delete(&QuizModel{})
	if res.Error != nil {
		return apperror.Store(res.Error)
	}
	if res.RowsAffected == 0 {
		return usecase.ErrQuizNotFound
	}
	return nil
}
