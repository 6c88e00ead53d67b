// Package adapters provides the storage implementation for learner progress.
package adapters

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"learning_backend/internal/feature/progress/domain/entity"
	"learning_backend/internal/feature/progress/usecase"
	"learning_backend/internal/shared/apperror"
)

const progressColumns = `id, user_id, module_id, current_content_id, is_completed, started_at, completed_at`

// progressSQLX runs parameterized SQL against user_progress.
// Queries are written with ? placeholders and rebound for the driver.
type progressSQLX struct {
	db *sqlx.DB
}

var _ usecase.ProgressRepository = (*progressSQLX)(nil)

// NewProgressSQLX creates a progress store over db.
func NewProgressSQLX(db *sqlx.DB) *progressSQLX {
	return &progressSQLX{db: db}
}

// FindByUser returns the user's rows ordered by module, or an empty slice.
func (r *progressSQLX) FindByUser(ctx context.Context, userID uint) ([]entity.Progress, error) {
	query := r.db.Rebind(`SELECT ` + progressColumns + ` FROM user_progress WHERE user_id = ? ORDER BY module_id`)

	out := []entity.Progress{}
	if err := r.db.SelectContext(ctx, &out, query, userID); err != nil {
		return nil, apperror.Store(err)
	}
	return out, nil
}

// FindByUserAndModule returns usecase.ErrProgressNotFound when no row matches.
func (r *progressSQLX) FindByUserAndModule(ctx context.Context, userID, moduleID uint) (*entity.Progress, error) {
	query := r.db.Rebind(`SELECT ` + progressColumns + ` FROM user_progress WHERE user_id = ? AND module_id = ?`)

	var p entity.Progress
	if err := r.db.GetContext(ctx, &p, query, userID, moduleID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, usecase.ErrProgressNotFound
		}
		return nil, apperror.Store(err)
	}
	return &p, nil
}

// Update writes the mutable columns of the row keyed by (p.UserID, p.ModuleID).
func (r *progressSQLX) Update(ctx context.Context, p *entity.Progress) error {
	if p == nil {
		return errors.New("nil progress")
	}
	query := r.db.Rebind(`UPDATE user_progress
		SET current_content_id = ?, is_completed = ?, completed_at = ?
		WHERE user_id = ? AND module_id = ?`)

	res, err := r.db.ExecContext(ctx, query,
		p.CurrentContentID, p.IsCompleted, p.CompletedAt,
		p.UserID, p.ModuleID,
	)
	if err != nil {
		return apperror.Store(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return apperror.Store(err)
	}
	if n == 0 {
		return usecase.ErrProgressNotFound
	}
	return nil
}

// CountModules counts distinct modules, and distinct completed modules, for the user.
func (r *progressSQLX) CountModules(ctx context.Context, userID uint) (int64, int64, error) {
	query := r.db.Rebind(`SELECT
		COUNT(DISTINCT module_id) AS total_modules,
		COUNT(DISTINCT CASE WHEN is_completed THEN module_id END) AS completed_modules
		FROM user_progress WHERE user_id = ?`)

	var row struct {
		Total     int64 `db:"total_modules"`
		Completed int64 `db:"completed_modules"`
	}
	if err := r.db.GetContext(ctx, &row, query, userID); err != nil {
		return 0, 0, apperror.Store(err)
	}
	return row.Total, row.Completed, nil
}
