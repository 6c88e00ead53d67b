package usecase

import (
	"context"
	"time"

	"learning_backend/internal/feature/progress/domain/entity"
)

// ProgressRepository abstracts the progress store.
// Interfaces are declared by the consumer (usecase), not the provider (adapters).
type ProgressRepository interface {
	// FindByUser returns every progress row of the user, possibly none.
	FindByUser(ctx context.Context, userID uint) ([]entity.Progress, error)

	// FindByUserAndModule returns ErrProgressNotFound when no row matches.
	FindByUserAndModule(ctx context.Context, userID, moduleID uint) (*entity.Progress, error)

	// Update overwrites the mutable columns of the (UserID, ModuleID) row.
	// It returns ErrProgressNotFound when no row matches.
	Update(ctx context.Context, p *entity.Progress) error

	// CountModules counts the distinct modules the user has rows for, and how many are completed.
	CountModules(ctx context.Context, userID uint) (total, completed int64, err error)
}

type progressUsecase struct {
	repo ProgressRepository
	now  func() time.Time
}

// NewProgressUsecase creates a progressUsecase.
func NewProgressUsecase(repo ProgressRepository) *progressUsecase {
	return &progressUsecase{repo: repo, now: time.Now}
}

// UpdateProgress moves the learner to currentContentID and optionally changes the completion flag.
//
// A nil isCompleted keeps the stored flag. A completed row keeps its completion time going in,
// and the time is refreshed to now on every call whose resulting flag is true.
func (u *progressUsecase) UpdateProgress(ctx context.Context, userID, moduleID, currentContentID uint, isCompleted *bool) error {
	existing, err := u.repo.FindByUserAndModule(ctx, userID, moduleID)
	if err != nil {
		return err
	}

	completed := existing.IsCompleted
	if isCompleted != nil {
		completed = *isCompleted
	}

	var completedAt *time.Time
	if existing.IsCompleted {
		completedAt = existing.CompletedAt
	}
	if completed {
		t := u.now().UTC()
		completedAt = &t
	}

	next := *existing
	next.CurrentContentID = currentContentID
	next.IsCompleted = completed
	next.CompletedAt = completedAt
	return u.repo.Update(ctx, &next)
}

// GetUserProgress lists the learner's progress rows.
func (u *progressUsecase) GetUserProgress(ctx context.Context, userID uint) ([]entity.Progress, error) {
	return u.repo.FindByUser(ctx, userID)
}

// GetUserProgressByModule returns the learner's row for one module.
func (u *progressUsecase) GetUserProgressByModule(ctx context.Context, userID, moduleID uint) (*entity.Progress, error) {
	return u.repo.FindByUserAndModule(ctx, userID, moduleID)
}

// GetUserProgressSummary aggregates the learner's progress across modules.
func (u *progressUsecase) GetUserProgressSummary(ctx context.Context, userID uint) (*entity.Summary, error) {
	total, completed, err := u.repo.CountModules(ctx, userID)
	if err != nil {
		return nil, err
	}
	s := entity.NewSummary(total, completed)
	return &s, nil
}
