package usecase

import (
	"context"
	"time"

	"learning_backend/internal/feature/quizzes/domain/entity"
)

// QuizRepository abstracts quiz storage. Every quiz is addressed through its module.
type QuizRepository interface {
	ListByModule(ctx context.Context, moduleID uint) ([]entity.Quiz, error)
	FindByID(ctx context.Context, moduleID, quizID uint) (*entity.Quiz, error)

	// Create inserts q and sets its ID and CreatedDate. ErrModuleNotFound when the module is gone.
	Create(ctx context.Context, q *entity.Quiz) error

	Update(ctx context.Context, moduleID, quizID uint, cols map[string]any) error
	Delete(ctx context.Context, moduleID, quizID uint) error
}

type quizUsecase struct {
	repo QuizRepository
	now  func() time.Time
}

// NewQuizUsecase creates a quizUsecase.
func NewQuizUsecase(repo QuizRepository) *quizUsecase {
	return &quizUsecase{repo: repo, now: time.Now}
}

// ListQuizzes returns the module's quizzes, oldest first.
func (u *quizUsecase) ListQuizzes(ctx context.Context, moduleID uint) ([]entity.Quiz, error) {
	return u.repo.ListByModule(ctx, moduleID)
}

// GetQuiz returns ErrQuizNotFound when the module has no such quiz.
func (u *quizUsecase) GetQuiz(ctx context.Context, moduleID, quizID uint) (*entity.Quiz, error) {
	return u.repo.FindByID(ctx, moduleID, quizID)
}

func (u *quizUsecase) CreateQuiz(ctx context.Context, q *entity.Quiz) error {
	return u.repo.Create(ctx, q)
}

// UpdateQuiz applies the set fields of upd and stamps updated_at.
func (u *quizUsecase) UpdateQuiz(ctx context.Context, moduleID, quizID uint, upd entity.QuizUpdate) error {
	cols := upd.Columns()
	if len(cols) == 0 {
		return ErrNoUpdateFields
	}
	cols["updated_at"] = u.now().UTC()
	return u.repo.Update(ctx, moduleID, quizID, cols)
}

func (u *quizUsecase) DeleteQuiz(ctx context.Context, moduleID, quizID uint) error {
	return u.repo.Delete(ctx, moduleID, quizID)
}
