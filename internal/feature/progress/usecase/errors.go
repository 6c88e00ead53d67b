// Package usecase implements the business logic for learner progress.
package usecase

import "learning_backend/internal/shared/apperror"

// ErrProgressNotFound is returned when the learner has no progress row for the module.
var ErrProgressNotFound = apperror.New(apperror.KindNotFound, "PROGRESS_NOT_FOUND", "Progress not found")
