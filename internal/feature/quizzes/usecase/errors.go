package usecase

import "learning_backend/internal/shared/apperror"

var (
	// ErrQuizNotFound is returned when the module has no quiz with the given ID.
	ErrQuizNotFound = apperror.New(apperror.KindNotFound, "QUIZ_NOT_FOUND", "Quiz not found")

	// ErrModuleNotFound is returned when a quiz is created under a module that does not exist.
	ErrModuleNotFound = apperror.New(apperror.KindNotFound, "MODULE_NOT_FOUND", "Module not found")

	// ErrNoUpdateFields is returned when an update sets no field.
	ErrNoUpdateFields = apperror.New(apperror.KindValidation, "NO_UPDATE_FIELDS", "No fields provided for update")

	// ErrAttemptsNotImplemented is returned by every attempt operation until scoring exists.
	ErrAttemptsNotImplemented = apperror.New(apperror.KindNotImplemented, "NOT_IMPLEMENTED", "Quiz attempts are not implemented yet")
)
