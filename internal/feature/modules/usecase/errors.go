// Package usecase implements the course catalogue: modules and their contents.
package usecase

import "learning_backend/internal/shared/apperror"

var (
	// ErrModuleNotFound is returned when no module has the requested ID.
	ErrModuleNotFound = apperror.New(apperror.KindNotFound, "MODULE_NOT_FOUND", "Module not found")

	// ErrContentNotFound is returned when the module has no content with the requested ID.
	ErrContentNotFound = apperror.New(apperror.KindNotFound, "CONTENT_NOT_FOUND", "Content has not been found.")

	// ErrNoUpdateFields is returned by partial updates that set nothing.
	ErrNoUpdateFields = apperror.New(apperror.KindValidation, "NO_UPDATE_FIELDS", "No fields provided for update")
)
