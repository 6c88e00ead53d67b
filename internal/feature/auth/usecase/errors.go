// Package usecase implements the business logic for the auth feature.
package usecase

import "learning_backend/internal/shared/apperror"

var (
	// ErrUserNotFound is returned by the store when no user has the given email.
	ErrUserNotFound = apperror.New(apperror.KindNotFound, "USER_NOT_FOUND", "user not found")

	// ErrUserAlreadyExists is returned when registering an email that is already taken.
	ErrUserAlreadyExists = apperror.New(apperror.KindConflict, "USER_ALREADY_EXISTS", "User already exists.")

	// ErrInvalidCredentials is returned for an unknown email and for a wrong password alike.
	ErrInvalidCredentials = apperror.New(apperror.KindUnauthorized, "INVALID_CREDENTIALS", "Invalid credentials")
)
