package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"learning_backend/internal/feature/auth/domain"
	"learning_backend/internal/feature/auth/domain/entity"
)

const (
	// RegistrationTokenTTL bounds the token returned by Register.
	RegistrationTokenTTL = time.Hour
	// SessionTokenTTL bounds the token returned by Login.
	SessionTokenTTL = 30 * 24 * time.Hour

	bcryptCost = 10

	claimEmail  = "email"
	claimUserID = "userId"
)

// dummyHash is compared against when the email is unknown so that login time does not reveal it.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// UserRepository abstracts the credential store.
// Interfaces are declared by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// Create inserts a user and sets its ID. A duplicate email yields ErrUserAlreadyExists.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail returns ErrUserNotFound when no user has the email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}

// TokenIssuer signs claims into a bearer token valid for ttl.
type TokenIssuer interface {
	Issue(claims map[string]any, ttl time.Duration) (string, error)
}

// authUsecase implements registration and login.
type authUsecase struct {
	users  UserRepository
	tokens TokenIssuer
	cost   int
}

// NewAuthUsecase creates an authUsecase.
func NewAuthUsecase(users UserRepository, tokens TokenIssuer) *authUsecase {
	return &authUsecase{
		users:  users,
		tokens: tokens,
		cost:   bcryptCost,
	}
}

// Register creates a credential record and returns a registration token bound to email.
//
// The existing-email check runs before the password policy, so a taken email is reported
// as ErrUserAlreadyExists whatever the password looks like.
func (u *authUsecase) Register(ctx context.Context, email, password, createdAt, role string) (string, error) {
	_, err := u.users.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return "", ErrUserAlreadyExists
	case !errors.Is(err, ErrUserNotFound):
		return "", err
	}

	if err := domain.ValidatePassword(password); err != nil {
		return "", err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), u.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	if role == "" {
		role = entity.DefaultRole
	}
	user := &entity.User{
		Email:     email,
		Password:  string(hashed),
		CreatedAt: createdAt,
		Role:      role,
	}
	if err := u.users.Create(ctx, user); err != nil {
		return "", err
	}

	token, err := u.tokens.Issue(map[string]any{claimEmail: email}, RegistrationTokenTTL)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}
	return token, nil
}

// Login verifies the password and returns a session token bound to email and user ID.
// A bcrypt comparison runs even for unknown emails.
func (u *authUsecase) Login(ctx context.Context, email, password string) (string, error) {
	user, err := u.users.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return "", err
	}

	passwordHash := dummyHash
	if err == nil {
		passwordHash = user.Password
	}
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	if err != nil || compareErr != nil {
		return "", ErrInvalidCredentials
	}

	token, err := u.tokens.Issue(map[string]any{
		claimEmail:  user.Email,
		claimUserID: user.ID,
	}, SessionTokenTTL)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}
	return token, nil
}
