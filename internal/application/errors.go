package application

import (
	"errors"

	repo "github.com/nhea/awards-api/internal/domain/repository"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrEmailNotVerified   = errors.New("email not verified")
	ErrAlreadyVerified    = errors.New("email already verified")
	ErrInvalidCode        = errors.New("invalid or expired verification code")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrCategoryNotFound   = errors.New("category not found")
)

// isNotFound reports whether err is a repository not-found.
func isNotFound(err error) bool {
	return errors.Is(err, repo.ErrNotFound)
}
