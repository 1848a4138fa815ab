package usecase

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	domainErrors "github.com/vporoshin/solace/internal/domain/errors"
	"github.com/vporoshin/solace/internal/domain/model"
	"github.com/vporoshin/solace/internal/domain/repository"
	pkgAuth "github.com/vporoshin/solace/internal/pkg/auth"
)

const (
	minUsernameLength = 3
	minPasswordLength = 6
)

// AuthUseCase handles user lifecycle and token management.
type AuthUseCase struct {
	users  repository.UserRepository
	hasher pkgAuth.PasswordHasher
	tokens pkgAuth.Strategy
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, tokens: strategy}
}

// Register creates a new user with username/password. The caller is expected
// to send the user through the login flow afterwards.
func (u *AuthUseCase) Register(ctx context.Context, username, password string) (*model.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, domainErrors.ErrCredentialsMissing
	}
	if utf8.RuneCountInString(username) < minUsernameLength || utf8.RuneCountInString(password) < minPasswordLength {
		return nil, domainErrors.ErrCredentialsTooShort
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	usr, err := u.users.Create(ctx, username, hash)
	if err != nil {
		if errors.Is(err, domainErrors.ErrAlreadyExists) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}

	return usr, nil
}

// Authenticate validates credentials and returns a session token. Missing
// fields, an unknown username, and a wrong password all collapse into
// ErrInvalidCredentials so callers cannot tell the cases apart.
func (u *AuthUseCase) Authenticate(ctx context.Context, username, password string) (*model.User, string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	usr, err := u.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.tokens.IssueToken(usr.ID)
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// ParseToken extracts user ID from provided token.
func (u *AuthUseCase) ParseToken(token string) (int64, error) {
	if token == "" {
		return 0, pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}

// GetByID fetches user by identifier.
func (u *AuthUseCase) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return u.users.GetByID(ctx, id)
}
