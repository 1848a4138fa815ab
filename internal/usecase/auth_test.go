package usecase

import (
	"context"
	"fmt"
	"testing"

	domainErrors "github.com/vporoshin/solace/internal/domain/errors"
	pkgAuth "github.com/vporoshin/solace/internal/pkg/auth"
	testhelpers "github.com/vporoshin/solace/internal/test"
)

func newStrategyStub() testhelpers.StrategyStub {
	return testhelpers.StrategyStub{
		IssueFn: func(userID int64) (string, error) {
			return fmt.Sprintf("token-%d", userID), nil
		},
		ParseFn: func(token string) (int64, error) {
			var id int64
			if _, err := fmt.Sscanf(token, "token-%d", &id); err != nil {
				return 0, pkgAuth.ErrInvalidToken
			}
			return id, nil
		},
	}
}

func TestAuthUseCaseRegisterSuccess(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{}, newStrategyStub())

	ctx := context.Background()
	user, err := uc.Register(ctx, "alice", "password")
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if user.ID == 0 {
		t.Fatalf("expected user to have ID assigned")
	}
	stored, err := repo.GetByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("expected user in repository: %v", err)
	}
	if stored.PasswordHash != "hash:password" {
		t.Fatalf("password hash not stored: %v", stored.PasswordHash)
	}
}

func TestAuthUseCaseRegisterDuplicate(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{}, newStrategyStub())

	ctx := context.Background()
	if _, err := uc.Register(ctx, "bob", "secret-pass"); err != nil {
		t.Fatalf("unexpected error on first register: %v", err)
	}
	if _, err := uc.Register(ctx, "bob", "secret-pass"); err != domainErrors.ErrAlreadyExists {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestAuthUseCaseRegisterValidation(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		want     error
	}{
		{name: "missing username", username: "", password: "password", want: domainErrors.ErrCredentialsMissing},
		{name: "missing password", username: "user", password: "", want: domainErrors.ErrCredentialsMissing},
		{name: "blank username", username: "   ", password: "password", want: domainErrors.ErrCredentialsMissing},
		{name: "short username", username: "ab", password: "password", want: domainErrors.ErrCredentialsTooShort},
		{name: "short password", username: "user", password: "12345", want: domainErrors.ErrCredentialsTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := testhelpers.NewUserRepositoryStub()
			uc := NewAuthUseCase(repo, testhelpers.HasherStub{}, newStrategyStub())
			if _, err := uc.Register(context.Background(), tt.username, tt.password); err != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			if len(repo.Users) != 0 {
				t.Fatalf("expected no user stored, got %d", len(repo.Users))
			}
		})
	}
}

func TestAuthUseCaseRegisterLengthBoundaries(t *testing.T) {
	uc := NewAuthUseCase(testhelpers.NewUserRepositoryStub(), testhelpers.HasherStub{}, newStrategyStub())
	if _, err := uc.Register(context.Background(), "abc", "123456"); err != nil {
		t.Fatalf("expected minimal lengths to be accepted, got %v", err)
	}
}

func TestAuthUseCaseRegisterCountsRunes(t *testing.T) {
	uc := NewAuthUseCase(testhelpers.NewUserRepositoryStub(), testhelpers.HasherStub{}, newStrategyStub())
	if _, err := uc.Register(context.Background(), "пит", "пароль"); err != nil {
		t.Fatalf("expected multibyte credentials to pass length check, got %v", err)
	}
}

func TestAuthUseCaseRegisterHasherError(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{HashFn: func(string) (string, error) {
		return "", fmt.Errorf("hash error")
	}}, newStrategyStub())
	if _, err := uc.Register(context.Background(), "user", "password"); err == nil {
		t.Fatal("expected hashing error")
	}
}

func TestAuthUseCaseRegisterRepositoryError(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	repo.Err = fmt.Errorf("db down")
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{}, newStrategyStub())
	if _, err := uc.Register(context.Background(), "user", "password"); err == nil {
		t.Fatal("expected repository error")
	}
}

func TestAuthUseCaseAuthenticate(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{}, newStrategyStub())

	ctx := context.Background()
	if _, err := uc.Register(ctx, "carol", "123456"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, _, err := uc.Authenticate(ctx, "carol", "bad"); err != domainErrors.ErrInvalidCredentials {
		t.Fatalf("expected invalid credentials error, got %v", err)
	}

	user, token, err := uc.Authenticate(ctx, "carol", "123456")
	if err != nil {
		t.Fatalf("authenticate returned error: %v", err)
	}
	if user.Username != "carol" {
		t.Fatalf("unexpected user %q", user.Username)
	}
	if token != "token-1" {
		t.Fatalf("unexpected token %q", token)
	}
}

func TestAuthUseCaseAuthenticateUniformFailure(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{}, newStrategyStub())
	if _, err := uc.Register(context.Background(), "dave", "123456"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	tests := []struct {
		name     string
		username string
		password string
	}{
		{name: "missing username", username: "", password: "123456"},
		{name: "missing password", username: "dave", password: ""},
		{name: "unknown username", username: "absent", password: "123456"},
		{name: "wrong password", username: "dave", password: "654321"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := uc.Authenticate(context.Background(), tt.username, tt.password); err != domainErrors.ErrInvalidCredentials {
				t.Fatalf("expected invalid credentials error, got %v", err)
			}
		})
	}
}

func TestAuthUseCaseAuthenticateIssueTokenError(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	strategy := testhelpers.StrategyStub{IssueFn: func(int64) (string, error) {
		return "", fmt.Errorf("cannot issue token")
	}}
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{}, strategy)
	if _, err := uc.Register(context.Background(), "user", "password"); err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if _, _, err := uc.Authenticate(context.Background(), "user", "password"); err == nil {
		t.Fatal("expected issue error on authenticate")
	}
}

func TestAuthUseCaseAuthenticateRepositoryError(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{}, newStrategyStub())
	if _, err := uc.Register(context.Background(), "user", "password"); err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	repo.Err = fmt.Errorf("storage unavailable")
	if _, _, err := uc.Authenticate(context.Background(), "user", "password"); err == nil || err.Error() != "storage unavailable" {
		t.Fatalf("expected repository error, got %v", err)
	}
}

func TestAuthUseCaseParseToken(t *testing.T) {
	uc := NewAuthUseCase(testhelpers.NewUserRepositoryStub(), testhelpers.HasherStub{}, newStrategyStub())

	id, err := uc.ParseToken("token-42")
	if err != nil {
		t.Fatalf("parse token failed: %v", err)
	}
	if id != 42 {
		t.Fatalf("expected id 42, got %d", id)
	}

	if _, err := uc.ParseToken("bad-token"); err != pkgAuth.ErrInvalidToken {
		t.Fatalf("expected invalid token error, got %v", err)
	}

	if _, err := uc.ParseToken(""); err != pkgAuth.ErrInvalidToken {
		t.Fatalf("expected invalid token error, got %v", err)
	}
}

func TestAuthUseCaseParseTokenStrategyError(t *testing.T) {
	uc := NewAuthUseCase(testhelpers.NewUserRepositoryStub(), testhelpers.HasherStub{}, testhelpers.StrategyStub{
		ParseFn: func(string) (int64, error) { return 0, fmt.Errorf("parse error") },
	})
	if _, err := uc.ParseToken("token"); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestAuthUseCaseGetByID(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{}, newStrategyStub())
	user, err := uc.Register(context.Background(), "erin", "password")
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	fetched, err := uc.GetByID(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("get by id returned error: %v", err)
	}
	if fetched.Username != user.Username {
		t.Fatalf("expected username %q, got %q", user.Username, fetched.Username)
	}
}

func TestAuthUseCaseGetByIDErrorPropagation(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	repo.Err = fmt.Errorf("read error")
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{}, newStrategyStub())
	if _, err := uc.GetByID(context.Background(), 1); err == nil {
		t.Fatal("expected repository error")
	}
}

func TestAuthUseCaseTrimsUsername(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{}, newStrategyStub())
	if _, err := uc.Register(context.Background(), "  user  ", "password"); err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if _, ok := repo.Users["user"]; !ok {
		t.Fatalf("expected trimmed username to be stored, got %v", repo.Users)
	}
	if _, _, err := uc.Authenticate(context.Background(), "  user  ", "password"); err != nil {
		t.Fatalf("authenticate returned error: %v", err)
	}
}

func TestUserRepositoryStubDuplicate(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	if _, err := repo.Create(context.Background(), "user", "hash"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := repo.Create(context.Background(), "user", "hash"); err != domainErrors.ErrAlreadyExists {
		t.Fatalf("expected duplicate error, got %v", err)
	}
}
