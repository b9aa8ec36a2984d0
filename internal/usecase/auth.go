package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/azamatdev/library-api/internal/domain"
	"github.com/azamatdev/library-api/internal/repository"
)

type AuthUsecase struct {
	users      repository.UserRepository
	tokens     repository.TokenRepository
	bcryptCost int
}

func NewAuthUsecase(users repository.UserRepository, tokens repository.TokenRepository, bcryptCost int) *AuthUsecase {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthUsecase{users: users, tokens: tokens, bcryptCost: bcryptCost}
}

// Register digests the password and inserts the user. No token is issued;
// the client logs in separately.
func (u *AuthUsecase) Register(ctx context.Context, username, password string) (int64, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), u.bcryptCost)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	id, err := u.users.Create(ctx, username, string(hash))
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateUsername) {
			return 0, domain.ErrDuplicateUsername
		}
		return 0, fmt.Errorf("create user: %w", err)
	}
	return id, nil
}

// Login checks the credentials and rotates the user's token. Unknown
// username and wrong password collapse into the same error so the caller
// cannot enumerate accounts.
func (u *AuthUsecase) Login(ctx context.Context, username, password string) (string, error) {
	user, err := u.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", domain.ErrInvalidCredentials
	}

	token := uuid.NewString()
	if err := u.tokens.Upsert(ctx, user.ID, token); err != nil {
		return "", fmt.Errorf("store token: %w", err)
	}
	return token, nil
}
