package repository

import (
	"context"

	"github.com/azamatdev/library-api/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, username, passwordHash string) (int64, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}

// TokenRepository is the token store: at most one live token per user,
// replaced wholesale on every login.
type TokenRepository interface {
	Upsert(ctx context.Context, userID int64, token string) error
	FindUserID(ctx context.Context, token string) (int64, error)
}
