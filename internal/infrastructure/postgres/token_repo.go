package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/azamatdev/library-api/internal/domain"
)

type TokenRepository struct {
	pool *pgxpool.Pool
}

func NewTokenRepository(pool *pgxpool.Pool) *TokenRepository {
	return &TokenRepository{pool: pool}
}

// Upsert replaces the user's token. The previous token stops authenticating
// the moment this statement commits.
func (r *TokenRepository) Upsert(ctx context.Context, userID int64, token string) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO tokens (user_id, token) VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET token = EXCLUDED.token`,
		userID, token)
	if err != nil {
		return fmt.Errorf("upsert token: %w", err)
	}
	return nil
}

func (r *TokenRepository) FindUserID(ctx context.Context, token string) (int64, error) {
	var userID int64
	err := r.pool.QueryRow(ctx,
		`SELECT user_id FROM tokens WHERE token = $1`, token,
	).Scan(&userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrTokenInvalid
		}
		return 0, fmt.Errorf("lookup token: %w", err)
	}
	return userID, nil
}
