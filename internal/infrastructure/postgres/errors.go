package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// 23505 = unique_violation. The unique constraints (users.username,
// members.email, tokens.token) are the source of truth for duplicates;
// repositories classify the violation instead of pre-checking.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
